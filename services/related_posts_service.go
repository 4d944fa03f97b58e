package services

import (
	"context"
	"fmt"
	"time"

	"blog-taxonomy/logger"
	"blog-taxonomy/models"
	"blog-taxonomy/query"
	"blog-taxonomy/trace"
)

// RelatedOptions configures one related posts resolution.
type RelatedOptions struct {
	// OrderBy is one of AllowedOrderings. Unknown values leave the order to the store.
	OrderBy string
	// Limit truncates the result; 0 means no limit. Negative values count as 0.
	Limit int
	// MinSharedTags additionally requires candidates to share at least this many seed tags.
	MinSharedTags int
	Filters       FilterChain
}

// RelatedPostsService resolves the published posts that share tags with a seed post.
// It only reads from the store and keeps no per-request state.
type RelatedPostsService struct {
	store  PostStore
	finder *TagOverlapFinder
	now    func() time.Time
}

func NewRelatedPostsService(store PostStore) *RelatedPostsService {
	return &RelatedPostsService{
		store:  store,
		finder: NewTagOverlapFinder(store),
		now:    time.Now,
	}
}

// Resolve returns the posts related to the post identified by seedKey (slug or id).
// A missing seed or a seed without tags yields an empty result and no error.
// Store failures are returned as is, wrapped with context.
func (s *RelatedPostsService) Resolve(ctx context.Context, seedKey string, opts RelatedOptions) ([]models.Post, error) {
	fields := logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"seed":       seedKey,
		"order_by":   opts.OrderBy,
		"limit":      opts.Limit,
	}

	seed, tagIDs, err := s.finder.FindSeed(ctx, seedKey)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		logger.DebugWithFields("related posts: seed not found", fields)
		return nil, nil
	}
	if len(tagIDs) == 0 {
		logger.DebugWithFields("related posts: seed has no tags", fields)
		return nil, nil
	}

	q := s.candidates(seed, tagIDs)
	opts.Filters.Apply(q)
	MinSharedTags(tagIDs, opts.MinSharedTags).Apply(q)

	if order, ok := OrderingFor(opts.OrderBy, tagIDs); ok {
		q.OrderBy(order)
	} else {
		logger.WarnWithFields("related posts: unknown ordering, leaving store order", fields)
	}
	q.Take(opts.Limit)

	posts, err := s.store.FindPosts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find related posts of %s: %w", seed.ID, err)
	}

	fields["seed_id"] = seed.ID
	fields["seed_tags"] = len(tagIDs)
	fields["count"] = len(posts)
	logger.DebugWithFields("related posts resolved", fields)
	return posts, nil
}

// candidates is the base candidate set: published, not the seed, sharing a tag.
func (s *RelatedPostsService) candidates(seed *models.Post, tagIDs []string) *query.Query {
	return query.New(
		query.Published{At: s.now()},
		query.IDNotEqual{ID: seed.ID},
		s.finder.OverlapPredicate(tagIDs),
	)
}
