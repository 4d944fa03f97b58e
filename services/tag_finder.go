package services

import (
	"context"
	"errors"
	"fmt"

	"blog-taxonomy/models"
	"blog-taxonomy/query"
	"blog-taxonomy/repositories"
)

// TagOverlapFinder loads the tag set of a post and turns it into a
// "shares at least one tag" predicate.
type TagOverlapFinder struct {
	store PostStore
}

func NewTagOverlapFinder(store PostStore) *TagOverlapFinder {
	return &TagOverlapFinder{store: store}
}

// TagsOf returns the tag identifiers attached to the post. A missing post or
// a post without tags yields an empty set and no error.
func (f *TagOverlapFinder) TagsOf(ctx context.Context, postID string) ([]string, error) {
	post, err := f.store.FindPostByID(ctx, postID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load post %s: %w", postID, err)
	}
	return TagIDs(post), nil
}

// FindSeed loads the post identified by key together with its tags in one
// fetch. It returns a nil post when nothing matches.
func (f *TagOverlapFinder) FindSeed(ctx context.Context, key string) (*models.Post, []string, error) {
	post, err := f.store.FindPost(ctx, key)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load seed post %q: %w", key, err)
	}
	return post, TagIDs(post), nil
}

// OverlapPredicate matches posts having at least one of tagIDs.
// An empty set produces a predicate that matches nothing.
func (f *TagOverlapFinder) OverlapPredicate(tagIDs []string) query.Predicate {
	if len(tagIDs) == 0 {
		return query.Nothing{}
	}
	return query.HasAnyTag{TagIDs: tagIDs}
}

// TagIDs returns the distinct tag identifiers of p, in association order.
func TagIDs(p *models.Post) []string {
	if p == nil {
		return nil
	}
	ids := p.TagIDs
	if len(ids) == 0 {
		ids = make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			ids = append(ids, t.ID)
		}
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
