package services

import (
	"context"
	"errors"
	"time"

	"blog-taxonomy/models"
	"blog-taxonomy/query"
	"blog-taxonomy/repositories"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func at(days int) *time.Time {
	t := testNow.AddDate(0, 0, days)
	return &t
}

// newScenarioStore seeds "alpha" {t1,t2} with candidates beta {t1}, gamma {t1,t2},
// delta {t3}, the unpublished epsilon {t1,t2} and the untagged "lonely".
func newScenarioStore() *repositories.MemoryPostRepository {
	r := repositories.NewMemoryPostRepository()
	r.AddTag(models.Tag{ID: "t1", Name: "One", Slug: "one"})
	r.AddTag(models.Tag{ID: "t2", Name: "Two", Slug: "two"})
	r.AddTag(models.Tag{ID: "t3", Name: "Three", Slug: "three"})
	r.AddCategory(models.Category{ID: "c-news", Name: "News", Slug: "news"})
	r.AddCategory(models.Category{ID: "c-dev", Name: "Dev", Slug: "dev"})

	r.AddPost(models.Post{ID: "p-alpha", Slug: "alpha", Title: "Alpha", Published: true, PublishedAt: at(-10), TagIDs: []string{"t1", "t2"}, CategoryIDs: []string{"c-dev"}})
	r.AddPost(models.Post{ID: "p-beta", Slug: "beta", Title: "Beta", Published: true, PublishedAt: at(-3), TagIDs: []string{"t1"}, CategoryIDs: []string{"c-news"}})
	r.AddPost(models.Post{ID: "p-gamma", Slug: "gamma", Title: "Gamma", Published: true, PublishedAt: at(-5), TagIDs: []string{"t1", "t2"}, CategoryIDs: []string{"c-dev"}})
	r.AddPost(models.Post{ID: "p-delta", Slug: "delta", Title: "Delta", Published: true, PublishedAt: at(-1), TagIDs: []string{"t3"}})
	r.AddPost(models.Post{ID: "p-epsilon", Slug: "epsilon", Title: "Epsilon", Published: false, TagIDs: []string{"t1", "t2"}})
	r.AddPost(models.Post{ID: "p-lonely", Slug: "lonely", Title: "Lonely", Published: true, PublishedAt: at(-2)})
	return r
}

func slugs(posts []models.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

// stubStore fails on demand and records the last candidate query.
type stubStore struct {
	seed      *models.Post
	findErr   error
	postsErr  error
	lastQuery *query.Query
}

func (s *stubStore) FindPost(_ context.Context, _ string) (*models.Post, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.seed == nil {
		return nil, repositories.ErrNotFound
	}
	p := *s.seed
	return &p, nil
}

func (s *stubStore) FindPostByID(ctx context.Context, id string) (*models.Post, error) {
	return s.FindPost(ctx, id)
}

func (s *stubStore) FindPosts(_ context.Context, q *query.Query) ([]models.Post, error) {
	s.lastQuery = q
	if s.postsErr != nil {
		return nil, s.postsErr
	}
	return []models.Post{}, nil
}

var errStoreDown = errors.New("connection refused")
