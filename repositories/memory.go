package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"blog-taxonomy/models"
	"blog-taxonomy/query"
)

// MemoryPostRepository keeps posts, tags and categories in process memory.
// It backs the "memory" store driver and the service tests.
type MemoryPostRepository struct {
	mu         sync.RWMutex
	posts      []models.Post
	tags       map[string]models.Tag
	categories map[string]models.Category
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		tags:       map[string]models.Tag{},
		categories: map[string]models.Category{},
	}
}

// Fixture is the on-disk layout read by LoadFixture.
type Fixture struct {
	Tags       []models.Tag      `yaml:"tags"`
	Categories []models.Category `yaml:"categories"`
	Posts      []models.Post     `yaml:"posts"`
}

// LoadFixture reads a YAML fixture file into a new repository.
func LoadFixture(path string) (*MemoryPostRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}

	r := NewMemoryPostRepository()
	for _, t := range f.Tags {
		r.AddTag(t)
	}
	for _, c := range f.Categories {
		r.AddCategory(c)
	}
	for _, p := range f.Posts {
		r.AddPost(p)
	}
	return r, nil
}

func (r *MemoryPostRepository) AddTag(t models.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags[t.ID] = t
}

func (r *MemoryPostRepository) AddCategory(c models.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = c
}

// AddPost stores a copy of p, replacing any post with the same ID.
func (r *MemoryPostRepository) AddPost(p models.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.Tags, p.Categories, p.URL = nil, nil, ""
	p.TagIDs = distinct(p.TagIDs)
	p.CategoryIDs = distinct(p.CategoryIDs)
	for i := range r.posts {
		if r.posts[i].ID == p.ID {
			r.posts[i] = p
			return
		}
	}
	r.posts = append(r.posts, p)
}

// FindPost returns the post whose slug equals key, falling back to the ID.
func (r *MemoryPostRepository) FindPost(ctx context.Context, key string) (*models.Post, error) {
	p, err := r.findOne(ctx, func(p *models.Post) bool { return p.Slug == key })
	if errors.Is(err, ErrNotFound) {
		return r.findOne(ctx, func(p *models.Post) bool { return p.ID == key })
	}
	return p, err
}

// FindPostByID returns the post with the given ID, tags attached.
func (r *MemoryPostRepository) FindPostByID(ctx context.Context, id string) (*models.Post, error) {
	return r.findOne(ctx, func(p *models.Post) bool { return p.ID == id })
}

func (r *MemoryPostRepository) findOne(ctx context.Context, match func(*models.Post) bool) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.posts {
		if match(&r.posts[i]) {
			p := r.attach(r.posts[i])
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// FindPosts evaluates q and returns matching posts with tags and categories attached.
func (r *MemoryPostRepository) FindPosts(ctx context.Context, q *query.Query) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := query.Run(r.posts, q)
	for i := range rows {
		rows[i] = r.attach(rows[i])
	}
	return rows, nil
}

// Ping always succeeds.
func (r *MemoryPostRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *MemoryPostRepository) attach(p models.Post) models.Post {
	p.TagIDs = append([]string(nil), p.TagIDs...)
	p.CategoryIDs = append([]string(nil), p.CategoryIDs...)
	p.Tags = make([]models.Tag, 0, len(p.TagIDs))
	for _, id := range p.TagIDs {
		if t, ok := r.tags[id]; ok {
			p.Tags = append(p.Tags, t)
		}
	}
	p.Categories = make([]models.Category, 0, len(p.CategoryIDs))
	for _, id := range p.CategoryIDs {
		if c, ok := r.categories[id]; ok {
			p.Categories = append(p.Categories, c)
		}
	}
	return p
}

// distinct drops repeated ids, keeping the first occurrence. Association rows
// are unique per (post, tag) in every store.
func distinct(ids []string) []string {
	if len(ids) == 0 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
