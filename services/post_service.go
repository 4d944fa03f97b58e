package services

import (
	"context"
	"errors"
	"time"

	"blog-taxonomy/dto"
	"blog-taxonomy/models"
	"blog-taxonomy/repositories"
)

// PostService encapsulates single post lookups and DTO mapping
type PostService struct {
	store PostStore
	urls  *URLBuilder
	now   func() time.Time
}

func NewPostService(store PostStore, urls *URLBuilder) *PostService {
	return &PostService{store: store, urls: urls, now: time.Now}
}

// GetBySlug loads a published post by slug (or id) and returns a DTO.
// Drafts and posts scheduled in the future are reported as not found.
func (s *PostService) GetBySlug(ctx context.Context, key, postPage, categoryPage string) (*dto.PostDTO, error) {
	p, err := s.store.FindPost(ctx, key)
	if err != nil {
		return nil, err
	}
	if !p.IsPublishedAt(s.now()) {
		return nil, repositories.ErrNotFound
	}
	if s.urls != nil {
		posts := []models.Post{*p}
		s.urls.AssignPostURLs(posts, postPage, categoryPage)
		*p = posts[0]
	}
	d := dto.NewPostDTO(*p)
	return &d, nil
}

// IsNotFound reports whether err means the requested post does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}
