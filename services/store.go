package services

import (
	"context"

	"blog-taxonomy/models"
	"blog-taxonomy/query"
)

// PostStore is the read-only view of the post data store used by the services.
// Implementations return repositories.ErrNotFound from the single-post lookups.
type PostStore interface {
	// FindPost matches key exactly against the slug or the identifier.
	FindPost(ctx context.Context, key string) (*models.Post, error)
	FindPostByID(ctx context.Context, id string) (*models.Post, error)
	// FindPosts materializes a candidate query with tags and categories attached.
	FindPosts(ctx context.Context, q *query.Query) ([]models.Post, error)
}
