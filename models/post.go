package models

import (
	"time"
)

// Post represents a blog post together with its taxonomy
// Collection: posts
//
// TagIDs / CategoryIDs are the association rows; Tags / Categories are the
// eagerly attached entities filled in by the repositories after a query.
type Post struct {
	ID          string     `bson:"_id" json:"id" yaml:"id"`
	Slug        string     `bson:"slug" json:"slug" yaml:"slug"`
	Title       string     `bson:"title" json:"title" yaml:"title"`
	Excerpt     string     `bson:"excerpt" json:"excerpt" yaml:"excerpt"`
	Published   bool       `bson:"published" json:"published" yaml:"published"`
	PublishedAt *time.Time `bson:"published_at" json:"published_at" yaml:"published_at"`
	TagIDs      []string   `bson:"tag_ids" json:"tag_ids" yaml:"tag_ids"`
	CategoryIDs []string   `bson:"category_ids" json:"category_ids" yaml:"category_ids"`

	Tags       []Tag      `bson:"-" json:"tags" yaml:"-"`
	Categories []Category `bson:"-" json:"categories" yaml:"-"`

	// URL is assigned after resolution, it is never persisted.
	URL string `bson:"-" json:"url" yaml:"-"`
}

// IsPublishedAt reports whether the post is visible at the given instant:
// flagged as published, with a publish date that is not in the future.
func (p *Post) IsPublishedAt(now time.Time) bool {
	if !p.Published || p.PublishedAt == nil {
		return false
	}
	return !p.PublishedAt.After(now)
}

// HasTag reports whether tagID is attached to the post.
func (p *Post) HasTag(tagID string) bool {
	for _, id := range p.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// HasCategory reports whether categoryID is attached to the post.
func (p *Post) HasCategory(categoryID string) bool {
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
