package dto

import (
	"time"

	"blog-taxonomy/models"
)

// TagDTO is a tag as exposed to API consumers.
type TagDTO struct {
	ID   string `json:"id" example:"t-go"`
	Name string `json:"name" example:"Go"`
	Slug string `json:"slug" example:"go"`
}

// CategoryDTO carries the category page URL when a category page is configured.
type CategoryDTO struct {
	ID   string `json:"id" example:"c-dev"`
	Name string `json:"name" example:"Development"`
	Slug string `json:"slug" example:"development"`
	URL  string `json:"url,omitempty" example:"/blog/category/development"`
}

// PostDTO exposes the fields needed to render a post teaser.
// Internal association ids (tag_ids, category_ids) are hidden.
type PostDTO struct {
	ID          string        `json:"id" example:"p-1"`
	Slug        string        `json:"slug" example:"hello-go"`
	Title       string        `json:"title" example:"Hello Go"`
	Excerpt     string        `json:"excerpt"`
	PublishedAt *time.Time    `json:"published_at"`
	URL         string        `json:"url,omitempty" example:"/blog/post/hello-go"`
	Tags        []TagDTO      `json:"tags"`
	Categories  []CategoryDTO `json:"categories"`
}

// NewPostDTO constructs PostDTO from models.Post
func NewPostDTO(p models.Post) PostDTO {
	d := PostDTO{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		PublishedAt: p.PublishedAt,
		URL:         p.URL,
		Tags:        make([]TagDTO, 0, len(p.Tags)),
		Categories:  make([]CategoryDTO, 0, len(p.Categories)),
	}
	for _, t := range p.Tags {
		d.Tags = append(d.Tags, TagDTO{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	for _, c := range p.Categories {
		d.Categories = append(d.Categories, CategoryDTO{ID: c.ID, Name: c.Name, Slug: c.Slug, URL: c.URL})
	}
	return d
}

func NewPostDTOs(posts []models.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostDTO(p))
	}
	return out
}
