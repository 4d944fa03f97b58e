package services

import (
	"net/url"
	"regexp"

	"blog-taxonomy/models"
)

var routeParamPattern = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// URLBuilder assigns page URLs to resolved posts and their categories.
// pages maps a page name ("blog/post") to a route pattern ("/blog/post/:slug").
type URLBuilder struct {
	pages     map[string]string
	slugParam string
}

func NewURLBuilder(pages map[string]string, slugParam string) *URLBuilder {
	if slugParam == "" {
		slugParam = "slug"
	}
	return &URLBuilder{pages: pages, slugParam: slugParam}
}

// AssignPostURLs sets URL on every post from postPage and, when categoryPage is
// set, on every attached category. An empty or unknown postPage leaves the
// posts untouched.
func (b *URLBuilder) AssignPostURLs(posts []models.Post, postPage, categoryPage string) {
	if postPage == "" {
		return
	}
	postRoute, ok := b.pages[postPage]
	if !ok {
		return
	}
	categoryRoute := ""
	if categoryPage != "" {
		categoryRoute = b.pages[categoryPage]
	}

	for i := range posts {
		posts[i].URL = b.build(postRoute, posts[i].Slug, posts[i].ID)
		if categoryRoute == "" {
			continue
		}
		for j := range posts[i].Categories {
			c := &posts[i].Categories[j]
			c.URL = b.build(categoryRoute, c.Slug, c.ID)
		}
	}
}

// build fills route parameters: the slug parameter and "slug" take the slug,
// "id" takes the identifier. Other parameters are left as is.
func (b *URLBuilder) build(route, slug, id string) string {
	return routeParamPattern.ReplaceAllStringFunc(route, func(m string) string {
		switch name := m[1:]; name {
		case b.slugParam, "slug":
			return url.PathEscape(slug)
		case "id":
			return url.PathEscape(id)
		default:
			return m
		}
	})
}
