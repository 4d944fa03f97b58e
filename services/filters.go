package services

import (
	"time"

	"blog-taxonomy/config"
	"blog-taxonomy/query"
)

// Filter contributes AND-ed constraints to a candidate query. A filter may
// only add conditions; it never removes what earlier filters added.
type Filter interface {
	Apply(q *query.Query)
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(q *query.Query)

func (f FilterFunc) Apply(q *query.Query) { f(q) }

var noopFilter = FilterFunc(func(*query.Query) {})

// FilterChain applies filters in order.
type FilterChain []Filter

// Apply runs every filter against q and returns it. An empty chain is a no-op.
func (c FilterChain) Apply(q *query.Query) *query.Query {
	for _, f := range c {
		if f != nil {
			f.Apply(q)
		}
	}
	return q
}

// ExcludeCategories drops posts attached to any of the categories.
func ExcludeCategories(ids ...string) Filter {
	if len(ids) == 0 {
		return noopFilter
	}
	return FilterFunc(func(q *query.Query) {
		q.Where(query.Not{P: query.InCategories{CategoryIDs: ids}})
	})
}

// IncludeCategories keeps only posts attached to at least one of the categories.
func IncludeCategories(ids ...string) Filter {
	if len(ids) == 0 {
		return noopFilter
	}
	return FilterFunc(func(q *query.Query) {
		q.Where(query.InCategories{CategoryIDs: ids})
	})
}

// ExcludePosts drops the listed posts.
func ExcludePosts(ids ...string) Filter {
	if len(ids) == 0 {
		return noopFilter
	}
	return FilterFunc(func(q *query.Query) {
		q.Where(query.Not{P: query.IDIn{IDs: ids}})
	})
}

// ExcludeTags drops posts carrying any of the tags.
func ExcludeTags(ids ...string) Filter {
	if len(ids) == 0 {
		return noopFilter
	}
	return FilterFunc(func(q *query.Query) {
		q.Where(query.Not{P: query.HasAnyTag{TagIDs: ids}})
	})
}

// PublishedBetween bounds the publish date; nil bounds are open.
func PublishedBetween(from, to *time.Time) Filter {
	if from == nil && to == nil {
		return noopFilter
	}
	return FilterFunc(func(q *query.Query) {
		q.Where(query.PublishedBetween{From: from, To: to})
	})
}

// MinSharedTags keeps posts sharing at least n of tagIDs.
func MinSharedTags(tagIDs []string, n int) Filter {
	if n <= 0 || len(tagIDs) == 0 {
		return noopFilter
	}
	return FilterFunc(func(q *query.Query) {
		q.Where(query.SharedTagsAtLeast{TagIDs: tagIDs, Min: n})
	})
}

// FiltersFromProperties builds the chain configured on the component.
// MinSharedTags depends on the seed and is added by the resolver.
func FiltersFromProperties(p config.RelatedPostsProperties) FilterChain {
	return FilterChain{
		ExcludeCategories(p.ExcludeCategories...),
		IncludeCategories(p.IncludeCategories...),
		ExcludePosts(p.ExcludePosts...),
		ExcludeTags(p.ExcludeTags...),
	}
}
