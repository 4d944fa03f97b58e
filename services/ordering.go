package services

import (
	"sort"
	"strings"

	"blog-taxonomy/query"
)

const (
	OrderPublishedAtAsc  = "published_at asc"
	OrderPublishedAtDesc = "published_at desc"
	OrderTitleAsc        = "title asc"
	OrderTitleDesc       = "title desc"
	OrderRandom          = "random"
	OrderRelevanceAsc    = "relevance asc"
	OrderRelevanceDesc   = "relevance desc"
)

var allowedOrderings = []string{
	OrderPublishedAtAsc,
	OrderPublishedAtDesc,
	OrderTitleAsc,
	OrderTitleDesc,
	OrderRandom,
	OrderRelevanceAsc,
	OrderRelevanceDesc,
}

var orderingLabels = map[string]string{
	OrderPublishedAtAsc:  "Published (ascending)",
	OrderPublishedAtDesc: "Published (descending)",
	OrderTitleAsc:        "Title (ascending)",
	OrderTitleDesc:       "Title (descending)",
	OrderRandom:          "Random",
	OrderRelevanceAsc:    "Relevance (ascending)",
	OrderRelevanceDesc:   "Relevance (descending)",
}

// AllowedOrderings returns the ordering vocabulary.
func AllowedOrderings() []string {
	out := make([]string, len(allowedOrderings))
	copy(out, allowedOrderings)
	return out
}

// IsAllowedOrdering reports whether key is part of the vocabulary.
func IsAllowedOrdering(key string) bool {
	_, ok := orderingLabels[key]
	return ok
}

// OrderOption is an ordering value with its display label.
type OrderOption struct {
	Value string
	Label string
}

// OrderOptions lists the vocabulary sorted by label, for configuration dropdowns.
func OrderOptions() []OrderOption {
	out := make([]OrderOption, 0, len(allowedOrderings))
	for _, v := range allowedOrderings {
		out = append(out, OrderOption{Value: v, Label: orderingLabels[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// OrderingFor maps an ordering key to a query ordering. seedTagIDs is the set
// relevance is scored against. Unknown keys return false and no ordering.
func OrderingFor(key string, seedTagIDs []string) (query.Order, bool) {
	if !IsAllowedOrdering(key) {
		return query.Order{}, false
	}
	if key == OrderRandom {
		return query.Order{Field: query.SortRandom}, true
	}

	field, dir, _ := strings.Cut(key, " ")
	o := query.Order{Field: query.SortField(field), Desc: dir == "desc"}
	if o.Field == query.SortRelevance {
		o.RelevanceTagIDs = seedTagIDs
	}
	return o, true
}
