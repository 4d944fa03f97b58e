// Package query describes a candidate set of posts as plain values: an ordered
// list of AND-ed predicates, an ordering and a row limit. Repositories
// translate a Query into their own dialect (bson pipeline, SQL) and the
// in-memory store evaluates it directly with Match.
package query

import (
	"time"

	"blog-taxonomy/models"
)

// Kind tags a predicate variant.
type Kind int

const (
	KindNothing Kind = iota
	KindEquality
	KindInclusion
	KindJoinExists
	KindAggregateComparison
	KindNegation
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindEquality:
		return "equality"
	case KindInclusion:
		return "inclusion"
	case KindJoinExists:
		return "join-exists"
	case KindAggregateComparison:
		return "aggregate-comparison"
	case KindNegation:
		return "negation"
	default:
		return "unknown"
	}
}

// Predicate is a single conjunct of a candidate query.
type Predicate interface {
	Kind() Kind
	// Match evaluates the predicate against a materialized post.
	Match(p *models.Post) bool
}

// Nothing matches no post at all.
type Nothing struct{}

func (Nothing) Kind() Kind              { return KindNothing }
func (Nothing) Match(*models.Post) bool { return false }

// Published matches posts that are flagged published with a publish date at or before At.
type Published struct {
	At time.Time
}

func (Published) Kind() Kind { return KindEquality }
func (w Published) Match(p *models.Post) bool {
	return p.IsPublishedAt(w.At)
}

// IDNotEqual excludes a single post.
type IDNotEqual struct {
	ID string
}

func (IDNotEqual) Kind() Kind { return KindEquality }
func (w IDNotEqual) Match(p *models.Post) bool {
	return p.ID != w.ID
}

// IDIn matches posts whose identifier is one of IDs. An empty list matches nothing.
type IDIn struct {
	IDs []string
}

func (IDIn) Kind() Kind { return KindInclusion }
func (w IDIn) Match(p *models.Post) bool {
	for _, id := range w.IDs {
		if p.ID == id {
			return true
		}
	}
	return false
}

// PublishedBetween bounds published_at. A nil bound is open.
type PublishedBetween struct {
	From *time.Time
	To   *time.Time
}

func (PublishedBetween) Kind() Kind { return KindInclusion }
func (w PublishedBetween) Match(p *models.Post) bool {
	if p.PublishedAt == nil {
		return false
	}
	if w.From != nil && p.PublishedAt.Before(*w.From) {
		return false
	}
	if w.To != nil && p.PublishedAt.After(*w.To) {
		return false
	}
	return true
}

// HasAnyTag matches posts with at least one association row whose tag is in TagIDs.
// An empty TagIDs matches nothing.
type HasAnyTag struct {
	TagIDs []string
}

func (HasAnyTag) Kind() Kind { return KindJoinExists }
func (w HasAnyTag) Match(p *models.Post) bool {
	for _, id := range w.TagIDs {
		if p.HasTag(id) {
			return true
		}
	}
	return false
}

// InCategories matches posts attached to at least one of CategoryIDs.
type InCategories struct {
	CategoryIDs []string
}

func (InCategories) Kind() Kind { return KindJoinExists }
func (w InCategories) Match(p *models.Post) bool {
	for _, id := range w.CategoryIDs {
		if p.HasCategory(id) {
			return true
		}
	}
	return false
}

// SharedTagsAtLeast compares the per-post shared tag count with Min.
type SharedTagsAtLeast struct {
	TagIDs []string
	Min    int
}

func (SharedTagsAtLeast) Kind() Kind { return KindAggregateComparison }
func (w SharedTagsAtLeast) Match(p *models.Post) bool {
	return SharedTagCount(p, w.TagIDs) >= w.Min
}

// Not negates the wrapped predicate.
type Not struct {
	P Predicate
}

func (Not) Kind() Kind { return KindNegation }
func (w Not) Match(p *models.Post) bool {
	return !w.P.Match(p)
}

// SharedTagCount is the relevance score: the number of distinct tags of p that
// are also in tagIDs. Duplicates on either side are counted once.
func SharedTagCount(p *models.Post, tagIDs []string) int {
	if len(tagIDs) == 0 || len(p.TagIDs) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		set[id] = struct{}{}
	}
	n := 0
	for _, id := range p.TagIDs {
		if _, ok := set[id]; ok {
			delete(set, id)
			n++
		}
	}
	return n
}
