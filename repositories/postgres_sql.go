package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"blog-taxonomy/query"
)

const postColumns = `p.id, p.slug, p.title, p.excerpt, p.published, p.published_at`

// sqlBuilder accumulates positional arguments while a query is compiled.
type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// BuildSelect compiles a candidate query into a Postgres statement over
//
//	posts(id, slug, title, excerpt, published, published_at)
//	posts_tags(post_id, tag_id)
//	posts_categories(post_id, category_id)
//
// posts_tags and posts_categories carry PRIMARY KEY (post_id, tag_id) and
// PRIMARY KEY (post_id, category_id), so the count(*) relevance subquery,
// correlated to p.id and evaluated per row, counts distinct shared tags.
func BuildSelect(q *query.Query) (string, []any, error) {
	b := &sqlBuilder{}

	var sb strings.Builder
	sb.WriteString("SELECT " + postColumns + " FROM posts p")

	conds := q.Conditions()
	if len(conds) > 0 {
		parts := make([]string, 0, len(conds))
		for _, c := range conds {
			s, err := b.predicate(c)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, s)
		}
		sb.WriteString(" WHERE " + strings.Join(parts, " AND "))
	}

	o := q.Ordering()
	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}
	switch o.Field {
	case query.SortRelevance:
		sb.WriteString(" ORDER BY " + b.sharedTagCount(o.RelevanceTagIDs) + " " + dir + ", p.id ASC")
	case query.SortRandom:
		sb.WriteString(" ORDER BY random()")
	case query.SortPublishedAt:
		sb.WriteString(" ORDER BY p.published_at " + dir + ", p.id ASC")
	case query.SortTitle:
		sb.WriteString(" ORDER BY p.title " + dir + ", p.id ASC")
	}

	if n := q.Limit(); n > 0 {
		sb.WriteString(" LIMIT " + b.arg(n))
	}
	return sb.String(), b.args, nil
}

func (b *sqlBuilder) predicate(p query.Predicate) (string, error) {
	switch w := p.(type) {
	case query.Nothing:
		return "FALSE", nil
	case query.Published:
		return "(p.published = TRUE AND p.published_at IS NOT NULL AND p.published_at <= " + b.arg(w.At) + ")", nil
	case query.IDNotEqual:
		return "p.id <> " + b.arg(w.ID), nil
	case query.IDIn:
		return "p.id = ANY(" + b.arg(nonNil(w.IDs)) + ")", nil
	case query.PublishedBetween:
		parts := []string{"p.published_at IS NOT NULL"}
		if w.From != nil {
			parts = append(parts, "p.published_at >= "+b.arg(*w.From))
		}
		if w.To != nil {
			parts = append(parts, "p.published_at <= "+b.arg(*w.To))
		}
		return "(" + strings.Join(parts, " AND ") + ")", nil
	case query.HasAnyTag:
		return "EXISTS (SELECT 1 FROM posts_tags pt WHERE pt.post_id = p.id AND pt.tag_id = ANY(" + b.arg(nonNil(w.TagIDs)) + "))", nil
	case query.InCategories:
		return "EXISTS (SELECT 1 FROM posts_categories pc WHERE pc.post_id = p.id AND pc.category_id = ANY(" + b.arg(nonNil(w.CategoryIDs)) + "))", nil
	case query.SharedTagsAtLeast:
		count := b.sharedTagCount(w.TagIDs)
		return count + " >= " + b.arg(w.Min), nil
	case query.Not:
		inner, err := b.predicate(w.P)
		if err != nil {
			return "", err
		}
		return "NOT (" + inner + ")", nil
	default:
		return "", fmt.Errorf("unsupported predicate %T (%s)", p, p.Kind())
	}
}

func (b *sqlBuilder) sharedTagCount(tagIDs []string) string {
	return "(SELECT count(*) FROM posts_tags pt WHERE pt.post_id = p.id AND pt.tag_id = ANY(" + b.arg(nonNil(tagIDs)) + "))"
}
