package query

import (
	"math/rand"
	"sort"
	"strings"

	"blog-taxonomy/models"
)

// Matches reports whether p satisfies every conjunct of q.
func (q *Query) Matches(p *models.Post) bool {
	for _, c := range q.conds {
		if !c.Match(p) {
			return false
		}
	}
	return true
}

// Run evaluates q over posts held in memory. The input slice is not modified;
// ties keep the input order.
func Run(posts []models.Post, q *Query) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for i := range posts {
		if q.Matches(&posts[i]) {
			out = append(out, posts[i])
		}
	}

	o := q.Ordering()
	switch o.Field {
	case SortRandom:
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	case SortRelevance:
		scores := make(map[string]int, len(out))
		for i := range out {
			scores[out[i].ID] = SharedTagCount(&out[i], o.RelevanceTagIDs)
		}
		sort.SliceStable(out, func(i, j int) bool {
			a, b := scores[out[i].ID], scores[out[j].ID]
			if o.Desc {
				return a > b
			}
			return a < b
		})
	case SortPublishedAt:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := publishedUnix(&out[i]), publishedUnix(&out[j])
			if o.Desc {
				return a > b
			}
			return a < b
		})
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			c := strings.Compare(out[i].Title, out[j].Title)
			if o.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	if n := q.Limit(); n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func publishedUnix(p *models.Post) int64 {
	if p.PublishedAt == nil {
		return 0
	}
	return p.PublishedAt.UnixNano()
}
