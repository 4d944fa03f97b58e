package query

// SortField names an orderable post attribute.
type SortField string

const (
	SortPublishedAt SortField = "published_at"
	SortTitle       SortField = "title"
	SortRelevance   SortField = "relevance"
	SortRandom      SortField = "random"
)

// Order is the ordering of a candidate query. The zero value means no
// explicit ordering: rows come back in whatever order the store yields.
type Order struct {
	Field SortField
	Desc  bool
	// RelevanceTagIDs is the seed tag set scored against when Field is SortRelevance.
	RelevanceTagIDs []string
}

// IsZero reports whether no ordering is set.
func (o Order) IsZero() bool {
	return o.Field == ""
}

// Query is an in-flight candidate set. It is built fresh for every request
// and owned by a single caller.
type Query struct {
	conds []Predicate
	order Order
	limit int
}

// New returns a Query with the given initial conjuncts.
func New(conds ...Predicate) *Query {
	q := &Query{}
	for _, c := range conds {
		q.Where(c)
	}
	return q
}

// Where appends an AND-ed predicate. Earlier predicates are never removed.
func (q *Query) Where(p Predicate) *Query {
	if p != nil {
		q.conds = append(q.conds, p)
	}
	return q
}

// OrderBy replaces the ordering.
func (q *Query) OrderBy(o Order) *Query {
	q.order = o
	return q
}

// Take limits the number of rows. n <= 0 means no limit.
func (q *Query) Take(n int) *Query {
	if n < 0 {
		n = 0
	}
	q.limit = n
	return q
}

// Conditions returns a copy of the conjunction list in insertion order.
func (q *Query) Conditions() []Predicate {
	out := make([]Predicate, len(q.conds))
	copy(out, q.conds)
	return out
}

func (q *Query) Ordering() Order { return q.order }
func (q *Query) Limit() int      { return q.limit }
