package config

import (
	"regexp"
	"strconv"
	"strings"
)

// RelatedPostsProperties are the recognized options of the related posts component.
// Every option has a documented default, see DefaultRelatedPostsProperties.
type RelatedPostsProperties struct {
	// Slug identifies the seed post. "{{ :slug }}" binds it to the slug URL parameter.
	Slug string `yaml:"slug"`
	// Limit is kept as text and validated against ^[0-9]+$; "0" means no limit.
	Limit string `yaml:"limit"`
	// OrderBy is one of the allowed orderings; anything else leaves results unordered.
	OrderBy string `yaml:"order_by"`
	// PostPage is the page used to build post URLs. Empty disables URLs.
	PostPage string `yaml:"post_page"`
	// CategoryPage is the page used to build category URLs. Empty disables them.
	CategoryPage string `yaml:"category_page"`

	ExcludeCategories []string `yaml:"exclude_categories"`
	IncludeCategories []string `yaml:"include_categories"`
	ExcludePosts      []string `yaml:"exclude_posts"`
	ExcludeTags       []string `yaml:"exclude_tags"`
	MinSharedTags     int      `yaml:"min_shared_tags"`
}

func DefaultRelatedPostsProperties() RelatedPostsProperties {
	return RelatedPostsProperties{
		Slug:     "{{ :slug }}",
		Limit:    "0",
		OrderBy:  "published_at asc",
		PostPage: "blog/post",
	}
}

// WithDefaults fills the empty scalar options from DefaultRelatedPostsProperties.
func (p RelatedPostsProperties) WithDefaults() RelatedPostsProperties {
	d := DefaultRelatedPostsProperties()
	if p.Slug == "" {
		p.Slug = d.Slug
	}
	if p.Limit == "" {
		p.Limit = d.Limit
	}
	if p.OrderBy == "" {
		p.OrderBy = d.OrderBy
	}
	if p.MinSharedTags < 0 {
		p.MinSharedTags = 0
	}
	return p
}

// LimitValue is the validated numeric limit.
func (p RelatedPostsProperties) LimitValue() int {
	return ParseLimit(p.Limit)
}

// SlugParam returns the URL parameter name the slug option is bound to,
// "slug" for "{{ :slug }}". A literal slug value is returned unchanged.
func (p RelatedPostsProperties) SlugParam() string {
	return URLParam(p.Slug)
}

var (
	limitPattern    = regexp.MustCompile(`^[0-9]+$`)
	urlParamPattern = regexp.MustCompile(`{{ :([^ ]+) }}`)
)

// ParseLimit coerces a limit option to a non-negative integer. Values that do
// not match ^[0-9]+$ (negative, non-numeric, empty) become 0.
func ParseLimit(s string) int {
	s = strings.TrimSpace(s)
	if !limitPattern.MatchString(s) {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// URLParam extracts the parameter name from a "{{ :name }}" binding.
func URLParam(property string) string {
	if m := urlParamPattern.FindStringSubmatch(property); len(m) > 1 {
		return m[1]
	}
	return property
}
