package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  int
	}{
		{name: "zero", input: "0", want: 0},
		{name: "positive", input: "12", want: 12},
		{name: "padded", input: " 3 ", want: 3},
		{name: "negative", input: "-1", want: 0},
		{name: "non numeric", input: "ten", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "overflow", input: "99999999999999999999999", want: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, ParseLimit(testCase.input))
		})
	}
}

func TestURLParam(t *testing.T) {
	assert.Equal(t, "slug", URLParam("{{ :slug }}"))
	assert.Equal(t, "post", URLParam("{{ :post }}"))
	assert.Equal(t, "my-post", URLParam("my-post"))
}

func TestRelatedPostsProperties_WithDefaults(t *testing.T) {
	p := RelatedPostsProperties{OrderBy: "title desc", MinSharedTags: -2}.WithDefaults()

	assert.Equal(t, "{{ :slug }}", p.Slug)
	assert.Equal(t, "slug", p.SlugParam())
	assert.Equal(t, "0", p.Limit)
	assert.Equal(t, 0, p.LimitValue())
	assert.Equal(t, "title desc", p.OrderBy)
	assert.Equal(t, 0, p.MinSharedTags)
	assert.Empty(t, p.PostPage)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CONFIG_FILE)
	content := `
logging:
  level: debug
store:
  driver: memory
  fixture_path: ./fixtures/posts.yaml
related_posts:
  limit: "5"
  order_by: relevance desc
  exclude_categories: [news]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_URL", "postgres://localhost/blog")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/blog", cfg.Store.PostgresURL)
	assert.Equal(t, "blog", cfg.Store.MongoDBName)
	assert.Equal(t, 5, cfg.RelatedPosts.LimitValue())
	assert.Equal(t, "relevance desc", cfg.RelatedPosts.OrderBy)
	assert.Equal(t, []string{"news"}, cfg.RelatedPosts.ExcludeCategories)
	assert.Equal(t, "blog/post", cfg.RelatedPosts.PostPage)
	assert.Equal(t, "/blog/post/:slug", cfg.Pages["blog/post"])
}

func TestLoadFile_InvalidPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), CONFIG_FILE)
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644))
	t.Setenv("PORT", "eighty")

	_, err := LoadFile(path)
	assert.Error(t, err)
}
