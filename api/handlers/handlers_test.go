package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-taxonomy/config"
	"blog-taxonomy/logger"
	"blog-taxonomy/models"
	"blog-taxonomy/query"
	"blog-taxonomy/services"
	"blog-taxonomy/trace"
)

func newQueryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestPropertiesFromQuery(t *testing.T) {
	defaults := config.RelatedPostsProperties{
		Limit:             "4",
		OrderBy:           "published_at desc",
		PostPage:          "blog/post",
		ExcludeCategories: []string{"c-news"},
	}.WithDefaults()

	t.Run("defaults kept", func(t *testing.T) {
		p, err := propertiesFromQuery(newQueryContext(""), defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults, p)
	})

	t.Run("overrides", func(t *testing.T) {
		p, err := propertiesFromQuery(newQueryContext("limit=2&order_by=title%20asc&exclude_categories=&exclude_tags=a,b&exclude_tags=c&min_shared_tags=2"), defaults)
		require.NoError(t, err)
		assert.Equal(t, 2, p.LimitValue())
		assert.Equal(t, "title asc", p.OrderBy)
		assert.Empty(t, p.ExcludeCategories)
		assert.Equal(t, []string{"a", "b", "c"}, p.ExcludeTags)
		assert.Equal(t, 2, p.MinSharedTags)
		assert.Equal(t, "blog/post", p.PostPage)
	})

	t.Run("invalid min shared tags", func(t *testing.T) {
		_, err := propertiesFromQuery(newQueryContext("min_shared_tags=lots"), defaults)
		assert.EqualError(t, err, "invalid min_shared_tags")
	})
}

func TestPublishedBounds(t *testing.T) {
	from, to, err := publishedBounds(newQueryContext("published_after=2024-01-01T00:00:00Z"))
	require.NoError(t, err)
	require.NotNil(t, from)
	assert.Nil(t, to)
	assert.Equal(t, 2024, from.Year())

	_, _, err = publishedBounds(newQueryContext("published_before=tomorrow"))
	assert.EqualError(t, err, "invalid published_before")
}

// recordingLogger keeps the messages logged at error level.
type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Debug(args ...any)                 {}
func (l *recordingLogger) Info(args ...any)                  {}
func (l *recordingLogger) Warn(args ...any)                  {}
func (l *recordingLogger) Error(args ...any)                 { l.errors = append(l.errors, fmt.Sprint(args...)) }
func (l *recordingLogger) Debugf(format string, args ...any) {}
func (l *recordingLogger) Infof(format string, args ...any)  {}
func (l *recordingLogger) Warnf(format string, args ...any)  {}
func (l *recordingLogger) Errorf(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

type unavailableStore struct{}

func (unavailableStore) FindPost(context.Context, string) (*models.Post, error) {
	return nil, errors.New("i/o timeout")
}

func (unavailableStore) FindPostByID(context.Context, string) (*models.Post, error) {
	return nil, errors.New("i/o timeout")
}

func (unavailableStore) FindPosts(context.Context, *query.Query) ([]models.Post, error) {
	return nil, errors.New("i/o timeout")
}

func TestGetPostHandler_StoreFailureIsLogged(t *testing.T) {
	rec := &recordingLogger{}
	prev := logger.Log
	logger.Log = rec
	defer func() { logger.Log = prev }()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/posts/:slug", GetPostHandler(services.NewPostService(unavailableStore{}, nil), config.DefaultRelatedPostsProperties()))

	req := httptest.NewRequest(http.MethodGet, "/posts/alpha", nil)
	req = req.WithContext(trace.WithRequestID(req.Context(), "req-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "i/o timeout")
	assert.Equal(t, []string{"get post failed"}, rec.errors)
}
