package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostService() *PostService {
	svc := NewPostService(newScenarioStore(), NewURLBuilder(testPages, "slug"))
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestPostService_GetBySlug(t *testing.T) {
	svc := newTestPostService()

	got, err := svc.GetBySlug(context.Background(), "gamma", "blog/post", "blog/category")
	require.NoError(t, err)
	assert.Equal(t, "p-gamma", got.ID)
	assert.Equal(t, "/blog/post/gamma", got.URL)
	assert.Len(t, got.Tags, 2)
	assert.Equal(t, "/blog/category/dev", got.Categories[0].URL)
}

func TestPostService_GetBySlugNotFound(t *testing.T) {
	svc := newTestPostService()

	for _, key := range []string{"missing", "epsilon"} {
		t.Run(key, func(t *testing.T) {
			_, err := svc.GetBySlug(context.Background(), key, "blog/post", "")
			assert.True(t, IsNotFound(err))
		})
	}
}

func TestPostService_GetBySlugStoreError(t *testing.T) {
	svc := NewPostService(&stubStore{findErr: errStoreDown}, nil)
	_, err := svc.GetBySlug(context.Background(), "one", "", "")
	assert.ErrorIs(t, err, errStoreDown)
	assert.False(t, IsNotFound(err))
}
