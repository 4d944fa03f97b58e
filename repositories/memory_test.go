package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-taxonomy/models"
	"blog-taxonomy/query"
)

const fixtureYAML = `
tags:
  - {id: t1, name: Go, slug: go}
  - {id: t2, name: Databases, slug: databases}
categories:
  - {id: c1, name: Backend, slug: backend}
posts:
  - id: "1"
    slug: alpha
    title: Alpha
    published: true
    published_at: 2024-01-01T10:00:00Z
    tag_ids: [t1, t2]
    category_ids: [c1]
  - id: "2"
    slug: beta
    title: Beta
    published: false
    tag_ids: [t1]
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))
	return path
}

func TestLoadFixture(t *testing.T) {
	repo, err := LoadFixture(writeFixture(t))
	require.NoError(t, err)

	post, err := repo.FindPost(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, "1", post.ID)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, 2024, post.PublishedAt.Year())
	require.Len(t, post.Tags, 2)
	assert.Equal(t, "Databases", post.Tags[1].Name)
	require.Len(t, post.Categories, 1)
	assert.Equal(t, "backend", post.Categories[0].Slug)

	byID, err := repo.FindPost(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "beta", byID.Slug)
}

func TestLoadFixture_MissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMemoryPostRepository_FindPostByID_NotFound(t *testing.T) {
	repo := NewMemoryPostRepository()
	post, err := repo.FindPostByID(context.Background(), "x")
	assert.Nil(t, post)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPostRepository_ResultsAreCopies(t *testing.T) {
	repo, err := LoadFixture(writeFixture(t))
	require.NoError(t, err)

	posts, err := repo.FindPosts(context.Background(), query.New(query.HasAnyTag{TagIDs: []string{"t1"}}))
	require.NoError(t, err)
	require.Len(t, posts, 2)
	posts[0].TagIDs[0] = "mutated"
	posts[0].URL = "/x"

	again, err := repo.FindPostByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, again.TagIDs)
	assert.Empty(t, again.URL)
}

func TestMemoryPostRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindPosts(ctx, query.New())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Ping(ctx), context.Canceled)
}

func TestMemoryPostRepository_AddPostDropsRepeatedAssociations(t *testing.T) {
	repo := NewMemoryPostRepository()
	repo.AddTag(models.Tag{ID: "t1", Name: "Go", Slug: "go"})
	repo.AddPost(models.Post{ID: "1", Slug: "dup", TagIDs: []string{"t1", "t1"}, CategoryIDs: []string{"c1", "c1"}})

	post, err := repo.FindPostByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, post.TagIDs)
	assert.Equal(t, []string{"c1"}, post.CategoryIDs)
	assert.Len(t, post.Tags, 1)
}

func TestMemoryPostRepository_FindPostPrefersSlug(t *testing.T) {
	repo := NewMemoryPostRepository()
	repo.AddPost(models.Post{ID: "intro", Slug: "welcome"})
	repo.AddPost(models.Post{ID: "2", Slug: "intro"})

	post, err := repo.FindPost(context.Background(), "intro")
	require.NoError(t, err)
	assert.Equal(t, "2", post.ID)

	post, err = repo.FindPost(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "intro", post.Slug)
}
