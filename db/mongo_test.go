package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPostIndexes(t *testing.T) {
	idx := postIndexes()
	require.Len(t, idx, 4)

	names := make([]string, 0, len(idx))
	for _, m := range idx {
		require.NotNil(t, m.Options)
		require.NotNil(t, m.Options.Name)
		names = append(names, *m.Options.Name)
	}
	assert.Equal(t, []string{"uniq_slug", "idx_tag_ids", "idx_category_ids", "idx_published_at_desc"}, names)
	assert.True(t, *idx[0].Options.Unique)
	assert.Equal(t, bson.D{{Key: "tag_ids", Value: 1}}, idx[1].Keys)
}
