package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-taxonomy/config"
)

func TestConnectPostgres_RequiresURL(t *testing.T) {
	_, err := ConnectPostgres(context.Background(), config.StoreConfig{Driver: "postgres"})
	assert.EqualError(t, err, "postgres_url is required for the postgres driver")
}

func TestConnectPostgres_InvalidURL(t *testing.T) {
	_, err := ConnectPostgres(context.Background(), config.StoreConfig{PostgresURL: "postgres://%zz"})
	assert.ErrorContains(t, err, "failed to parse config")
}
