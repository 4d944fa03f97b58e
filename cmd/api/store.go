package main

import (
	"context"
	"fmt"
	"path/filepath"

	"blog-taxonomy/api/router"
	"blog-taxonomy/config"
	"blog-taxonomy/db"
	"blog-taxonomy/repositories"
)

// openStore connects the post store selected by store.driver and returns
// a function releasing its resources.
func openStore(ctx context.Context, cfg config.AppConfig) (router.Store, func(), error) {
	switch cfg.Store.Driver {
	case "mongo", "":
		client, database, err := db.ConnectMongo(ctx, cfg.Store)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return repositories.NewPostRepository(database), closeFn, nil

	case "postgres":
		pool, err := db.ConnectPostgres(ctx, cfg.Store)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewPostgresPostRepository(pool), pool.Close, nil

	case "memory":
		path := cfg.Store.FixturePath
		if path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(config.GetBasePath(), path)
		}
		if path == "" {
			return repositories.NewMemoryPostRepository(), func() {}, nil
		}
		repo, err := repositories.LoadFixture(path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
