package server

import (
	"context"
	"fmt"

	"github.com/indiepages/indiepages/engine/infra/memstore"
	"github.com/indiepages/indiepages/engine/infra/postgres"
	"github.com/indiepages/indiepages/engine/infra/sqlite"
	"github.com/indiepages/indiepages/engine/shop"
	"github.com/indiepages/indiepages/pkg/config"
)

// buildStore constructs the shop store named by the database driver setting.
// The returned cleanup, when non-nil, releases driver resources on shutdown.
func buildStore(ctx context.Context, cfg *config.Config) (shop.Store, func(context.Context), error) {
	switch cfg.Database.Driver {
	case "memory":
		return memstore.NewStore(memstore.Seed()), nil, nil
	case "sqlite":
		store, err := sqlite.NewStore(ctx, &sqlite.Config{Path: cfg.Database.Path})
		if err != nil {
			return nil, nil, err
		}
		return store, func(context.Context) { store.Close() }, nil
	case "postgres":
		db, err := postgres.NewDB(ctx, &postgres.Config{
			ConnString:  cfg.Database.ConnString,
			PingTimeout: cfg.Database.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewShopRepo(db), func(c context.Context) { db.Close(c) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
