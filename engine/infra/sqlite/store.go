// Package sqlite is the embedded shop store driver backed by modernc's
// cgo-free SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	// Register modernc SQLite driver with database/sql.
	_ "modernc.org/sqlite"

	"github.com/indiepages/indiepages/engine/shop"
	"github.com/indiepages/indiepages/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const defaultBusyTimeout = 5 * time.Second

// Config captures SQLite store configuration.
type Config struct {
	// Path is the database location or ":memory:" for in-memory deployments.
	Path string

	// BusyTimeout configures the sqlite busy timeout via PRAGMA busy_timeout.
	BusyTimeout time.Duration
}

// Store implements shop.Store over a local SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens the database, applies pragmas and runs embedded migrations.
func NewStore(ctx context.Context, cfg *Config) (*Store, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}
	if cfg.Path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = defaultBusyTimeout
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", busy.Milliseconds())); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: set busy timeout: %w", err)
	}
	if err := applyMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	logger.FromContext(ctx).Info("SQLite store opened", "path", cfg.Path)
	return &Store{db: db}, nil
}

func applyMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("sqlite: set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("sqlite: apply migrations: %w", err)
	}
	return nil
}

// Close shuts down the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListShops returns the full current snapshot, live and non-live.
func (s *Store) ListShops(ctx context.Context) ([]shop.Shop, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, region, locality, live FROM shops ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("sqlite: list shops: %w", err)
	}
	defer rows.Close()
	var shops []shop.Shop
	for rows.Next() {
		var item shop.Shop
		if err := rows.Scan(&item.ID, &item.Name, &item.Region, &item.Locality, &item.Live); err != nil {
			return nil, fmt.Errorf("sqlite: scan shop: %w", err)
		}
		shops = append(shops, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate shops: %w", err)
	}
	return shops, nil
}

// GetShopByID returns a single shop or shop.ErrNotFound.
func (s *Store) GetShopByID(ctx context.Context, id int64) (*shop.Shop, error) {
	var item shop.Shop
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, region, locality, live FROM shops WHERE id = ?", id,
	).Scan(&item.ID, &item.Name, &item.Region, &item.Locality, &item.Live)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shop.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get shop %d: %w", id, err)
	}
	return &item, nil
}

// UpsertShop inserts or replaces a shop row. Used by import tooling and tests.
func (s *Store) UpsertShop(ctx context.Context, item shop.Shop) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shops (id, name, region, locality, live) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, region=excluded.region,
		 locality=excluded.locality, live=excluded.live`,
		item.ID, item.Name, item.Region, item.Locality, item.Live,
	)
	if err != nil {
		return fmt.Errorf("sqlite: upsert shop %d: %w", item.ID, err)
	}
	return nil
}
