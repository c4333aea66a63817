// Package postgres is the shop store driver backed by pgxpool.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/indiepages/indiepages/pkg/logger"
)

const (
	defaultMaxConns    = 10
	defaultPingTimeout = 3 * time.Second
)

// DBInterface defines the minimal interface needed by the repo.
// This allows both a real pgxpool.Pool and pgxmock.PgxPoolIface to be used.
type DBInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Config holds PostgreSQL connection settings.
type Config struct {
	ConnString  string
	MaxConns    int32
	PingTimeout time.Duration
}

// DB wraps the pgx pool without leaking pgx types through higher layers.
type DB struct {
	pool *pgxpool.Pool
}

// NewDB builds the pool and verifies connectivity.
func NewDB(ctx context.Context, cfg *Config) (*DB, error) {
	if cfg == nil || cfg.ConnString == "" {
		return nil, fmt.Errorf("postgres: connection string is required")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse connection string: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	if poolCfg.MaxConns <= 0 {
		poolCfg.MaxConns = defaultMaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: new pool: %w", err)
	}
	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	logger.FromContext(ctx).Info("Postgres store opened", "max_conns", poolCfg.MaxConns)
	return &DB{pool: pool}, nil
}

// Pool exposes the internal pool for driver-local usage.
func (d *DB) Pool() *pgxpool.Pool { return d.pool }

func (d *DB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return d.pool.Exec(ctx, sql, arguments...)
}

func (d *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return d.pool.Query(ctx, sql, args...)
}

func (d *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return d.pool.QueryRow(ctx, sql, args...)
}

// Close shuts down the connection pool.
func (d *DB) Close(ctx context.Context) {
	d.pool.Close()
	logger.FromContext(ctx).Info("Postgres store closed")
}
