package db

import (
	"context"
	"log/slog"
	"time"

	"salon-site/internal/pkg/config"
	"salon-site/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotConfigured = errs.New("database is not configured")

// Handle is the explicit initialization result of the store
// connection. DATABASE_URL が未設定でもアプリは起動し、Handleが
// 未構成状態を保持する。依存する操作は必ずPool()で状態を確認する。
type Handle struct {
	pool    *pgxpool.Pool
	initErr error
}

func Connect(cfg config.DBConfig) (*Handle, func(), error) {
	if !cfg.IsConfigured() {
		slog.Warn("DATABASE_URLが未設定のため、永続化操作は構成エラーを返します")
		return &Handle{initErr: ErrNotConfigured}, func() {}, nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database url")
	}
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	cleanup := func() {
		pool.Close()
	}

	return &Handle{pool: pool}, cleanup, nil
}

// NewHandle wraps an existing pool (test harness entry point).
func NewHandle(pool *pgxpool.Pool) *Handle {
	return &Handle{pool: pool}
}

// NewUnconfiguredHandle returns a handle that fails every operation
// with ErrNotConfigured.
func NewUnconfiguredHandle() *Handle {
	return &Handle{initErr: ErrNotConfigured}
}

// Pool returns the live pool, or ErrNotConfigured before any network
// round trip when the store was never configured.
func (h *Handle) Pool() (*pgxpool.Pool, error) {
	if h.initErr != nil {
		return nil, h.initErr
	}
	return h.pool, nil
}
