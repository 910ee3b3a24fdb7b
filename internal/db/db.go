// Package db provides the relational store used by the company repository,
// selectable between PostgreSQL and SQLite behind database/sql.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver
	_ "modernc.org/sqlite"             // sqlite driver

	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain"
)

// Config holds store connection settings.
type Config struct {
	Driver   Dialect
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	Path     string // sqlite only
}

// Store wraps a database/sql pool together with its SQL dialect.
type Store struct {
	pool    *sql.DB
	dialect Dialect
}

// Open creates a store for the configured driver. The connection is lazy;
// call WaitForReady (or Ping) to verify reachability.
func Open(cfg Config) (*Store, error) {
	var pool *sql.DB
	var err error

	switch cfg.Driver {
	case DialectPostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
			url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password),
			cfg.Host, cfg.Port, cfg.Name)
		pool, err = sql.Open("pgx", dsn)
	case DialectSQLite:
		// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", cfg.Path)
		pool, err = sql.Open("sqlite", dsn)
		if err == nil {
			pool.SetMaxOpenConns(1) // sqlite typically wants 1 writer
		}
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}

	pool.SetConnMaxLifetime(5 * time.Minute)

	return &Store{pool: pool, dialect: cfg.Driver}, nil
}

// Dialect returns the store's SQL dialect.
func (s *Store) Dialect() Dialect { return s.dialect }

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WaitForReady pings the store until it responds or the timeout elapses.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var lastErr error
	for {
		if lastErr = s.pool.PingContext(ctx); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("database not ready after %s: %w", timeout, lastErr)
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// WithConn checks out a dedicated connection, runs fn, and releases the
// connection on every path. Each request-scoped store interaction goes
// through exactly one WithConn block.
func (s *Store) WithConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := s.pool.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %v", domain.ErrUnavailable, err)
	}
	defer conn.Close()

	return fn(conn)
}

// Close releases the underlying pool.
func (s *Store) Close() error {
	if s == nil || s.pool == nil {
		return nil
	}
	return s.pool.Close()
}
