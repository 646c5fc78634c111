package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const kvTableDDL = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// PostgresStore keeps every key in a single kv_entries table. It is the seam
// for the planned remote backend: the repositories run against it unchanged.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresConfig holds connection pool settings for the postgres driver
type PostgresConfig struct {
	ConnString      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewPostgresStore connects to Postgres and ensures the kv_entries table exists.
func NewPostgresStore(ctx context.Context, cfg PostgresConfig) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	if _, err := pool.Exec(ctx, kvTableDDL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure kv_entries table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Get reads the value stored for key
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := squirrel.Select("value").
		From("kv_entries").
		Where("key = ?", key).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return "", false, fmt.Errorf("error building SQL: %w", err)
	}

	var value string
	err = s.pool.QueryRow(ctx, sql, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error executing query: %w", err)
	}
	return value, true, nil
}

// Set upserts the value stored for key
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := squirrel.Insert("kv_entries").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// Delete removes the key
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := squirrel.Delete("kv_entries").
		Where("key = ?", key).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
