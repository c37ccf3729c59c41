// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package database

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/sebastiandiazro/MLOps-1/internal/config"
	"github.com/sebastiandiazro/MLOps-1/internal/logging"
)

// DB wraps an in-memory DuckDB connection.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens an in-memory DuckDB database tuned by cfg.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// preserve_insertion_order keeps scan output in file order, which is
	// what document IDs are derived from.
	connStr := fmt.Sprintf("?threads=%d&max_memory=%s&preserve_insertion_order=true",
		numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg}
	db.configureConnectionPool(numThreads)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Debug().
		Int("threads", numThreads).
		Str("max_memory", cfg.MaxMemory).
		Msg("DuckDB opened")

	return db, nil
}

// configureConnectionPool sizes the pool for a short-lived, read-only loader.
func (db *DB) configureConnectionPool(threads int) {
	db.conn.SetMaxOpenConns(threads)
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Ping verifies the connection is usable.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Conn returns the underlying connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close releases the database.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
