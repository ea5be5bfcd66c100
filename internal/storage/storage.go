// Package storage opens the local SQLite database, brings its schema up to
// date and hands out the repositories built on top of it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/paybook/internal/filex"
	"github.com/dmitrijs2005/paybook/internal/migrations"
	"github.com/dmitrijs2005/paybook/internal/repositories/kv"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// DB is an open local database.
type DB struct {
	SQL *sql.DB
	KV  *kv.SQLiteStore
}

func (d *DB) Close() error {
	return d.SQL.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the database file at path and migrates it.
// The special path ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*DB, error) {
	if path != ":memory:" {
		if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("failed to create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent and serializes
	// writers on file databases.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{SQL: db, KV: kv.NewSQLiteStore(db)}, nil
}
