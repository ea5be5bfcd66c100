package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/paybook/internal/dbx"
)

const table = "metadata"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// SQLiteRepository stores pairs in the metadata table. It runs against a
// *sql.DB or, inside Atomic, a *sql.Tx.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.Select("value").From(table).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get metadata[%s]: %w", key, err)
	}

	var value []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	query, args, err := psql.Insert(table).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set metadata[%s]: %w", key, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete metadata[%s]: %w", key, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	query, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear metadata: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	query, args, err := psql.Select("key", "value").From(table).OrderBy("key").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list metadata: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate metadata rows: %w", err)
	}

	return result, nil
}

// SQLiteStore is a SQLiteRepository that owns its *sql.DB and can therefore
// open transactions.
type SQLiteStore struct {
	*SQLiteRepository
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{SQLiteRepository: NewSQLiteRepository(db), db: db}
}

func (s *SQLiteStore) Atomic(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteRepository(tx))
	})
}
