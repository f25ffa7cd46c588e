package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/zeitrechner/internal/db"
	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// SQLiteKVRepo implements KVRepo on the kv_store table. Writes are stamped
// with origin so change watchers can tell their own writes apart.
type SQLiteKVRepo struct {
	db     db.DBTX
	origin string
}

// NewSQLiteKVRepo creates a new SQLiteKVRepo writing as origin.
func NewSQLiteKVRepo(conn db.DBTX, origin string) *SQLiteKVRepo {
	return &SQLiteKVRepo{db: conn, origin: origin}
}

func (r *SQLiteKVRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteKVRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_store (key, value, updated_at, revision, origin)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at,
			revision   = kv_store.revision + 1,
			origin     = excluded.origin`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC(), r.origin); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteKVRepo) Revision(ctx context.Context, key string) (domain.Revision, error) {
	var rev domain.Revision
	err := r.db.QueryRowContext(ctx, `SELECT revision, origin FROM kv_store WHERE key = ?`, key).
		Scan(&rev.Number, &rev.Origin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Revision{}, nil
		}
		return domain.Revision{}, fmt.Errorf("reading revision of %q: %w", key, err)
	}
	return rev, nil
}
