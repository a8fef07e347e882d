package metadata

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/dbx"
)

// SQLiteRepository keeps values as blobs in the metadata table. Integers are
// stored big-endian in 8 bytes.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read metadata %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, key string, value []byte) error {
	const q = `INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("write metadata %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) GetString(ctx context.Context, key string) (string, error) {
	v, err := r.get(ctx, key)
	return string(v), err
}

func (r *SQLiteRepository) SetString(ctx context.Context, key, value string) error {
	return r.set(ctx, key, []byte(value))
}

func (r *SQLiteRepository) GetInt64(ctx context.Context, key string) (int64, error) {
	b, err := r.get(ctx, key)
	if err != nil || b == nil {
		return 0, err
	}
	if len(b) != 8 {
		return 0, fmt.Errorf("metadata %q: want 8 bytes, got %d", key, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// RaiseInt64 is a read-modify-write; callers that race on the same key must
// run it inside a transaction.
func (r *SQLiteRepository) RaiseInt64(ctx context.Context, key string, value int64) (int64, error) {
	cur, err := r.GetInt64(ctx, key)
	if err != nil {
		return 0, err
	}
	if value <= cur {
		return cur, nil
	}
	if err := r.set(ctx, key, binary.BigEndian.AppendUint64(nil, uint64(value))); err != nil {
		return 0, err
	}
	return value, nil
}
