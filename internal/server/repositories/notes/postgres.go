// Package notes provides the PostgreSQL repository for stored notes and the
// revision-ordered pull query.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/dbx"
	"github.com/dmitrijs2005/notto/internal/server/models"
)

// PostgresRepository implements note storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Insert stores a new note and returns its id.
func (r *PostgresRepository) Insert(ctx context.Context, note *models.Note) (int64, error) {
	query := `
		INSERT INTO notes (user_id, ciphertext, blob_key, nonce, ts, deleted, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		note.UserID, note.Ciphertext, nullable(note.BlobKey), note.Nonce, note.Timestamp, note.Deleted, note.Revision).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	note.ID = id
	return id, nil
}

// GetForUpdate loads one note of userID and locks its row until the
// surrounding transaction ends. A note of another user is not found.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, userID string, id int64) (*models.Note, error) {
	query := `
		SELECT id, user_id, ciphertext, blob_key, nonce, ts, deleted, revision, updated_at
		FROM notes
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`
	n, err := scanNote(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Update overwrites payload, timestamp, tombstone flag and revision.
func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		SET ciphertext = $3, blob_key = $4, nonce = $5, ts = $6, deleted = $7, revision = $8, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		note.ID, note.UserID, note.Ciphertext, nullable(note.BlobKey), note.Nonce, note.Timestamp, note.Deleted, note.Revision)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// SelectSince returns every note of userID with revision > since, in
// revision order.
func (r *PostgresRepository) SelectSince(ctx context.Context, userID string, since int64) ([]*models.Note, error) {
	query := `
		SELECT id, user_id, ciphertext, blob_key, nonce, ts, deleted, revision, updated_at
		FROM notes
		WHERE user_id = $1 AND revision > $2
		ORDER BY revision
	`
	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*models.Note, error) {
	var (
		n       models.Note
		blobKey sql.NullString
	)
	if err := s.Scan(&n.ID, &n.UserID, &n.Ciphertext, &blobKey, &n.Nonce, &n.Timestamp, &n.Deleted, &n.Revision, &n.UpdatedAt); err != nil {
		return nil, err
	}
	n.BlobKey = blobKey.String
	return &n, nil
}
