// Package conflicts keeps the remote side of unresolved sync conflicts.
package conflicts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/dbx"
)

type Repository interface {
	Upsert(ctx context.Context, c *models.Conflict) error
	Get(ctx context.Context, noteID int64) (*models.Conflict, error)
	List(ctx context.Context, userID string) ([]*models.Conflict, error)
	Delete(ctx context.Context, noteID int64) error
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert keeps one conflict per note; a newer remote version replaces the old one.
func (r *SQLiteRepository) Upsert(ctx context.Context, c *models.Conflict) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conflicts (note_id, server_id, ciphertext, nonce, timestamp, deleted, detected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(note_id) DO UPDATE SET
			server_id = excluded.server_id,
			ciphertext = excluded.ciphertext,
			nonce = excluded.nonce,
			timestamp = excluded.timestamp,
			deleted = excluded.deleted,
			detected_at = excluded.detected_at`,
		c.NoteID, c.ServerID, c.Ciphertext, c.Nonce, c.Timestamp, c.Deleted, c.DetectedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert conflict: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, noteID int64) (*models.Conflict, error) {
	var c models.Conflict
	err := r.db.QueryRowContext(ctx, `
		SELECT note_id, server_id, ciphertext, nonce, timestamp, deleted, detected_at
		FROM conflicts WHERE note_id = ?`, noteID).
		Scan(&c.NoteID, &c.ServerID, &c.Ciphertext, &c.Nonce, &c.Timestamp, &c.Deleted, &c.DetectedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conflict: %w", err)
	}
	return &c, nil
}

func (r *SQLiteRepository) List(ctx context.Context, userID string) ([]*models.Conflict, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.note_id, c.server_id, c.ciphertext, c.nonce, c.timestamp, c.deleted, c.detected_at
		FROM conflicts c JOIN notes n ON n.id = c.note_id
		WHERE n.user_id = ? ORDER BY c.note_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}
	defer rows.Close()

	var result []*models.Conflict
	for rows.Next() {
		var c models.Conflict
		if err := rows.Scan(&c.NoteID, &c.ServerID, &c.Ciphertext, &c.Nonce, &c.Timestamp, &c.Deleted, &c.DetectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conflict: %w", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conflicts: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, noteID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM conflicts WHERE note_id = ?`, noteID); err != nil {
		return fmt.Errorf("failed to delete conflict: %w", err)
	}
	return nil
}
