package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const noteColumns = `n.id, n.server_id, n.user_id, n.ciphertext, n.nonce, n.timestamp, n.synced, n.deleted,
	EXISTS (SELECT 1 FROM conflicts c WHERE c.note_id = n.id)`

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*models.Note, error) {
	var (
		n        models.Note
		serverID sql.NullInt64
	)
	if err := s.Scan(&n.ID, &serverID, &n.UserID, &n.Ciphertext, &n.Nonce, &n.Timestamp, &n.Synced, &n.Deleted, &n.Conflict); err != nil {
		return nil, err
	}
	n.ServerID = serverID.Int64
	return &n, nil
}

func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

// Insert stores n and returns its local id. Rowids only grow, so the id also
// records creation order.
func (r *SQLiteRepository) Insert(ctx context.Context, n *models.Note) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (server_id, user_id, ciphertext, nonce, timestamp, synced, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		nullableID(n.ServerID), n.UserID, n.Ciphertext, n.Nonce, n.Timestamp, n.Synced, n.Deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get note id: %w", err)
	}
	return id, nil
}

// Update overwrites every mutable column of n in one statement.
func (r *SQLiteRepository) Update(ctx context.Context, n *models.Note) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notes SET server_id = ?, ciphertext = ?, nonce = ?, timestamp = ?, synced = ?, deleted = ?
		WHERE id = ? AND user_id = ?`,
		nullableID(n.ServerID), n.Ciphertext, n.Nonce, n.Timestamp, n.Synced, n.Deleted, n.ID, n.UserID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, userID string, id int64) (*models.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes n WHERE n.user_id = ? AND n.id = ?`, userID, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) GetByServerID(ctx context.Context, userID string, serverID int64) (*models.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes n WHERE n.user_id = ? AND n.server_id = ?`, userID, serverID)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return n, nil
}

// List returns the user's live notes, tombstones excluded, oldest first.
func (r *SQLiteRepository) List(ctx context.Context, userID string) ([]*models.Note, error) {
	return r.query(ctx, `SELECT `+noteColumns+` FROM notes n WHERE n.user_id = ? AND n.deleted = 0 ORDER BY n.id`, userID)
}

// SelectDirty returns every unsynced note of the user, tombstones included,
// in creation order.
func (r *SQLiteRepository) SelectDirty(ctx context.Context, userID string) ([]*models.Note, error) {
	return r.query(ctx, `SELECT `+noteColumns+` FROM notes n WHERE n.user_id = ? AND n.synced = 0 ORDER BY n.id`, userID)
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return result, nil
}

// MarkSynced flags the note as acknowledged, but only if it still carries
// the pushed timestamp. It reports whether the row was updated; an edit made
// while the push was in flight keeps the note dirty.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, userID string, id, serverID, timestamp int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notes SET synced = 1, server_id = ?
		WHERE id = ? AND user_id = ? AND timestamp = ?`,
		serverID, id, userID, timestamp)
	if err != nil {
		return false, fmt.Errorf("failed to mark note synced: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra == 1, nil
}

// BindServerID records the server id of a note that has none yet.
func (r *SQLiteRepository) BindServerID(ctx context.Context, userID string, id, serverID int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notes SET server_id = ? WHERE id = ? AND user_id = ? AND server_id IS NULL`,
		serverID, id, userID)
	if err != nil {
		return fmt.Errorf("failed to bind server id: %w", err)
	}
	return nil
}

// Delete removes the row outright. Tombstones are written with Update.
func (r *SQLiteRepository) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}
