// Package users provides the PostgreSQL repository for accounts. Credentials
// and wrapped keys are stored as JSONB documents.
package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/dbx"
	"github.com/dmitrijs2005/notto/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode error: %w", err)
	}
	return string(b), nil
}

// Create inserts user with a fresh id. A taken username yields
// common.ErrUserAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	docs := make([]string, 0, 4)
	for _, v := range []any{user.Password, user.Recovery, user.PasswordKey, user.RecoveryKey} {
		s, err := toJSON(v)
		if err != nil {
			return nil, err
		}
		docs = append(docs, s)
	}

	query :=
		`INSERT INTO users (id, username, password_credential, recovery_credential, password_key, recovery_key)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`

	id := uuid.NewString()
	err := r.db.QueryRowContext(ctx, query, id, user.Username, docs[0], docs[1], docs[2], docs[3]).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = id
	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, password_credential, recovery_credential, password_key, recovery_key, current_revision, created_at
		 FROM users
		 WHERE username = $1`

	u := &models.User{}
	var pwCred, rcCred, pwKey, rcKey []byte
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&u.ID, &u.Username, &pwCred, &rcCred, &pwKey, &rcKey, &u.Revision, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	for _, d := range []struct {
		raw []byte
		dst any
	}{{pwCred, &u.Password}, {rcCred, &u.Recovery}, {pwKey, &u.PasswordKey}, {rcKey, &u.RecoveryKey}} {
		if err := json.Unmarshal(d.raw, d.dst); err != nil {
			return nil, fmt.Errorf("decode error: %w", err)
		}
	}
	return u, nil
}

// UpdatePassword replaces the password path. The recovery path is untouched.
func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID string, cred models.Credential, key cryptox.WrappedKey) error {
	credDoc, err := toJSON(cred)
	if err != nil {
		return err
	}
	keyDoc, err := toJSON(key)
	if err != nil {
		return err
	}

	query :=
		`UPDATE users SET password_credential = $2, password_key = $3
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, userID, credDoc, keyDoc)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// NextRevision bumps the user's revision counter and returns the new value.
// Inside a transaction the row lock orders concurrent pushes of one user.
func (r *PostgresRepository) NextRevision(ctx context.Context, userID string) (int64, error) {
	query :=
		`UPDATE users SET current_revision = current_revision + 1
		 WHERE id = $1
		 RETURNING current_revision`

	var rev int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&rev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return rev, nil
}

func (r *PostgresRepository) CurrentRevision(ctx context.Context, userID string) (int64, error) {
	query := `SELECT current_revision FROM users WHERE id = $1`

	var rev int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&rev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return rev, nil
}
