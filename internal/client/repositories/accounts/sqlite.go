// Package accounts caches the user's key material on the device so the
// vault can be unlocked offline.
package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/dbx"
)

type Repository interface {
	Save(ctx context.Context, a *models.Account) error
	Get(ctx context.Context, username string) (*models.Account, error)
	SetToken(ctx context.Context, username, token string) error
	Delete(ctx context.Context, username string) error
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save inserts or replaces the account row for a.Username.
func (r *SQLiteRepository) Save(ctx context.Context, a *models.Account) error {
	authParams, err := json.Marshal(a.AuthParams)
	if err != nil {
		return fmt.Errorf("failed to encode auth params: %w", err)
	}
	dataParams, err := json.Marshal(a.PasswordKey.Params)
	if err != nil {
		return fmt.Errorf("failed to encode data params: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (username, auth_params, salt_auth, salt_server_auth,
			data_params, salt_data, mek_password_nonce, wrapped_mek_password,
			token, server_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			auth_params = excluded.auth_params,
			salt_auth = excluded.salt_auth,
			salt_server_auth = excluded.salt_server_auth,
			data_params = excluded.data_params,
			salt_data = excluded.salt_data,
			mek_password_nonce = excluded.mek_password_nonce,
			wrapped_mek_password = excluded.wrapped_mek_password,
			token = excluded.token,
			server_address = excluded.server_address`,
		a.Username, string(authParams), a.SaltAuth, a.SaltServerAuth,
		string(dataParams), a.PasswordKey.Salt, a.PasswordKey.Nonce, a.PasswordKey.Ciphertext,
		a.Token, a.ServerAddress)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, username string) (*models.Account, error) {
	var (
		a                      models.Account
		authParams, dataParams string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, auth_params, salt_auth, salt_server_auth,
			data_params, salt_data, mek_password_nonce, wrapped_mek_password,
			token, server_address
		FROM users WHERE username = ?`, username).Scan(
		&a.ID, &a.Username, &authParams, &a.SaltAuth, &a.SaltServerAuth,
		&dataParams, &a.PasswordKey.Salt, &a.PasswordKey.Nonce, &a.PasswordKey.Ciphertext,
		&a.Token, &a.ServerAddress)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err := json.Unmarshal([]byte(authParams), &a.AuthParams); err != nil {
		return nil, fmt.Errorf("failed to decode auth params: %w", err)
	}
	if err := json.Unmarshal([]byte(dataParams), &a.PasswordKey.Params); err != nil {
		return nil, fmt.Errorf("failed to decode data params: %w", err)
	}
	return &a, nil
}

func (r *SQLiteRepository) SetToken(ctx context.Context, username, token string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET token = ? WHERE username = ?`, token, username)
	if err != nil {
		return fmt.Errorf("failed to set token: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
