package storage

import (
	"context"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/repositories/metadata"
	"github.com/google/uuid"
)

// SaveAccount caches the user's wrapped keys and KDF material for offline
// unlock and remembers them as the last user of this device.
func (s *Store) SaveAccount(ctx context.Context, a *models.Account) error {
	return s.write(ctx, "save account", func(ctx context.Context, r repos) error {
		if err := r.accounts.Save(ctx, a); err != nil {
			return err
		}
		return r.metadata.SetString(ctx, metadata.KeyLastUser, a.Username)
	})
}

func (s *Store) Account(ctx context.Context, username string) (*models.Account, error) {
	var a *models.Account
	err := s.read(ctx, "get account", func(r repos) error {
		var err error
		a, err = r.accounts.Get(ctx, username)
		return err
	})
	return a, err
}

// SetToken stores or, with an empty token, forgets the session token.
func (s *Store) SetToken(ctx context.Context, username, token string) error {
	return s.read(ctx, "set token", func(r repos) error {
		return r.accounts.SetToken(ctx, username, token)
	})
}

// LastUser returns the username that last unlocked this device, or "".
func (s *Store) LastUser(ctx context.Context) (string, error) {
	var v string
	err := s.read(ctx, "last user", func(r repos) error {
		var err error
		v, err = r.metadata.GetString(ctx, metadata.KeyLastUser)
		return err
	})
	return v, err
}

// DeviceID returns this device's stable id, creating it on first use.
func (s *Store) DeviceID(ctx context.Context) (string, error) {
	var id string
	err := s.write(ctx, "device id", func(ctx context.Context, r repos) error {
		var err error
		if id, err = r.metadata.GetString(ctx, metadata.KeyDeviceID); err != nil || id != "" {
			return err
		}
		id = uuid.NewString()
		return r.metadata.SetString(ctx, metadata.KeyDeviceID, id)
	})
	return id, err
}

// Checkpoint returns the server revision up to which the user's notes have
// been pulled.
func (s *Store) Checkpoint(ctx context.Context, userID string) (int64, error) {
	var v int64
	err := s.read(ctx, "get checkpoint", func(r repos) error {
		var err error
		v, err = r.metadata.GetInt64(ctx, metadata.CheckpointKey(userID))
		return err
	})
	return v, err
}

// AdvanceCheckpoint moves the checkpoint forward to v. A lower v is ignored.
// It reports the checkpoint in effect afterwards.
func (s *Store) AdvanceCheckpoint(ctx context.Context, userID string, v int64) (int64, error) {
	var cur int64
	err := s.write(ctx, "advance checkpoint", func(ctx context.Context, r repos) error {
		var err error
		cur, err = r.metadata.RaiseInt64(ctx, metadata.CheckpointKey(userID), v)
		return err
	})
	return cur, err
}
