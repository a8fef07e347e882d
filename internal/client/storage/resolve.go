package storage

import (
	"context"

	"github.com/dmitrijs2005/notto/internal/client/models"
)

// Conflicts lists the user's unresolved conflicts.
func (s *Store) Conflicts(ctx context.Context, userID string) ([]*models.Conflict, error) {
	var list []*models.Conflict
	err := s.read(ctx, "list conflicts", func(r repos) error {
		var err error
		list, err = r.conflicts.List(ctx, userID)
		return err
	})
	return list, err
}

// Conflict returns both sides of one conflict.
func (s *Store) Conflict(ctx context.Context, userID string, noteID int64) (*models.Note, *models.Conflict, error) {
	var (
		n *models.Note
		c *models.Conflict
	)
	err := s.read(ctx, "get conflict", func(r repos) error {
		var err error
		if n, err = r.notes.GetByID(ctx, userID, noteID); err != nil {
			return err
		}
		c, err = r.conflicts.Get(ctx, noteID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return n, c, nil
}

// ResolveKeepLocal keeps the local version. The note is re-stamped past the
// remote version and stays unsynced so the next push overwrites the server.
func (s *Store) ResolveKeepLocal(ctx context.Context, userID string, noteID int64) (*models.Note, error) {
	var n *models.Note
	err := s.write(ctx, "resolve keep local", func(ctx context.Context, r repos) error {
		var (
			c   *models.Conflict
			err error
		)
		if n, c, err = loadConflict(ctx, r, userID, noteID); err != nil {
			return err
		}
		if n.ServerID == 0 {
			n.ServerID = c.ServerID
		}
		n.Timestamp = s.clock.Next(max(n.Timestamp, c.Timestamp))
		n.Synced = false
		if err := r.notes.Update(ctx, n); err != nil {
			return err
		}
		return r.conflicts.Delete(ctx, noteID)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ResolveTakeRemote discards the local edit in favour of the remote version.
func (s *Store) ResolveTakeRemote(ctx context.Context, userID string, noteID int64) (*models.Note, error) {
	var n *models.Note
	err := s.write(ctx, "resolve take remote", func(ctx context.Context, r repos) error {
		var err error
		n, err = takeRemote(ctx, r, userID, noteID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ResolveKeepBoth stores the local content as a fresh unsynced note sealed as
// copyCiphertext/copyNonce, then lets the original take the remote version.
// It returns the new copy.
func (s *Store) ResolveKeepBoth(ctx context.Context, userID string, noteID int64, copyCiphertext, copyNonce []byte) (*models.Note, error) {
	cp := &models.Note{UserID: userID, Ciphertext: copyCiphertext, Nonce: copyNonce}
	err := s.write(ctx, "resolve keep both", func(ctx context.Context, r repos) error {
		if _, err := takeRemote(ctx, r, userID, noteID); err != nil {
			return err
		}
		cp.Timestamp = s.clock.Next(0)
		id, err := r.notes.Insert(ctx, cp)
		cp.ID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	return cp, nil
}

func loadConflict(ctx context.Context, r repos, userID string, noteID int64) (*models.Note, *models.Conflict, error) {
	n, err := r.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, nil, err
	}
	c, err := r.conflicts.Get(ctx, noteID)
	if err != nil {
		return nil, nil, err
	}
	return n, c, nil
}

func takeRemote(ctx context.Context, r repos, userID string, noteID int64) (*models.Note, error) {
	n, c, err := loadConflict(ctx, r, userID, noteID)
	if err != nil {
		return nil, err
	}
	overwrite(n, c.Remote())
	if err := r.notes.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, r.conflicts.Delete(ctx, noteID)
}
