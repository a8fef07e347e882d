// Package storage is the Local Record Store: a per-device SQLite database of
// encrypted notes plus sync bookkeeping.
//
// Every exported method takes the store lock for the duration of one local
// operation only. Callers must never hold results across network I/O and
// expect them to stay current; re-read after the call returns.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/notto/internal/client/repositories/conflicts"
	"github.com/dmitrijs2005/notto/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/notto/internal/client/repositories/notes"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/dbx"
	"github.com/dmitrijs2005/notto/internal/timex"
)

type Store struct {
	mu    sync.Mutex
	db    *sql.DB
	clock *timex.Clock
	now   func() time.Time
}

func New(db *sql.DB, clock *timex.Clock) *Store {
	return &Store{db: db, clock: clock, now: time.Now}
}

// repos is the set of repositories bound to one handle.
type repos struct {
	notes     notes.Repository
	conflicts conflicts.Repository
	accounts  accounts.Repository
	metadata  metadata.Repository
}

func bind(db dbx.DBTX) repos {
	return repos{
		notes:     notes.NewSQLiteRepository(db),
		conflicts: conflicts.NewSQLiteRepository(db),
		accounts:  accounts.NewSQLiteRepository(db),
		metadata:  metadata.NewSQLiteRepository(db),
	}
}

func dbErr(op string, err error) error {
	if err == nil || errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrDatabase) {
		return err
	}
	return common.NewDatabaseError(op, err)
}

// read runs fn under the lock without a transaction.
func (s *Store) read(ctx context.Context, op string, fn func(r repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dbErr(op, fn(bind(s.db)))
}

// write runs fn under the lock inside one transaction.
func (s *Store) write(ctx context.Context, op string, fn func(ctx context.Context, r repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, bind(tx))
	})
	return dbErr(op, err)
}

// CreateNote stores a new unsynced note.
func (s *Store) CreateNote(ctx context.Context, userID string, ciphertext, nonce []byte) (*models.Note, error) {
	n := &models.Note{UserID: userID, Ciphertext: ciphertext, Nonce: nonce}
	err := s.write(ctx, "create note", func(ctx context.Context, r repos) error {
		n.Timestamp = s.clock.Next(0)
		id, err := r.notes.Insert(ctx, n)
		n.ID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// UpdateNote replaces a note's sealed payload, marks it unsynced and
// advances its timestamp.
func (s *Store) UpdateNote(ctx context.Context, userID string, id int64, ciphertext, nonce []byte) (*models.Note, error) {
	var n *models.Note
	err := s.write(ctx, "update note", func(ctx context.Context, r repos) error {
		var err error
		n, err = r.notes.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if n.Deleted {
			return common.ErrorNotFound
		}
		n.Ciphertext, n.Nonce = ciphertext, nonce
		n.Timestamp = s.clock.Next(n.Timestamp)
		n.Synced = false
		return r.notes.Update(ctx, n)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// DeleteNote turns a note the server knows about into an unsynced tombstone.
// A note that never left the device is removed outright.
func (s *Store) DeleteNote(ctx context.Context, userID string, id int64) error {
	return s.write(ctx, "delete note", func(ctx context.Context, r repos) error {
		n, err := r.notes.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if n.Deleted {
			return common.ErrorNotFound
		}
		if n.ServerID == 0 {
			if err := r.conflicts.Delete(ctx, id); err != nil {
				return err
			}
			return r.notes.Delete(ctx, userID, id)
		}
		n.Deleted = true
		n.Synced = false
		n.Timestamp = s.clock.Next(n.Timestamp)
		return r.notes.Update(ctx, n)
	})
}

// GetNote returns a live note.
func (s *Store) GetNote(ctx context.Context, userID string, id int64) (*models.Note, error) {
	var n *models.Note
	err := s.read(ctx, "get note", func(r repos) error {
		var err error
		n, err = r.notes.GetByID(ctx, userID, id)
		if err == nil && n.Deleted {
			err = common.ErrorNotFound
		}
		return err
	})
	return n, err
}

// ListNotes returns live notes in creation order.
func (s *Store) ListNotes(ctx context.Context, userID string) ([]*models.Note, error) {
	var list []*models.Note
	err := s.read(ctx, "list notes", func(r repos) error {
		var err error
		list, err = r.notes.List(ctx, userID)
		return err
	})
	return list, err
}

// SelectDirty returns every unsynced note of the user in creation order.
func (s *Store) SelectDirty(ctx context.Context, userID string) ([]*models.Note, error) {
	var list []*models.Note
	err := s.read(ctx, "select dirty", func(r repos) error {
		var err error
		list, err = r.notes.SelectDirty(ctx, userID)
		return err
	})
	return list, err
}
