package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/dbx"
	"github.com/dmitrijs2005/notto/internal/logging"
	"github.com/dmitrijs2005/notto/internal/server/blobs"
	"github.com/dmitrijs2005/notto/internal/server/models"
	"github.com/dmitrijs2005/notto/internal/server/repositories/repomanager"
)

// NoteService stores opaque note records and performs the server half of
// conflict detection. A nil blob store keeps ciphertext inline in Postgres.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blobs.Store
	logger      logging.Logger
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager, store blobs.Store, logger logging.Logger) *NoteService {
	return &NoteService{
		db:          db,
		repomanager: m,
		blobs:       store,
		logger:      logger.With("module", "notes"),
	}
}

// Push applies items in one transaction. An item without a known server id
// is inserted; a known one is replaced unless the stored timestamp is newer,
// in which case the verdict is a conflict carrying the stored record.
// Every accepted item gets the next per-user revision. The returned
// watermark is the user's revision after the push.
func (s *NoteService) Push(ctx context.Context, userID string, items []*models.PushItem) ([]*models.PushResult, int64, error) {
	var (
		results   []*models.PushResult
		watermark int64
		uploaded  []string
		replaced  []string
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userRepo := s.repomanager.Users(tx)
		noteRepo := s.repomanager.Notes(tx)

		for _, item := range items {
			if item == nil {
				return fmt.Errorf("%w: nil note", common.ErrInvalidArgument)
			}

			var stored *models.Note
			if item.ID != 0 {
				n, err := noteRepo.GetForUpdate(ctx, userID, item.ID)
				switch {
				case err == nil:
					stored = n
				case errors.Is(err, common.ErrorNotFound):
					s.logger.Warn(ctx, "unknown server id, storing as new", "user_id", userID, "server_id", item.ID)
				default:
					return err
				}
			}

			if stored != nil && stored.Timestamp > item.Timestamp {
				if err := s.loadBlob(ctx, stored); err != nil {
					return err
				}
				results = append(results, &models.PushResult{
					ClientID: item.ClientID,
					ID:       stored.ID,
					Status:   models.PushConflict,
					Revision: stored.Revision,
					Current:  stored,
				})
				continue
			}

			revision, err := userRepo.NextRevision(ctx, userID)
			if err != nil {
				return err
			}

			note := &models.Note{
				UserID:     userID,
				Ciphertext: item.Ciphertext,
				Nonce:      item.Nonce,
				Timestamp:  item.Timestamp,
				Deleted:    item.Deleted,
				Revision:   revision,
			}
			if s.blobs != nil {
				key, err := s.blobs.Put(ctx, userID, item.Ciphertext)
				if err != nil {
					return err
				}
				uploaded = append(uploaded, key)
				note.BlobKey = key
				note.Ciphertext = nil
			}

			if stored == nil {
				id, err := noteRepo.Insert(ctx, note)
				if err != nil {
					return err
				}
				note.ID = id
			} else {
				note.ID = stored.ID
				if err := noteRepo.Update(ctx, note); err != nil {
					return err
				}
				if stored.BlobKey != "" {
					replaced = append(replaced, stored.BlobKey)
				}
			}

			results = append(results, &models.PushResult{
				ClientID: item.ClientID,
				ID:       note.ID,
				Status:   models.PushOK,
				Revision: revision,
			})
		}

		var err error
		watermark, err = userRepo.CurrentRevision(ctx, userID)
		return err
	})
	if err != nil {
		s.deleteBlobs(ctx, uploaded)
		if errors.Is(err, common.ErrInvalidArgument) {
			return nil, 0, err
		}
		s.logger.Error(ctx, "push failed", "user_id", userID, "error", err)
		return nil, 0, common.ErrorInternal
	}

	s.deleteBlobs(ctx, replaced)
	s.logger.Debug(ctx, "push", "user_id", userID, "notes", len(items), "watermark", watermark)
	return results, watermark, nil
}

// Pull returns the user's records with revision > since in revision order,
// and the current watermark.
func (s *NoteService) Pull(ctx context.Context, userID string, since int64) ([]*models.Note, int64, error) {
	var (
		notes     []*models.Note
		watermark int64
	)

	err := dbx.WithReadTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		notes, err = s.repomanager.Notes(tx).SelectSince(ctx, userID, since)
		if err != nil {
			return err
		}
		watermark, err = s.repomanager.Users(tx).CurrentRevision(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "pull failed", "user_id", userID, "error", err)
		return nil, 0, common.ErrorInternal
	}

	for _, n := range notes {
		if err := s.loadBlob(ctx, n); err != nil {
			s.logger.Error(ctx, "blob fetch failed", "user_id", userID, "note_id", n.ID, "error", err)
			return nil, 0, common.ErrorInternal
		}
	}

	return notes, watermark, nil
}

func (s *NoteService) loadBlob(ctx context.Context, n *models.Note) error {
	if n.BlobKey == "" {
		return nil
	}
	if s.blobs == nil {
		return fmt.Errorf("note %d is offloaded but no blob store is configured", n.ID)
	}
	data, err := s.blobs.Get(ctx, n.BlobKey)
	if err != nil {
		return err
	}
	n.Ciphertext = data
	return nil
}

func (s *NoteService) deleteBlobs(ctx context.Context, keys []string) {
	if s.blobs == nil {
		return
	}
	for _, k := range keys {
		if err := s.blobs.Delete(ctx, k); err != nil {
			s.logger.Warn(ctx, "blob delete failed", "key", k, "error", err)
		}
	}
}
