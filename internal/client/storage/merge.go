package storage

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/common"
)

// ApplyOutcome says what ApplyRemote did with a pulled record.
type ApplyOutcome int

const (
	ApplyUnchanged ApplyOutcome = iota
	ApplyInserted
	ApplyUpdated
	ApplyConflict
)

func (o ApplyOutcome) String() string {
	switch o {
	case ApplyInserted:
		return "inserted"
	case ApplyUpdated:
		return "updated"
	case ApplyConflict:
		return "conflict"
	default:
		return "unchanged"
	}
}

// ApplyResult carries the outcome and, for ApplyConflict, the conflict.
type ApplyResult struct {
	Outcome  ApplyOutcome
	NoteID   int64
	Conflict *common.ConflictError
}

// ApplyRemote merges one pulled record:
//   - unknown server id: inserted as synced (a remote tombstone is ignored);
//   - remote strictly newer and local synced: remote overwrites local;
//   - remote strictly newer and local unsynced: the remote version is kept
//     aside as a conflict and the local edit is left untouched;
//   - otherwise local already holds the same or a newer version.
func (s *Store) ApplyRemote(ctx context.Context, userID string, remote *models.RemoteNote) (ApplyResult, error) {
	var res ApplyResult
	err := s.write(ctx, "apply remote", func(ctx context.Context, r repos) error {
		local, err := r.notes.GetByServerID(ctx, userID, remote.ServerID)
		if errors.Is(err, common.ErrorNotFound) {
			if remote.Deleted {
				return nil
			}
			n := &models.Note{
				ServerID:   remote.ServerID,
				UserID:     userID,
				Ciphertext: remote.Ciphertext,
				Nonce:      remote.Nonce,
				Timestamp:  remote.Timestamp,
				Synced:     true,
			}
			res.NoteID, err = r.notes.Insert(ctx, n)
			res.Outcome = ApplyInserted
			return err
		}
		if err != nil {
			return err
		}

		res.NoteID = local.ID
		if remote.Timestamp <= local.Timestamp {
			return nil
		}

		if local.Synced {
			overwrite(local, remote)
			if err := r.notes.Update(ctx, local); err != nil {
				return err
			}
			res.Outcome = ApplyUpdated
			return r.conflicts.Delete(ctx, local.ID)
		}

		res.Outcome = ApplyConflict
		res.Conflict = &common.ConflictError{
			NoteID:          local.ID,
			ServerID:        remote.ServerID,
			LocalTimestamp:  local.Timestamp,
			RemoteTimestamp: remote.Timestamp,
		}
		return r.conflicts.Upsert(ctx, s.conflictRow(local.ID, remote))
	})
	if err != nil {
		return ApplyResult{}, err
	}
	return res, nil
}

func overwrite(n *models.Note, remote *models.RemoteNote) {
	n.ServerID = remote.ServerID
	n.Ciphertext = remote.Ciphertext
	n.Nonce = remote.Nonce
	n.Timestamp = remote.Timestamp
	n.Deleted = remote.Deleted
	n.Synced = true
}

func (s *Store) conflictRow(noteID int64, remote *models.RemoteNote) *models.Conflict {
	return &models.Conflict{
		NoteID:     noteID,
		ServerID:   remote.ServerID,
		Ciphertext: remote.Ciphertext,
		Nonce:      remote.Nonce,
		Timestamp:  remote.Timestamp,
		Deleted:    remote.Deleted,
		DetectedAt: s.now().UTC().UnixMilli(),
	}
}

// MarkSynced records a push acknowledgment for pushed. The note becomes
// synced only if it still has the pushed timestamp; either way it learns its
// server id. A note deleted outright while the push was in flight is replaced
// by an unsynced tombstone, so the next push removes the server copy.
func (s *Store) MarkSynced(ctx context.Context, userID string, pushed *models.Note, serverID int64) (bool, error) {
	var ok bool
	err := s.write(ctx, "mark synced", func(ctx context.Context, r repos) error {
		var err error
		ok, err = r.notes.MarkSynced(ctx, userID, pushed.ID, serverID, pushed.Timestamp)
		if err != nil {
			return err
		}
		if ok {
			return r.conflicts.Delete(ctx, pushed.ID)
		}
		_, err = r.notes.GetByID(ctx, userID, pushed.ID)
		switch {
		case err == nil:
			return r.notes.BindServerID(ctx, userID, pushed.ID, serverID)
		case errors.Is(err, common.ErrorNotFound):
			return s.orphanTombstone(ctx, r, userID, pushed, serverID)
		default:
			return err
		}
	})
	return ok, err
}

func (s *Store) orphanTombstone(ctx context.Context, r repos, userID string, pushed *models.Note, serverID int64) error {
	if pushed.Deleted {
		return nil
	}
	_, err := r.notes.GetByServerID(ctx, userID, serverID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	_, err = r.notes.Insert(ctx, &models.Note{
		ServerID:   serverID,
		UserID:     userID,
		Ciphertext: pushed.Ciphertext,
		Nonce:      pushed.Nonce,
		Timestamp:  s.clock.Next(pushed.Timestamp),
		Deleted:    true,
	})
	return err
}

// RecordConflict stores the server's current version of a note whose push
// was rejected. The local note stays unsynced.
func (s *Store) RecordConflict(ctx context.Context, userID string, id int64, remote *models.RemoteNote) (*common.ConflictError, error) {
	var ce *common.ConflictError
	err := s.write(ctx, "record conflict", func(ctx context.Context, r repos) error {
		n, err := r.notes.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		ce = &common.ConflictError{NoteID: id, ServerID: n.ServerID, LocalTimestamp: n.Timestamp}
		if remote == nil {
			return nil
		}
		ce.ServerID = remote.ServerID
		ce.RemoteTimestamp = remote.Timestamp
		if n.ServerID == 0 {
			if err := r.notes.BindServerID(ctx, userID, id, remote.ServerID); err != nil {
				return err
			}
		}
		return r.conflicts.Upsert(ctx, s.conflictRow(id, remote))
	})
	if err != nil {
		return nil, err
	}
	return ce, nil
}
