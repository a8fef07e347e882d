package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/session"
	"github.com/dmitrijs2005/notto/internal/client/storage"
	"github.com/dmitrijs2005/notto/internal/client/syncer"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/logging"
)

// NoteService is note CRUD for the signed-in user. Notes are sealed before
// they reach the store and opened after they leave it.
type NoteService interface {
	Create(ctx context.Context, title, content string) (*models.NoteView, error)
	Update(ctx context.Context, id int64, title, content string) (*models.NoteView, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.NoteView, error)
	List(ctx context.Context) ([]*models.NoteView, error)
	Conflicts(ctx context.Context) ([]*models.ConflictView, error)
	Resolve(ctx context.Context, id int64, policy syncer.Policy) (*models.NoteView, error)
}

type noteService struct {
	store    *storage.Store
	session  *session.Session
	resolver *syncer.Resolver
	logger   logging.Logger
}

func NewNoteService(store *storage.Store, sess *session.Session, logger logging.Logger) NoteService {
	return &noteService{
		store:    store,
		session:  sess,
		resolver: syncer.NewResolver(store, sess),
		logger:   logger.With("module", "notes"),
	}
}

func (s *noteService) user() (string, error) {
	snap := s.session.Snapshot()
	if snap.UserID == "" || !s.session.Unlocked() {
		return "", common.ErrorUnauthorized
	}
	return snap.UserID, nil
}

func (s *noteService) seal(title, content string) (ct, nonce []byte, err error) {
	err = s.session.WithMasterKey(func(mek []byte) error {
		ct, nonce, err = cryptox.EncryptNote(cryptox.NotePayload{Title: title, Content: content}, mek)
		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("encryption error: %w", err)
	}
	return ct, nonce, nil
}

func (s *noteService) open(n *models.Note) (*models.NoteView, error) {
	var p *cryptox.NotePayload
	err := s.session.WithMasterKey(func(mek []byte) error {
		var err error
		p, err = cryptox.DecryptNote(n.Ciphertext, n.Nonce, mek)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &models.NoteView{
		ID:        n.ID,
		Title:     p.Title,
		Content:   p.Content,
		Timestamp: n.Timestamp,
		Synced:    n.Synced,
		Conflict:  n.Conflict,
	}, nil
}

func (s *noteService) Create(ctx context.Context, title, content string) (*models.NoteView, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}
	ct, nonce, err := s.seal(title, content)
	if err != nil {
		return nil, err
	}
	n, err := s.store.CreateNote(ctx, user, ct, nonce)
	if err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}
	return &models.NoteView{ID: n.ID, Title: title, Content: content, Timestamp: n.Timestamp}, nil
}

func (s *noteService) Update(ctx context.Context, id int64, title, content string) (*models.NoteView, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}
	ct, nonce, err := s.seal(title, content)
	if err != nil {
		return nil, err
	}
	n, err := s.store.UpdateNote(ctx, user, id, ct, nonce)
	if err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}
	return &models.NoteView{ID: n.ID, Title: title, Content: content, Timestamp: n.Timestamp, Conflict: n.Conflict}, nil
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	user, err := s.user()
	if err != nil {
		return err
	}
	if err := s.store.DeleteNote(ctx, user, id); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	return nil
}

func (s *noteService) Get(ctx context.Context, id int64) (*models.NoteView, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}
	n, err := s.store.GetNote(ctx, user, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving note: %w", err)
	}
	v, err := s.open(n)
	if err != nil {
		return nil, fmt.Errorf("error decrypting note: %w", err)
	}
	return v, nil
}

// List returns every live note it can open. A note that fails to decrypt is
// logged and left out; it does not fail the listing.
func (s *noteService) List(ctx context.Context) ([]*models.NoteView, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListNotes(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	out := make([]*models.NoteView, 0, len(rows))
	for _, n := range rows {
		v, err := s.open(n)
		if err != nil {
			s.logger.Warn(ctx, "error decrypting note", "note_id", n.ID, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *noteService) Conflicts(ctx context.Context) ([]*models.ConflictView, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}
	list, err := s.store.Conflicts(ctx, user)
	if err != nil {
		return nil, err
	}

	out := make([]*models.ConflictView, 0, len(list))
	for _, c := range list {
		local, _, err := s.store.Conflict(ctx, user, c.NoteID)
		if err != nil {
			return nil, err
		}
		cv := &models.ConflictView{NoteID: c.NoteID}
		if !local.Deleted {
			if cv.Local, err = s.open(local); err != nil {
				s.logger.Warn(ctx, "error decrypting local side", "note_id", c.NoteID, "error", err)
			}
		}
		if !c.Deleted {
			remote := &models.Note{ID: c.NoteID, Ciphertext: c.Ciphertext, Nonce: c.Nonce, Timestamp: c.Timestamp, Synced: true}
			if cv.Remote, err = s.open(remote); err != nil {
				s.logger.Warn(ctx, "error decrypting remote side", "note_id", c.NoteID, "error", err)
			}
		}
		out = append(out, cv)
	}
	return out, nil
}

// Resolve settles one conflict. It returns the note carrying the surviving
// content, or nil when the surviving version is a deletion.
func (s *noteService) Resolve(ctx context.Context, id int64, policy syncer.Policy) (*models.NoteView, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}
	n, err := s.resolver.Resolve(ctx, user, id, policy)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	if n.Deleted {
		return nil, nil
	}
	v, err := s.open(n)
	if err != nil {
		return nil, fmt.Errorf("error decrypting note: %w", err)
	}
	return v, nil
}
