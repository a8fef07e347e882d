package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/session"
	"github.com/dmitrijs2005/notto/internal/cryptox"
)

// Policy selects how a conflict is resolved.
type Policy string

const (
	PolicyManual        Policy = "manual"
	PolicyLastWriteWins Policy = "last-write-wins"
	PolicyKeepLocal     Policy = "keep-local"
	PolicyKeepBoth      Policy = "keep-both"
	PolicyTakeRemote    Policy = "take-remote"
)

// ConflictCopySuffix is appended to the title of the local copy kept by
// PolicyKeepBoth.
const ConflictCopySuffix = " (conflict copy)"

var ErrUnknownPolicy = errors.New("unknown conflict policy")

// ParsePolicy accepts the names used in configuration and the REPL.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyManual, PolicyLastWriteWins, PolicyKeepLocal, PolicyKeepBoth, PolicyTakeRemote:
		return p, nil
	case "":
		return PolicyManual, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// ConflictStore is the part of the local record store a Resolver needs.
type ConflictStore interface {
	Conflict(ctx context.Context, userID string, noteID int64) (*models.Note, *models.Conflict, error)
	ResolveKeepLocal(ctx context.Context, userID string, noteID int64) (*models.Note, error)
	ResolveTakeRemote(ctx context.Context, userID string, noteID int64) (*models.Note, error)
	ResolveKeepBoth(ctx context.Context, userID string, noteID int64, copyCiphertext, copyNonce []byte) (*models.Note, error)
}

// Resolver applies a caller-selected Policy to one stored conflict.
type Resolver struct {
	store   ConflictStore
	session *session.Session
}

func NewResolver(store ConflictStore, sess *session.Session) *Resolver {
	return &Resolver{store: store, session: sess}
}

// Resolve settles the conflict on noteID. It returns the note that will carry
// the local content forward: the original row, or the new copy for
// PolicyKeepBoth.
func (r *Resolver) Resolve(ctx context.Context, userID string, noteID int64, p Policy) (*models.Note, error) {
	switch p {
	case PolicyKeepLocal:
		return r.store.ResolveKeepLocal(ctx, userID, noteID)
	case PolicyTakeRemote:
		return r.store.ResolveTakeRemote(ctx, userID, noteID)
	case PolicyLastWriteWins:
		local, remote, err := r.store.Conflict(ctx, userID, noteID)
		if err != nil {
			return nil, err
		}
		if local.Timestamp > remote.Timestamp {
			return r.store.ResolveKeepLocal(ctx, userID, noteID)
		}
		return r.store.ResolveTakeRemote(ctx, userID, noteID)
	case PolicyKeepBoth:
		return r.keepBoth(ctx, userID, noteID)
	case PolicyManual:
		return nil, fmt.Errorf("%w: manual policy resolves nothing", ErrUnknownPolicy)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, p)
	}
}

func (r *Resolver) keepBoth(ctx context.Context, userID string, noteID int64) (*models.Note, error) {
	local, _, err := r.store.Conflict(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	// a local delete has no content worth copying
	if local.Deleted {
		return r.store.ResolveTakeRemote(ctx, userID, noteID)
	}

	var ct, nonce []byte
	err = r.session.WithMasterKey(func(mek []byte) error {
		p, err := cryptox.DecryptNote(local.Ciphertext, local.Nonce, mek)
		if err != nil {
			return err
		}
		p.Title += ConflictCopySuffix
		ct, nonce, err = cryptox.EncryptNote(*p, mek)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seal conflict copy: %w", err)
	}
	return r.store.ResolveKeepBoth(ctx, userID, noteID, ct, nonce)
}
