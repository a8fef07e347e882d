package client

import (
	"context"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/cryptox"
)

// Client is the remote record service as seen by the client application.
// Calls that act for a signed-in user carry the username and its bearer
// token explicitly.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	CreateAccount(ctx context.Context, reg *models.Registration) error
	LoginChallenge(ctx context.Context, username string, recovery bool) (*models.Challenge, error)
	Login(ctx context.Context, username string, loginHash []byte, recovery bool) (*models.Grant, error)
	ChangePassword(ctx context.Context, username, token string, cred *models.Credential, key *cryptox.WrappedKey) error
	Logout(ctx context.Context, username, token string) error
	ListNotes(ctx context.Context, username, token string, since int64) ([]*models.RemoteNote, int64, error)
	PushNotes(ctx context.Context, username, token string, notes []*models.Note) ([]*models.PushVerdict, int64, error)
}
