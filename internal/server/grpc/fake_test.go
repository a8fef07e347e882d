package grpc

import (
	"context"

	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/server/models"
	"github.com/dmitrijs2005/notto/internal/server/services"
)

// fakeUsers accepts one account, alice, with token "good".
type fakeUsers struct {
	created   []*models.User
	createErr error
	loginErr  error
	authErr   error
	changed   *models.Credential
	loggedOut []string
}

var alice = &models.Identity{UserID: "u-alice", Username: "alice", SessionID: "s-1"}

func (f *fakeUsers) CreateAccount(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUsers) LoginChallenge(ctx context.Context, username string, recovery bool) (*models.Credential, error) {
	salt := []byte("password-salt-16")
	if recovery {
		salt = []byte("recovery-salt-16")
	}
	return &models.Credential{Params: cryptox.DefaultKDFParams(), Salt: salt, ServerSalt: []byte("server-salt-0016")}, nil
}

func (f *fakeUsers) Login(ctx context.Context, username string, loginHash []byte, recovery bool) (*services.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if username != "alice" || string(loginHash) != "hash" {
		return nil, common.ErrorUnauthorized
	}
	return &services.LoginResult{Key: cryptox.WrappedKey{Ciphertext: []byte("wrapped")}, Token: "good"}, nil
}

func (f *fakeUsers) ChangePassword(ctx context.Context, id *models.Identity, cred models.Credential, key cryptox.WrappedKey) error {
	f.changed = &cred
	return nil
}

func (f *fakeUsers) Logout(ctx context.Context, id *models.Identity) error {
	f.loggedOut = append(f.loggedOut, id.SessionID)
	return nil
}

func (f *fakeUsers) Authenticate(ctx context.Context, token, username string) (*models.Identity, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	if token != "good" || username != "alice" {
		return nil, common.ErrInvalidToken
	}
	return alice, nil
}

type fakeNotes struct {
	pushedFor string
	pushed    []*models.PushItem
	pushErr   error
	since     int64
	stored    []*models.Note
}

func (f *fakeNotes) Push(ctx context.Context, userID string, items []*models.PushItem) ([]*models.PushResult, int64, error) {
	if f.pushErr != nil {
		return nil, 0, f.pushErr
	}
	f.pushedFor = userID
	f.pushed = items
	var out []*models.PushResult
	for i, it := range items {
		if it.ID == 99 {
			out = append(out, &models.PushResult{
				ClientID: it.ClientID, ID: 99, Status: models.PushConflict, Revision: 4,
				Current: &models.Note{ID: 99, Ciphertext: []byte("theirs"), Nonce: []byte("n"), Timestamp: 500, Revision: 4},
			})
			continue
		}
		out = append(out, &models.PushResult{ClientID: it.ClientID, ID: int64(10 + i), Status: models.PushOK, Revision: int64(5 + i)})
	}
	return out, int64(4 + len(items)), nil
}

func (f *fakeNotes) Pull(ctx context.Context, userID string, since int64) ([]*models.Note, int64, error) {
	f.since = since
	return f.stored, 7, nil
}
