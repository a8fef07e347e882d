package services

import (
	"context"
	"crypto/subtle"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/notto/internal/client/client"
	"github.com/dmitrijs2005/notto/internal/client/clienttest"
	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/session"
	"github.com/dmitrijs2005/notto/internal/client/storage"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/logging"
	"github.com/dmitrijs2005/notto/internal/timex"
)

var fastParams = cryptox.KDFParams{Memory: 64, Iterations: 1, Parallelism: 1}

// fakeClient verifies credentials the way the server does. It embeds the
// interface so unused calls panic.
type fakeClient struct {
	client.Client

	mu        sync.Mutex
	accounts  map[string]*models.Registration
	tokens    map[string]string
	down      bool
	loggedOut []string

	onChangePassword func()
}

func newFakeClient() *fakeClient {
	return &fakeClient{accounts: map[string]*models.Registration{}, tokens: map[string]string{}}
}

func (f *fakeClient) setDown(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = v
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return common.ErrTransport
	}
	return nil
}

func (f *fakeClient) CreateAccount(ctx context.Context, req *models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return common.ErrTransport
	}
	if _, ok := f.accounts[req.Username]; ok {
		return common.ErrUserAlreadyExists
	}
	f.accounts[req.Username] = req
	return nil
}

func (f *fakeClient) path(acc *models.Registration, recovery bool) (*models.Credential, *cryptox.WrappedKey) {
	if recovery {
		return &acc.Recovery, &acc.RecoveryKey
	}
	return &acc.Password, &acc.PasswordKey
}

func (f *fakeClient) LoginChallenge(ctx context.Context, username string, recovery bool) (*models.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, common.ErrTransport
	}
	acc, ok := f.accounts[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cred, _ := f.path(acc, recovery)
	return &models.Challenge{Params: cred.Params, Salt: cred.Salt, ServerSalt: cred.ServerSalt}, nil
}

func (f *fakeClient) Login(ctx context.Context, username string, loginHash []byte, recovery bool) (*models.Grant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, common.ErrTransport
	}
	acc, ok := f.accounts[username]
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	cred, key := f.path(acc, recovery)
	got, err := cryptox.HardenAuthHash(loginHash, cred.ServerSalt, cred.Params)
	if err != nil || subtle.ConstantTimeCompare(got, cred.StoredHash) != 1 {
		return nil, common.ErrorUnauthorized
	}
	token := "tok-" + username
	f.tokens[token] = username
	return &models.Grant{Key: *key, Token: token}, nil
}

func (f *fakeClient) ChangePassword(ctx context.Context, username, token string, cred *models.Credential, key *cryptox.WrappedKey) error {
	if f.onChangePassword != nil {
		f.onChangePassword()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokens[token] != username {
		return common.ErrInvalidToken
	}
	acc := f.accounts[username]
	acc.Password = *cred
	acc.PasswordKey = *key
	return nil
}

func (f *fakeClient) Logout(ctx context.Context, username, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return common.ErrTransport
	}
	delete(f.tokens, token)
	f.loggedOut = append(f.loggedOut, username)
	return nil
}

type fixture struct {
	client *fakeClient
	store  *storage.Store
	sess   *session.Session
	auth   AuthService
	notes  NoteService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{client: newFakeClient(), sess: session.New()}
	f.store = storage.New(clienttest.OpenDB(t), timex.NewClockFunc(time.Now))
	f.auth = NewAuthService(f.client, f.store, f.sess, fastParams, "127.0.0.1:50051", logging.NewNopLogger())
	f.notes = NewNoteService(f.store, f.sess, logging.NewNopLogger())
	return f
}
