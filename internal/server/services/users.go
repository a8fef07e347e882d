// Package services contains server-side business logic. This file implements
// UserService: account creation, the two-step login handshake, password
// change, logout and token authentication backed by the sessions table.
package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/logging"
	"github.com/dmitrijs2005/notto/internal/server/auth"
	"github.com/dmitrijs2005/notto/internal/server/config"
	"github.com/dmitrijs2005/notto/internal/server/models"
	"github.com/dmitrijs2005/notto/internal/server/repositories/repomanager"
)

// LoginResult is what a successful login hands back: the wrapped MEK of
// the path used and a fresh session token.
type LoginResult struct {
	Key   cryptox.WrappedKey
	Token string
}

// UserService provides authentication-related operations.
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	now           func() time.Time
	logger        logging.Logger
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		now:           time.Now,
		logger:        logger.With("module", "users"),
	}
}

// CreateAccount stores a new user. The server keeps only hardened hashes
// and wrapped keys; a taken username yields common.ErrUserAlreadyExists.
func (s *UserService) CreateAccount(ctx context.Context, user *models.User) error {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return fmt.Errorf("%w: empty username", common.ErrInvalidArgument)
	}
	for _, c := range []models.Credential{user.Password, user.Recovery} {
		if err := validateCredential(c); err != nil {
			return err
		}
	}
	for _, k := range []cryptox.WrappedKey{user.PasswordKey, user.RecoveryKey} {
		if err := validateWrappedKey(k); err != nil {
			return err
		}
	}

	if _, err := s.repomanager.Users(s.db).Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			return err
		}
		s.logger.Error(ctx, "create account failed", "error", err)
		return common.ErrorInternal
	}
	s.logger.Info(ctx, "account created", "user_id", user.ID)
	return nil
}

// LoginChallenge returns the salts and KDF params for one auth path. For an
// unknown username it answers with values derived from the server secret,
// so the response does not reveal whether the account exists.
func (s *UserService) LoginChallenge(ctx context.Context, username string, recovery bool) (*models.Credential, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return s.fakeCredential(username, recovery), nil
		}
		s.logger.Error(ctx, "login challenge failed", "error", err)
		return nil, common.ErrorInternal
	}

	cred := pickCredential(user, recovery)
	return &models.Credential{Params: cred.Params, Salt: cred.Salt, ServerSalt: cred.ServerSalt}, nil
}

// Login verifies loginHash against the stored hardened hash and, on
// success, opens a session and returns its token with the wrapped MEK.
func (s *UserService) Login(ctx context.Context, username string, loginHash []byte, recovery bool) (*LoginResult, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Same amount of work as a real check.
			fake := s.fakeCredential(username, recovery)
			_, _ = cryptox.HardenAuthHash(loginHash, fake.ServerSalt, fake.Params)
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "login lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	cred := pickCredential(user, recovery)
	candidate, err := cryptox.HardenAuthHash(loginHash, cred.ServerSalt, cred.Params)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}
	if subtle.ConstantTimeCompare(candidate, cred.StoredHash) != 1 {
		s.logger.Info(ctx, "login rejected", "user_id", user.ID, "recovery", recovery)
		return nil, common.ErrorUnauthorized
	}

	now := s.now()
	token, jti, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, now, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	session := &models.Session{ID: jti, UserID: user.ID, ExpiresAt: now.Add(s.tokenValidity)}
	if err := s.repomanager.Sessions(s.db).Create(ctx, session); err != nil {
		s.logger.Error(ctx, "session create failed", "error", err)
		return nil, common.ErrorInternal
	}

	key := user.PasswordKey
	if recovery {
		key = user.RecoveryKey
	}
	s.logger.Info(ctx, "login", "user_id", user.ID, "recovery", recovery)
	return &LoginResult{Key: key, Token: token}, nil
}

// ChangePassword replaces the password path. The MEK itself is unchanged,
// so notes stay readable on every device.
func (s *UserService) ChangePassword(ctx context.Context, id *models.Identity, cred models.Credential, key cryptox.WrappedKey) error {
	if err := validateCredential(cred); err != nil {
		return err
	}
	if err := validateWrappedKey(key); err != nil {
		return err
	}
	if err := s.repomanager.Users(s.db).UpdatePassword(ctx, id.UserID, cred, key); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.logger.Error(ctx, "change password failed", "error", err)
		return common.ErrorInternal
	}
	s.logger.Info(ctx, "password changed", "user_id", id.UserID)
	return nil
}

// Logout revokes the caller's session.
func (s *UserService) Logout(ctx context.Context, id *models.Identity) error {
	if err := s.repomanager.Sessions(s.db).Revoke(ctx, id.SessionID, s.now()); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		s.logger.Error(ctx, "logout failed", "error", err)
		return common.ErrorInternal
	}
	return nil
}

// Authenticate resolves a token presented for username. The token must be
// well-formed, unexpired, issued to username, and its session must still
// be active.
func (s *UserService) Authenticate(ctx context.Context, token, username string) (*models.Identity, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if claims.Username != username {
		return nil, common.ErrInvalidToken
	}

	session, err := s.repomanager.Sessions(s.db).Find(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}
	if session.UserID != claims.UserID || !session.Active(s.now()) {
		return nil, common.ErrInvalidToken
	}

	return &models.Identity{UserID: claims.UserID, Username: claims.Username, SessionID: claims.ID}, nil
}

// PurgeSessions deletes sessions that expired before now.
func (s *UserService) PurgeSessions(ctx context.Context) (int64, error) {
	n, err := s.repomanager.Sessions(s.db).DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Debug(ctx, "expired sessions purged", "count", n)
	}
	return n, nil
}

// --- helpers below ---

func pickCredential(u *models.User, recovery bool) models.Credential {
	if recovery {
		return u.Recovery
	}
	return u.Password
}

func (s *UserService) fakeCredential(username string, recovery bool) *models.Credential {
	path := "password"
	if recovery {
		path = "recovery"
	}
	return &models.Credential{
		Params:     cryptox.DefaultKDFParams(),
		Salt:       s.mac("salt", path, username)[:cryptox.SaltSize],
		ServerSalt: s.mac("server", path, username)[:cryptox.SaltSize],
	}
}

func (s *UserService) mac(parts ...string) []byte {
	h := hmac.New(sha256.New, s.jwtSecret)
	h.Write([]byte(strings.Join(parts, "\x00")))
	return h.Sum(nil)
}

func validateCredential(c models.Credential) error {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidArgument, err)
	}
	if len(c.Salt) < cryptox.MinSaltSize || len(c.ServerSalt) < cryptox.MinSaltSize || len(c.StoredHash) == 0 {
		return fmt.Errorf("%w: incomplete credential", common.ErrInvalidArgument)
	}
	return nil
}

func validateWrappedKey(k cryptox.WrappedKey) error {
	if err := k.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidArgument, err)
	}
	if len(k.Salt) < cryptox.MinSaltSize || len(k.Nonce) == 0 || len(k.Ciphertext) == 0 {
		return fmt.Errorf("%w: incomplete wrapped key", common.ErrInvalidArgument)
	}
	return nil
}
