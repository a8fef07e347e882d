// Package services contains the application services of the notto client.
// This file defines authentication: registration, online and offline login,
// recovery, password change and logout.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/client"
	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/registrar"
	"github.com/dmitrijs2005/notto/internal/client/session"
	"github.com/dmitrijs2005/notto/internal/client/storage"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/logging"
)

// Mode says how a login unlocked the session.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// AuthService defines authentication operations for the CLI. Successful
// logins open the shared session; Logout closes it.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) (recoveryPhrase string, err error)
	Login(ctx context.Context, username string, password []byte) (Mode, error)
	OnlineLogin(ctx context.Context, username string, password []byte) error
	OfflineLogin(ctx context.Context, username string, password []byte) error
	RecoveryLogin(ctx context.Context, username, phrase string, newPassword []byte) error
	ChangePassword(ctx context.Context, newPassword []byte) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client     client.Client
	store      *storage.Store
	session    *session.Session
	params     cryptox.KDFParams
	serverAddr string
	logger     logging.Logger
}

func NewAuthService(c client.Client, store *storage.Store, sess *session.Session, params cryptox.KDFParams, serverAddr string, logger logging.Logger) AuthService {
	return &authService{
		client:     c,
		store:      store,
		session:    sess,
		params:     params,
		serverAddr: serverAddr,
		logger:     logger.With("module", "auth"),
	}
}

// Register creates the account on the server. The master key is discarded;
// the returned recovery phrase is shown to the user exactly once.
func (a *authService) Register(ctx context.Context, username string, password []byte) (string, error) {
	res, err := registrar.CreateAccount(username, password, a.params)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(res.MasterKey)

	if err := a.client.CreateAccount(ctx, res.Registration); err != nil {
		return "", fmt.Errorf("create account: %w", err)
	}
	a.logger.Info(ctx, "account created", "username", username)
	return res.RecoveryPhrase, nil
}

// Login tries the server first and falls back to the cached account when the
// server cannot be reached.
func (a *authService) Login(ctx context.Context, username string, password []byte) (Mode, error) {
	err := a.OnlineLogin(ctx, username, password)
	if err == nil {
		return ModeOnline, nil
	}
	if !errors.Is(err, common.ErrTransport) {
		return "", err
	}

	a.logger.Info(ctx, "server unreachable, unlocking offline", "username", username)
	if err := a.OfflineLogin(ctx, username, password); err != nil {
		return "", err
	}
	return ModeOffline, nil
}

// OnlineLogin runs the login handshake, unwraps the MEK returned by the
// server and caches the account for offline use.
func (a *authService) OnlineLogin(ctx context.Context, username string, password []byte) error {
	challenge, err := a.client.LoginChallenge(ctx, username, false)
	if err != nil {
		return fmt.Errorf("login challenge: %w", err)
	}
	hash, err := registrar.LoginHash(password, challenge)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(hash)

	resp, err := a.client.Login(ctx, username, hash, false)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	mek, err := resp.Key.UnwrapWithSecret(password, cryptox.LabelPassword)
	if err != nil {
		return fmt.Errorf("unwrap master key: %w", err)
	}
	defer common.WipeByteArray(mek)

	acc := &models.Account{
		Username:       username,
		AuthParams:     challenge.Params,
		SaltAuth:       challenge.Salt,
		SaltServerAuth: challenge.ServerSalt,
		PasswordKey:    resp.Key,
		Token:          resp.Token,
		ServerAddress:  a.serverAddr,
	}
	if err := a.store.SaveAccount(ctx, acc); err != nil {
		return fmt.Errorf("offline data saving error: %w", err)
	}

	a.session.Open(username, resp.Token, a.serverAddr, mek)
	return nil
}

// OfflineLogin unwraps the cached password copy of the MEK. A successful
// AEAD open is the password check.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) error {
	acc, err := a.store.Account(ctx, username)
	if errors.Is(err, common.ErrorNotFound) {
		return client.ErrLocalDataNotAvailable
	}
	if err != nil {
		return err
	}

	mek, err := acc.PasswordKey.UnwrapWithSecret(password, cryptox.LabelPassword)
	if errors.Is(err, common.ErrAuthenticationFailure) {
		return common.ErrorUnauthorized
	}
	if err != nil {
		return err
	}
	defer common.WipeByteArray(mek)

	a.session.Open(username, acc.Token, acc.ServerAddress, mek)
	return nil
}

// RecoveryLogin unlocks the account with its recovery phrase and immediately
// re-wraps the same MEK under newPassword.
func (a *authService) RecoveryLogin(ctx context.Context, username, phrase string, newPassword []byte) error {
	normalized, err := cryptox.NormalizeRecoveryPhrase(phrase)
	if err != nil {
		return err
	}
	secret := []byte(normalized)
	defer common.WipeByteArray(secret)

	challenge, err := a.client.LoginChallenge(ctx, username, true)
	if err != nil {
		return fmt.Errorf("recovery challenge: %w", err)
	}
	hash, err := registrar.LoginHash(secret, challenge)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(hash)

	resp, err := a.client.Login(ctx, username, hash, true)
	if err != nil {
		return fmt.Errorf("recovery login: %w", err)
	}

	mek, err := resp.Key.UnwrapWithSecret(secret, cryptox.LabelRecovery)
	if err != nil {
		return fmt.Errorf("unwrap master key: %w", err)
	}
	defer common.WipeByteArray(mek)

	cred, key, err := registrar.NewPath(mek, newPassword, a.params, cryptox.LabelPassword)
	if err != nil {
		return err
	}
	if err := a.replacePasswordPath(ctx, username, resp.Token, cred, key); err != nil {
		return err
	}
	a.session.Open(username, resp.Token, a.serverAddr, mek)
	a.logger.Info(ctx, "password reset with recovery phrase", "username", username)
	return nil
}

// ChangePassword re-wraps the session's MEK under newPassword. Notes are not
// re-encrypted. The session lock covers only the derivation and the wrap.
func (a *authService) ChangePassword(ctx context.Context, newPassword []byte) error {
	snap := a.session.Snapshot()
	if snap.Token == "" {
		return common.ErrorUnauthorized
	}

	var (
		cred *models.Credential
		key  *cryptox.WrappedKey
	)
	err := a.session.WithMasterKey(func(mek []byte) error {
		var err error
		cred, key, err = registrar.NewPath(mek, newPassword, a.params, cryptox.LabelPassword)
		return err
	})
	if err != nil {
		return err
	}
	return a.replacePasswordPath(ctx, snap.UserID, snap.Token, cred, key)
}

// replacePasswordPath sends a new password path to the server and caches it.
func (a *authService) replacePasswordPath(ctx context.Context, username, token string, cred *models.Credential, key *cryptox.WrappedKey) error {
	if err := a.client.ChangePassword(ctx, username, token, cred, key); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	acc := &models.Account{
		Username:       username,
		AuthParams:     cred.Params,
		SaltAuth:       cred.Salt,
		SaltServerAuth: cred.ServerSalt,
		PasswordKey:    *key,
		Token:          token,
		ServerAddress:  a.serverAddr,
	}
	if err := a.store.SaveAccount(ctx, acc); err != nil {
		return fmt.Errorf("offline data saving error: %w", err)
	}
	return nil
}

// Logout revokes the token on the server when possible, forgets it locally
// and wipes the session. Local notes stay on the device.
func (a *authService) Logout(ctx context.Context) error {
	snap := a.session.Snapshot()
	defer a.session.Close()

	if snap.UserID == "" {
		return nil
	}
	if snap.Token != "" {
		if err := a.client.Logout(ctx, snap.UserID, snap.Token); err != nil {
			a.logger.Warn(ctx, "server logout failed", "error", err)
		}
	}
	return a.store.SetToken(ctx, snap.UserID, "")
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
