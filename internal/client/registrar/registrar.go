// Package registrar builds account-creation bundles on the client.
//
// Each human secret (password, recovery phrase) has two independent paths:
// an auth path whose hash is re-hardened and sent to the server, and a data
// path whose key wraps the MEK. The data-path salt never enters the server
// hardening chain, so the server cannot reach a wrapping key.
package registrar

import (
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
)

// Result is a finished registration. Registration is safe to transmit;
// MasterKey and RecoveryPhrase stay on the device.
type Result struct {
	Registration   *models.Registration
	MasterKey      []byte
	RecoveryPhrase string
}

// CreateAccount generates a MEK and a recovery phrase and derives both paths
// for the password and for the phrase.
func CreateAccount(username string, password []byte, params cryptox.KDFParams) (*Result, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", common.ErrCrypto)
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: empty password", common.ErrCrypto)
	}

	phrase, err := cryptox.NewRecoveryPhrase()
	if err != nil {
		return nil, err
	}
	mek := cryptox.NewMasterKey()

	pwCred, pwKey, err := NewPath(mek, password, params, cryptox.LabelPassword)
	if err != nil {
		common.WipeByteArray(mek)
		return nil, fmt.Errorf("password path: %w", err)
	}
	rcCred, rcKey, err := NewPath(mek, []byte(phrase), params, cryptox.LabelRecovery)
	if err != nil {
		common.WipeByteArray(mek)
		return nil, fmt.Errorf("recovery path: %w", err)
	}

	return &Result{
		Registration: &models.Registration{
			Username:    username,
			Password:    *pwCred,
			Recovery:    *rcCred,
			PasswordKey: *pwKey,
			RecoveryKey: *rcKey,
		},
		MasterKey:      mek,
		RecoveryPhrase: phrase,
	}, nil
}

// NewPath derives the auth and data paths of one secret with fresh salts:
// salt_auth feeds auth_hash, which is re-hardened under a server salt, and
// salt_data feeds the key that wraps mek.
func NewPath(mek, secret []byte, params cryptox.KDFParams, label string) (*models.Credential, *cryptox.WrappedKey, error) {
	saltAuth := cryptox.NewSalt()
	saltServer := cryptox.NewSalt()

	authHash, err := cryptox.Derive(secret, saltAuth, params)
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(authHash)

	stored, err := cryptox.HardenAuthHash(authHash, saltServer, params)
	if err != nil {
		return nil, nil, err
	}

	wrapped, err := cryptox.WrapWithSecret(mek, secret, params, label)
	if err != nil {
		return nil, nil, err
	}

	cred := &models.Credential{Params: params, Salt: saltAuth, ServerSalt: saltServer, StoredHash: stored}
	return cred, wrapped, nil
}

// LoginHash derives the auth hash sent on login from the challenge returned
// by login-request.
func LoginHash(secret []byte, challenge *models.Challenge) ([]byte, error) {
	return cryptox.Derive(secret, challenge.Salt, challenge.Params)
}
