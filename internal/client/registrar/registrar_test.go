package registrar

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastParams = cryptox.KDFParams{Memory: 64, Iterations: 1, Parallelism: 1}

func TestCreateAccount_PasswordUnwrapsMEK(t *testing.T) {
	res, err := CreateAccount("alice", []byte("hunter2"), fastParams)
	require.NoError(t, err)

	got, err := res.Registration.PasswordKey.UnwrapWithSecret([]byte("hunter2"), cryptox.LabelPassword)
	require.NoError(t, err)
	assert.Equal(t, res.MasterKey, got)

	_, err = res.Registration.PasswordKey.UnwrapWithSecret([]byte("hunter3"), cryptox.LabelPassword)
	assert.ErrorIs(t, err, common.ErrAuthenticationFailure)
}

func TestCreateAccount_RecoveryPhraseUnwrapsSameMEK(t *testing.T) {
	res, err := CreateAccount("alice", []byte("hunter2"), fastParams)
	require.NoError(t, err)

	phrase, err := cryptox.NormalizeRecoveryPhrase(res.RecoveryPhrase)
	require.NoError(t, err)

	got, err := res.Registration.RecoveryKey.UnwrapWithSecret([]byte(phrase), cryptox.LabelRecovery)
	require.NoError(t, err)
	assert.Equal(t, res.MasterKey, got)
}

func TestCreateAccount_ServerCanVerifyLogin(t *testing.T) {
	res, err := CreateAccount("alice", []byte("hunter2"), fastParams)
	require.NoError(t, err)
	cred := res.Registration.Password

	challenge := &models.Challenge{Params: cred.Params, Salt: cred.Salt, ServerSalt: cred.ServerSalt}
	loginHash, err := LoginHash([]byte("hunter2"), challenge)
	require.NoError(t, err)

	recomputed, err := cryptox.HardenAuthHash(loginHash, cred.ServerSalt, cred.Params)
	require.NoError(t, err)
	assert.Equal(t, cred.StoredHash, recomputed)

	wrong, err := LoginHash([]byte("nope"), challenge)
	require.NoError(t, err)
	recomputed, err = cryptox.HardenAuthHash(wrong, cred.ServerSalt, cred.Params)
	require.NoError(t, err)
	assert.NotEqual(t, cred.StoredHash, recomputed)
}

func TestCreateAccount_SaltsAreIndependent(t *testing.T) {
	res, err := CreateAccount("alice", []byte("hunter2"), fastParams)
	require.NoError(t, err)
	r := res.Registration

	salts := [][]byte{
		r.Password.Salt, r.Password.ServerSalt, r.PasswordKey.Salt,
		r.Recovery.Salt, r.Recovery.ServerSalt, r.RecoveryKey.Salt,
	}
	seen := map[string]bool{}
	for _, s := range salts {
		require.Len(t, s, cryptox.SaltSize)
		require.False(t, seen[string(s)], "salt reused across paths")
		seen[string(s)] = true
	}
}

// Nothing sent to the server may reveal the MEK or the data-path key.
func TestCreateAccount_RegistrationHoldsNoSecrets(t *testing.T) {
	res, err := CreateAccount("alice", []byte("hunter2"), fastParams)
	require.NoError(t, err)

	wire, err := json.Marshal(res.Registration)
	require.NoError(t, err)

	dataKey, err := cryptox.Derive([]byte("hunter2"), res.Registration.PasswordKey.Salt, fastParams)
	require.NoError(t, err)

	for _, secret := range [][]byte{res.MasterKey, dataKey, []byte("hunter2"), []byte(res.RecoveryPhrase)} {
		assert.NotContains(t, string(wire), base64.StdEncoding.EncodeToString(secret))
		assert.NotContains(t, string(wire), string(secret))
	}
}

func TestCreateAccount_RejectsEmptyInput(t *testing.T) {
	_, err := CreateAccount("", []byte("pw"), fastParams)
	assert.ErrorIs(t, err, common.ErrCrypto)

	_, err = CreateAccount("bob", nil, fastParams)
	assert.ErrorIs(t, err, common.ErrCrypto)

	_, err = CreateAccount("bob", []byte("pw"), cryptox.KDFParams{})
	assert.ErrorIs(t, err, common.ErrCrypto)
}
