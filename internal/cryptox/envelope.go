package cryptox

import (
	"fmt"

	"github.com/dmitrijs2005/notto/internal/common"
)

// Wrap labels bind a wrapped MEK copy to its unlock path.
const (
	LabelPassword = "mek:password"
	LabelRecovery = "mek:recovery"
)

// WrappedKey is one sealed copy of the MEK together with everything needed
// to re-derive its wrapping key from the human secret.
type WrappedKey struct {
	Params     KDFParams `json:"params"`
	Salt       []byte    `json:"salt"`
	Nonce      []byte    `json:"nonce"`
	Ciphertext []byte    `json:"ciphertext"`
}

// NewMasterKey returns a random KeySize MEK.
func NewMasterKey() []byte {
	return common.GenerateRandByteArray(KeySize)
}

// Wrap seals mek under derivedKey with a fresh nonce.
func Wrap(mek, derivedKey []byte, label string) (nonce, ciphertext []byte, err error) {
	if len(mek) != KeySize {
		return nil, nil, fmt.Errorf("%w: master key must be %d bytes", common.ErrCrypto, KeySize)
	}
	return Seal(derivedKey, mek, []byte(label))
}

// Unwrap recovers the MEK sealed by Wrap.
func Unwrap(nonce, ciphertext, derivedKey []byte, label string) ([]byte, error) {
	mek, err := Open(derivedKey, nonce, ciphertext, []byte(label))
	if err != nil {
		return nil, err
	}
	if len(mek) != KeySize {
		common.WipeByteArray(mek)
		return nil, fmt.Errorf("%w: unwrapped key has length %d", common.ErrCrypto, len(mek))
	}
	return mek, nil
}

// WrapWithSecret derives a wrapping key from secret under a fresh salt and
// seals mek with it. The derived key is wiped before returning.
func WrapWithSecret(mek, secret []byte, params KDFParams, label string) (*WrappedKey, error) {
	salt := NewSalt()
	return WrapWithSalt(mek, secret, salt, params, label)
}

// WrapWithSalt is WrapWithSecret with a caller-chosen salt.
func WrapWithSalt(mek, secret, salt []byte, params KDFParams, label string) (*WrappedKey, error) {
	key, err := Derive(secret, salt, params)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	nonce, ct, err := Wrap(mek, key, label)
	if err != nil {
		return nil, err
	}
	return &WrappedKey{Params: params, Salt: salt, Nonce: nonce, Ciphertext: ct}, nil
}

// UnwrapWithSecret re-derives the wrapping key from secret and opens w.
func (w *WrappedKey) UnwrapWithSecret(secret []byte, label string) ([]byte, error) {
	key, err := Derive(secret, w.Salt, w.Params)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)
	return Unwrap(w.Nonce, w.Ciphertext, key, label)
}
