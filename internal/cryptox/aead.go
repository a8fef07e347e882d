package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/common"
)

const (
	// NonceSize is the GCM nonce length (96 bits).
	NonceSize = 12
	// TagSize is the GCM authentication tag length (128 bits).
	TagSize = 16
)

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", common.ErrCrypto, KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	return aead, nil
}

// Seal encrypts plaintext under key with a fresh random nonce.
// The ciphertext carries the tag appended.
func Seal(key, plaintext, aad []byte) (nonce, ciphertext []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	nonce = common.GenerateRandByteArray(NonceSize)
	return nonce, aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open authenticates and decrypts ciphertext. A wrong key, tampered data or
// mismatched aad yields ErrAuthenticationFailure. A nonce of the wrong length
// yields ErrMalformedNonce.
func Open(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", common.ErrMalformedNonce, NonceSize, len(nonce))
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < TagSize {
		return nil, fmt.Errorf("%w: ciphertext shorter than tag", common.ErrAuthenticationFailure)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, common.ErrAuthenticationFailure
	}
	return plaintext, nil
}
