package cryptox

import (
	"crypto/sha256"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the length of every derived key and of the MEK.
	KeySize = 32
	// SaltSize is the length of freshly generated salts.
	SaltSize = 16
	// MinSaltSize is the shortest salt Derive accepts.
	MinSaltSize = 8

	minHashLen = 4
	maxMemory  = 4 * 1024 * 1024 // KiB
)

// KDFParams configures Argon2id. Memory is in KiB.
// HashLen is the raw Argon2 output length; zero means KeySize.
type KDFParams struct {
	Memory      uint32 `json:"memory"`
	Iterations  uint32 `json:"iterations"`
	Parallelism uint8  `json:"parallelism"`
	HashLen     uint32 `json:"hash_len,omitempty"`
}

// DefaultKDFParams returns m=19456 KiB, t=2, p=1.
func DefaultKDFParams() KDFParams {
	return KDFParams{Memory: 19456, Iterations: 2, Parallelism: 1, HashLen: KeySize}
}

func (p KDFParams) hashLen() uint32 {
	if p.HashLen == 0 {
		return KeySize
	}
	return p.HashLen
}

// Validate reports parameter sets Argon2id cannot run with.
func (p KDFParams) Validate() error {
	switch {
	case p.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be at least 1", common.ErrCrypto)
	case p.Iterations < 1:
		return fmt.Errorf("%w: iterations must be at least 1", common.ErrCrypto)
	case p.Memory < 8*uint32(p.Parallelism):
		return fmt.Errorf("%w: memory must be at least %d KiB", common.ErrCrypto, 8*uint32(p.Parallelism))
	case p.Memory > maxMemory:
		return fmt.Errorf("%w: memory exceeds %d KiB", common.ErrCrypto, maxMemory)
	case p.hashLen() < minHashLen || p.hashLen() > KeySize:
		return fmt.Errorf("%w: hash length must be within [%d, %d]", common.ErrCrypto, minHashLen, KeySize)
	}
	return nil
}

// NewSalt returns SaltSize fresh random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// Derive turns secret into a KeySize key. The result depends only on
// (secret, salt, params). A raw hash shorter than KeySize is expanded with
// SHA-256 over output||secret||salt.
func Derive(secret, salt []byte, params KDFParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", common.ErrCrypto, MinSaltSize)
	}

	out := argon2.IDKey(secret, salt, params.Iterations, params.Memory, params.Parallelism, params.hashLen())
	if len(out) == KeySize {
		return out, nil
	}
	return expand(out, secret, salt), nil
}

func expand(out, secret, salt []byte) []byte {
	h := sha256.New()
	h.Write(out)
	h.Write(secret)
	h.Write(salt)
	common.WipeByteArray(out)
	return h.Sum(nil)
}

// HardenAuthHash re-hashes a client auth hash under a server salt. The
// server recomputes it on every login and compares with the stored value.
func HardenAuthHash(authHash, serverSalt []byte, params KDFParams) ([]byte, error) {
	return Derive(authHash, serverSalt, params)
}
