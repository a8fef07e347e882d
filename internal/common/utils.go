package common

import "crypto/rand"

// GenerateRandByteArray returns n bytes from crypto/rand. Salts, nonces and
// master keys all come from here. It panics only if the system random source
// is broken.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray zeroes b in place. Used on master keys and derived secrets
// once they are no longer needed. Nil is a no-op.
func WipeByteArray(b []byte) {
	clear(b)
}
