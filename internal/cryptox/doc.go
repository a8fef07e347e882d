// Package cryptox implements the client-side cryptography of notto:
// Argon2id key derivation, AES-256-GCM sealing, MEK envelope wrapping,
// per-note encryption and BIP-39 recovery phrases.
//
// All failures are reported as errors matching the sentinels in package
// common (ErrCrypto, ErrAuthenticationFailure, ErrMalformedNonce). Nothing in
// this package panics on attacker-controlled input.
package cryptox
