// Package models defines server-side records persisted in PostgreSQL.
// Note payloads are opaque ciphertext; the server never holds a key that
// can open them.
package models
