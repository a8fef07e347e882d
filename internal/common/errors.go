package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthorized    = errors.New("unauthorized")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidArgument   = errors.New("invalid argument")

	// Auth errors (invalid, revoked or foreign token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Crypto errors.
	ErrCrypto                = errors.New("crypto error")
	ErrAuthenticationFailure = errors.New("authentication failure")
	ErrMalformedNonce        = errors.New("malformed nonce")

	// Sync errors.
	ErrTransport = errors.New("transport error")
	ErrConflict  = errors.New("conflict")

	// Local storage errors.
	ErrDatabase = errors.New("database error")
)

// ConflictError describes two divergent versions of one note. It is returned
// as data by the sync engine and never resolved implicitly.
type ConflictError struct {
	NoteID          int64
	ServerID        int64
	LocalTimestamp  int64
	RemoteTimestamp int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on note %d (server id %d): local ts %d, remote ts %d",
		e.NoteID, e.ServerID, e.LocalTimestamp, e.RemoteTimestamp)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// DatabaseError wraps a failed local storage operation.
type DatabaseError struct {
	Op  string
	Err error
}

// NewDatabaseError returns nil when err is nil so it can wrap results inline.
func NewDatabaseError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Op: op, Err: err}
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v: %v", ErrDatabase, e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

func (e *DatabaseError) Is(target error) bool {
	return target == ErrDatabase
}
