package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictError_IsConflict(t *testing.T) {
	var err error = &ConflictError{NoteID: 1, ServerID: 7, LocalTimestamp: 10, RemoteTimestamp: 20}
	wrapped := fmt.Errorf("push: %w", err)

	assert.ErrorIs(t, wrapped, ErrConflict)
	assert.NotErrorIs(t, wrapped, ErrDatabase)

	var ce *ConflictError
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, int64(7), ce.ServerID)
	assert.Contains(t, err.Error(), "server id 7")
}

func TestDatabaseError_WrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDatabaseError("insert note", cause)

	assert.ErrorIs(t, err, ErrDatabase)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert note")
}

func TestNewDatabaseError_NilPassthrough(t *testing.T) {
	assert.NoError(t, NewDatabaseError("noop", nil))
}
