package metadata

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/notto/internal/client/clienttest"
	"github.com/dmitrijs2005/notto/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrings(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(clienttest.OpenDB(t))

	v, err := r.GetString(ctx, KeyLastUser)
	require.NoError(t, err)
	assert.Empty(t, v, "missing key reads as zero value")

	require.NoError(t, r.SetString(ctx, KeyLastUser, "alice"))
	require.NoError(t, r.SetString(ctx, KeyLastUser, "bob"))

	v, err = r.GetString(ctx, KeyLastUser)
	require.NoError(t, err)
	assert.Equal(t, "bob", v)
}

func TestRaiseInt64(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(clienttest.OpenDB(t))
	key := CheckpointKey("u-1")

	steps := []struct {
		raise int64
		want  int64
	}{
		{raise: 5, want: 5},
		{raise: 3, want: 5},
		{raise: 5, want: 5},
		{raise: 1 << 40, want: 1 << 40},
	}
	for _, s := range steps {
		got, err := r.RaiseInt64(ctx, key, s.raise)
		require.NoError(t, err)
		assert.Equal(t, s.want, got, "raise to %d", s.raise)
	}

	stored, err := r.GetInt64(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), stored)

	other, err := r.GetInt64(ctx, CheckpointKey("u-2"))
	require.NoError(t, err)
	assert.Zero(t, other, "checkpoints are per user")
}

func TestGetInt64_CorruptValue(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(clienttest.OpenDB(t))

	require.NoError(t, r.SetString(ctx, "checkpoint:u-1", "12"))

	_, err := r.GetInt64(ctx, "checkpoint:u-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 8 bytes")
}

func TestRaiseInt64_RolledBackWithTx(t *testing.T) {
	ctx := context.Background()
	db := clienttest.OpenDB(t)
	key := CheckpointKey("u-1")

	_, err := NewSQLiteRepository(db).RaiseInt64(ctx, key, 10)
	require.NoError(t, err)

	errAbort := assert.AnError
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		got, err := NewSQLiteRepository(tx).RaiseInt64(ctx, key, 20)
		require.NoError(t, err)
		require.Equal(t, int64(20), got)
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	got, err := NewSQLiteRepository(db).GetInt64(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)
}

func TestClosedDB(t *testing.T) {
	ctx := context.Background()
	db := clienttest.OpenDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.GetString(ctx, KeyDeviceID)
	assert.ErrorContains(t, err, `read metadata "device_id"`)
	assert.ErrorContains(t, r.SetString(ctx, KeyDeviceID, "d"), `write metadata "device_id"`)
	_, err = r.RaiseInt64(ctx, CheckpointKey("u"), 1)
	assert.Error(t, err)
}
