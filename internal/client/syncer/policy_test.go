package syncer

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	for _, s := range []string{"manual", "last-write-wins", "keep-local", "keep-both", "take-remote"} {
		p, err := ParsePolicy(s)
		require.NoError(t, err)
		assert.Equal(t, Policy(s), p)
	}
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyManual, p)

	_, err = ParsePolicy("merge")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

// conflicted returns a device whose single note conflicts with a remote
// version stamped remoteTS.
func conflicted(t *testing.T, remoteTS int64) (*device, *models.Note) {
	t.Helper()
	d := newDevice(t, newFakeServer(), cryptox.NewMasterKey(), Options{})
	n := d.write(t, "groceries", "milk")
	r := sealed(t, d.mek, remoteTS)
	r.ServerID = 3
	_, err := d.store.RecordConflict(context.Background(), user, n.ID, &r)
	require.NoError(t, err)
	return d, n
}

func TestResolve_KeepBothCopiesLocalWithSuffix(t *testing.T) {
	ctx := context.Background()
	d, n := conflicted(t, 99_000)

	cp, err := NewResolver(d.store, d.sess).Resolve(ctx, user, n.ID, PolicyKeepBoth)
	require.NoError(t, err)
	assert.NotEqual(t, n.ID, cp.ID)

	p := d.read(t, cp.ID)
	assert.Equal(t, "groceries (conflict copy)", p.Title)
	assert.Equal(t, "milk", p.Content)

	orig, err := d.store.GetNote(ctx, user, n.ID)
	require.NoError(t, err)
	assert.True(t, orig.Synced)
	assert.Equal(t, int64(99_000), orig.Timestamp)
}

func TestResolve_LastWriteWins(t *testing.T) {
	ctx := context.Background()

	t.Run("local newer", func(t *testing.T) {
		d, n := conflicted(t, 1)
		got, err := NewResolver(d.store, d.sess).Resolve(ctx, user, n.ID, PolicyLastWriteWins)
		require.NoError(t, err)
		assert.False(t, got.Synced)
		assert.Greater(t, got.Timestamp, n.Timestamp)
		assert.Equal(t, "milk", d.read(t, n.ID).Content)
	})

	t.Run("remote newer", func(t *testing.T) {
		d, n := conflicted(t, 99_000)
		got, err := NewResolver(d.store, d.sess).Resolve(ctx, user, n.ID, PolicyLastWriteWins)
		require.NoError(t, err)
		assert.True(t, got.Synced)
		assert.Equal(t, "y", d.read(t, n.ID).Content)
	})
}

func TestResolve_ManualAndLockedSession(t *testing.T) {
	ctx := context.Background()
	d, n := conflicted(t, 99_000)
	r := NewResolver(d.store, d.sess)

	_, err := r.Resolve(ctx, user, n.ID, PolicyManual)
	assert.ErrorIs(t, err, ErrUnknownPolicy)

	d.sess.Close()
	_, err = r.Resolve(ctx, user, n.ID, PolicyKeepBoth)
	assert.Error(t, err, "a copy cannot be sealed without the master key")

	cs, err := d.store.Conflicts(ctx, user)
	require.NoError(t, err)
	assert.Len(t, cs, 1, "failed resolution leaves the conflict in place")
}
