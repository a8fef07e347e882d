package conflicts

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/notto/internal/client/clienttest"
	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/repositories/notes"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflicts_UpsertGetListDelete(t *testing.T) {
	db := clienttest.OpenDB(t)
	ctx := context.Background()
	r := NewSQLiteRepository(db)

	noteID, err := notes.NewSQLiteRepository(db).Insert(ctx, &models.Note{
		UserID: "alice", Ciphertext: []byte("local"), Nonce: []byte("n"), Timestamp: 1,
	})
	require.NoError(t, err)

	c := &models.Conflict{NoteID: noteID, ServerID: 7, Ciphertext: []byte("remote"), Nonce: []byte("rn"), Timestamp: 5, DetectedAt: 100}
	require.NoError(t, r.Upsert(ctx, c))

	c.Timestamp = 6
	c.Deleted = true
	require.NoError(t, r.Upsert(ctx, c))

	got, err := r.Get(ctx, noteID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	list, err := r.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)

	others, err := r.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, others)

	n, err := notes.NewSQLiteRepository(db).GetByID(ctx, "alice", noteID)
	require.NoError(t, err)
	assert.True(t, n.Conflict, "note reports its pending conflict")

	require.NoError(t, r.Delete(ctx, noteID))
	_, err = r.Get(ctx, noteID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
