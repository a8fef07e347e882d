package syncer

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/notto/internal/client/clienttest"
	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/session"
	"github.com/dmitrijs2005/notto/internal/client/storage"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/logging"
	"github.com/dmitrijs2005/notto/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const user = "alice"

// fakeServer follows the remote record service rules for a single user.
type fakeServer struct {
	mu       sync.Mutex
	revision int64
	nextID   int64
	records  map[int64]*models.RemoteNote
	pingErr  error
	listErr  error
	pushErr  error
	pushes   int
}

func newFakeServer() *fakeServer {
	return &fakeServer{records: map[int64]*models.RemoteNote{}}
}

func (f *fakeServer) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

func (f *fakeServer) ListNotes(ctx context.Context, username, token string, since int64) ([]*models.RemoteNote, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var out []*models.RemoteNote
	for _, r := range f.records {
		if r.Revision > since {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revision < out[j].Revision })
	return out, f.revision, nil
}

func (f *fakeServer) PushNotes(ctx context.Context, username, token string, notes []*models.Note) ([]*models.PushVerdict, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return nil, 0, f.pushErr
	}
	f.pushes++
	verdicts := make([]*models.PushVerdict, 0, len(notes))
	for _, n := range notes {
		sid := n.ServerID
		if cur, ok := f.records[sid]; ok && cur.Timestamp > n.Timestamp {
			cp := *cur
			verdicts = append(verdicts, &models.PushVerdict{ClientID: n.ID, ServerID: sid, Status: models.PushConflict, Current: &cp})
			continue
		}
		if sid == 0 {
			f.nextID++
			sid = f.nextID
		}
		f.revision++
		f.records[sid] = &models.RemoteNote{
			ServerID: sid, Ciphertext: n.Ciphertext, Nonce: n.Nonce,
			Timestamp: n.Timestamp, Deleted: n.Deleted, Revision: f.revision,
		}
		verdicts = append(verdicts, &models.PushVerdict{ClientID: n.ID, ServerID: sid, Status: models.PushOK, Revision: f.revision})
	}
	return verdicts, f.revision, nil
}

// inject stores a record as if written by another device.
func (f *fakeServer) inject(r models.RemoteNote) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revision++
	if r.ServerID == 0 {
		f.nextID++
		r.ServerID = f.nextID
	}
	r.Revision = f.revision
	f.records[r.ServerID] = &r
}

type device struct {
	store  *storage.Store
	sess   *session.Session
	engine *Engine
	mek    []byte

	mu  sync.Mutex
	now time.Time
}

func newDevice(t *testing.T, remote Remote, mek []byte, opts Options) *device {
	t.Helper()
	d := &device{mek: mek, now: time.UnixMilli(10_000)}
	d.store = storage.New(clienttest.OpenDB(t), timex.NewClockFunc(d.clock))
	d.sess = session.New()
	d.sess.Open(user, "token", "bufnet", mek)
	d.engine = NewEngine(d.store, remote, d.sess, logging.NewNopLogger(), opts)
	return d
}

func (d *device) clock() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.now
}

func (d *device) setClock(ms int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.now = time.UnixMilli(ms)
}

func (d *device) seal(t *testing.T, title, content string) ([]byte, []byte) {
	t.Helper()
	ct, nonce, err := cryptox.EncryptNote(cryptox.NotePayload{Title: title, Content: content}, d.mek)
	require.NoError(t, err)
	return ct, nonce
}

func (d *device) write(t *testing.T, title, content string) *models.Note {
	t.Helper()
	ct, nonce := d.seal(t, title, content)
	n, err := d.store.CreateNote(context.Background(), user, ct, nonce)
	require.NoError(t, err)
	return n
}

func (d *device) edit(t *testing.T, id int64, title, content string) *models.Note {
	t.Helper()
	ct, nonce := d.seal(t, title, content)
	n, err := d.store.UpdateNote(context.Background(), user, id, ct, nonce)
	require.NoError(t, err)
	return n
}

func (d *device) read(t *testing.T, id int64) *cryptox.NotePayload {
	t.Helper()
	n, err := d.store.GetNote(context.Background(), user, id)
	require.NoError(t, err)
	p, err := cryptox.DecryptNote(n.Ciphertext, n.Nonce, d.mek)
	require.NoError(t, err)
	return p
}

func (d *device) noteByServerID(t *testing.T, serverID int64) *models.Note {
	t.Helper()
	list, err := d.store.ListNotes(context.Background(), user)
	require.NoError(t, err)
	for _, n := range list {
		if n.ServerID == serverID {
			return n
		}
	}
	t.Fatalf("no note with server id %d", serverID)
	return nil
}

func TestRunOnce_IdleWithoutSession(t *testing.T) {
	srv := newFakeServer()
	d := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
	d.write(t, "t", "c")
	d.sess.SetToken("")

	rep, err := d.engine.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateIdle, rep.State)
	assert.Equal(t, StateIdle, d.engine.State())
	assert.Zero(t, srv.pushes, "nothing leaves the device without a token")
}

func TestRunOnce_PushesDirtyAndAdvancesCheckpoint(t *testing.T) {
	ctx := context.Background()
	srv := newFakeServer()
	d := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
	d.write(t, "one", "1")
	d.write(t, "two", "2")

	rep, err := d.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, rep.State)
	assert.Equal(t, 2, rep.Pushed)
	assert.Equal(t, 2, rep.Acked)
	assert.Equal(t, int64(2), rep.Checkpoint)
	assert.Equal(t, StateIdle, d.engine.State())
	assert.Same(t, rep, d.engine.LastReport())

	dirty, err := d.store.SelectDirty(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, dirty)
	list, err := d.store.ListNotes(ctx, user)
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.Synced)
		assert.NotZero(t, n.ServerID)
	}

	// own writes are not pulled back as changes
	rep, err = d.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, rep.Pulled)
	assert.Equal(t, int64(2), rep.Checkpoint)
}

func TestRunOnce_PullsForeignWrites(t *testing.T) {
	ctx := context.Background()
	srv := newFakeServer()
	a := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
	b := newDevice(t, srv, a.mek, Options{})

	a.write(t, "shared", "from a")
	_, err := a.engine.RunOnce(ctx)
	require.NoError(t, err)

	rep, err := b.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Pulled)
	assert.Equal(t, 1, rep.Applied)

	n := b.noteByServerID(t, 1)
	assert.True(t, n.Synced)
	assert.Equal(t, "from a", b.read(t, n.ID).Content)
}

func TestRunOnce_Offline(t *testing.T) {
	ctx := context.Background()

	t.Run("ping failure", func(t *testing.T) {
		srv := newFakeServer()
		srv.pingErr = common.ErrTransport
		d := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
		d.write(t, "t", "c")

		rep, err := d.engine.RunOnce(ctx)
		assert.ErrorIs(t, err, common.ErrTransport)
		assert.Equal(t, StateOffline, rep.State)
		assert.Zero(t, srv.pushes)
	})

	t.Run("push transport failure keeps checkpoint", func(t *testing.T) {
		srv := newFakeServer()
		d := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
		srv.inject(sealed(t, d.mek, 1))
		srv.pushErr = common.ErrTransport
		d.write(t, "t", "c")

		rep, err := d.engine.RunOnce(ctx)
		assert.ErrorIs(t, err, common.ErrTransport)
		assert.Equal(t, StateOffline, rep.State)
		assert.Equal(t, 1, rep.Applied, "pulled records stay applied")

		cp, err := d.store.Checkpoint(ctx, user)
		require.NoError(t, err)
		assert.Zero(t, cp)
		dirty, err := d.store.SelectDirty(ctx, user)
		require.NoError(t, err)
		assert.Len(t, dirty, 1)
	})

	t.Run("rejected token is an error, not offline", func(t *testing.T) {
		srv := newFakeServer()
		srv.listErr = common.ErrInvalidToken
		d := newDevice(t, srv, cryptox.NewMasterKey(), Options{})

		rep, err := d.engine.RunOnce(ctx)
		assert.ErrorIs(t, err, common.ErrInvalidToken)
		assert.Equal(t, StateError, rep.State)
		assert.Equal(t, StateIdle, d.engine.State())
	})
}

// sealed returns a foreign record encrypted under mek.
func sealed(t *testing.T, mek []byte, ts int64) models.RemoteNote {
	t.Helper()
	ct, nonce, err := cryptox.EncryptNote(cryptox.NotePayload{Title: "x", Content: "y"}, mek)
	require.NoError(t, err)
	return models.RemoteNote{Ciphertext: ct, Nonce: nonce, Timestamp: ts}
}

func TestRunOnce_SkipsUndecryptableRecord(t *testing.T) {
	ctx := context.Background()
	srv := newFakeServer()
	d := newDevice(t, srv, cryptox.NewMasterKey(), Options{})

	srv.inject(sealed(t, cryptox.NewMasterKey(), 1))
	srv.inject(sealed(t, d.mek, 2))

	rep, err := d.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, rep.State)
	assert.Equal(t, 2, rep.Pulled)
	assert.Equal(t, 1, rep.Skipped)
	assert.Equal(t, 1, rep.Applied)
	assert.Equal(t, int64(2), rep.Checkpoint)
}

func TestCheckpoint_NotPastForeignWrite(t *testing.T) {
	ctx := context.Background()
	srv := newFakeServer()
	d := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
	d.write(t, "t", "c")

	// another device writes between this device's pull and push
	interleaved := &interleavingRemote{fakeServer: srv, beforePush: func() {
		srv.inject(sealed(t, d.mek, 1))
	}}
	d.engine.remote = interleaved

	rep, err := d.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rep.Checkpoint, "revision 1 was never pulled")

	rep, err = d.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Pulled)
	assert.Equal(t, 1, rep.Applied)
	assert.Equal(t, int64(2), rep.Checkpoint)
}

type interleavingRemote struct {
	*fakeServer
	beforePush func()
}

func (r *interleavingRemote) PushNotes(ctx context.Context, username, token string, notes []*models.Note) ([]*models.PushVerdict, int64, error) {
	if r.beforePush != nil {
		r.beforePush()
		r.beforePush = nil
	}
	return r.fakeServer.PushNotes(ctx, username, token, notes)
}

func TestScenario_OfflineEditsOnTwoDevices(t *testing.T) {
	ctx := context.Background()
	srv := newFakeServer()
	a := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
	b := newDevice(t, srv, a.mek, Options{})

	orig := a.write(t, "plan", "v1")
	_, err := a.engine.RunOnce(ctx)
	require.NoError(t, err)
	_, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)
	serverID := a.noteByServerID(t, 1).ServerID

	// both devices edit while offline; b's clock is behind
	a.setClock(20_000)
	a.edit(t, orig.ID, "plan", "edited on a")
	b.setClock(5_000)
	bNote := b.noteByServerID(t, serverID)
	bEdit := b.edit(t, bNote.ID, "plan", "edited on b")

	rep, err := a.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Acked)

	rep, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, rep.State)
	require.NotEmpty(t, rep.Conflicts)
	for _, c := range rep.Conflicts {
		assert.True(t, errors.Is(c, common.ErrConflict))
		assert.Equal(t, bNote.ID, c.NoteID)
	}

	got, err := b.store.GetNote(ctx, user, bNote.ID)
	require.NoError(t, err)
	assert.False(t, got.Synced, "b keeps its edit unsynced")
	assert.True(t, got.Conflict)
	assert.Equal(t, bEdit.Timestamp, got.Timestamp)
	assert.Equal(t, "edited on b", b.read(t, bNote.ID).Content)

	// the server still holds a's version
	assert.Equal(t, int64(20_000), srv.records[serverID].Timestamp)

	// resolution is explicit
	_, err = NewResolver(b.store, b.sess).Resolve(ctx, user, bNote.ID, PolicyLastWriteWins)
	require.NoError(t, err)
	assert.Equal(t, "edited on a", b.read(t, bNote.ID).Content)
}

func TestRunOnce_AutoResolveKeepLocal(t *testing.T) {
	ctx := context.Background()
	srv := newFakeServer()
	a := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
	b := newDevice(t, srv, a.mek, Options{Policy: PolicyKeepLocal})

	n := a.write(t, "t", "base")
	_, err := a.engine.RunOnce(ctx)
	require.NoError(t, err)
	_, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)

	a.setClock(50_000)
	a.edit(t, n.ID, "t", "from a")
	_, err = a.engine.RunOnce(ctx)
	require.NoError(t, err)

	bNote := b.noteByServerID(t, 1)
	b.edit(t, bNote.ID, "t", "from b")

	rep, err := b.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Resolved)

	// the kept local edit now outranks the server copy and goes out next round
	rep, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Acked)
	assert.Empty(t, rep.Conflicts)

	_, err = a.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from b", a.read(t, n.ID).Content)
}

func TestRunOnce_DeletePropagates(t *testing.T) {
	ctx := context.Background()
	srv := newFakeServer()
	a := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
	b := newDevice(t, srv, a.mek, Options{})

	n := a.write(t, "t", "doomed")
	_, err := a.engine.RunOnce(ctx)
	require.NoError(t, err)
	_, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)

	a.setClock(30_000)
	require.NoError(t, a.store.DeleteNote(ctx, user, n.ID))
	_, err = a.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.True(t, srv.records[1].Deleted)

	_, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)
	list, err := b.store.ListNotes(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRunOnce_DeleteDuringPushReachesServer(t *testing.T) {
	ctx := context.Background()
	srv := newFakeServer()
	a := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
	b := newDevice(t, srv, a.mek, Options{})

	n := a.write(t, "t", "short-lived")
	a.engine.remote = &interleavingRemote{fakeServer: srv, beforePush: func() {
		require.NoError(t, a.store.DeleteNote(ctx, user, n.ID))
	}}

	rep, err := a.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, rep.Acked)
	assert.False(t, srv.records[1].Deleted, "the server accepted the live version")

	rep, err = a.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Acked)
	assert.True(t, srv.records[1].Deleted)

	dirty, err := a.store.SelectDirty(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, dirty)

	_, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)
	list, err := b.store.ListNotes(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRunOnce_ConflictedNoteHeldUntilResolved(t *testing.T) {
	ctx := context.Background()
	srv := newFakeServer()
	a := newDevice(t, srv, cryptox.NewMasterKey(), Options{})
	b := newDevice(t, srv, a.mek, Options{})

	n := a.write(t, "t", "base")
	_, err := a.engine.RunOnce(ctx)
	require.NoError(t, err)
	_, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)

	a.setClock(50_000)
	a.edit(t, n.ID, "t", "from a")
	_, err = a.engine.RunOnce(ctx)
	require.NoError(t, err)

	bNote := b.noteByServerID(t, 1)
	b.edit(t, bNote.ID, "t", "from b")
	pushes := srv.pushes

	rep, err := b.engine.RunOnce(ctx)
	require.NoError(t, err)
	require.Len(t, rep.Conflicts, 1)
	assert.Zero(t, rep.Pushed)
	assert.Equal(t, 1, rep.Held)

	rep, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, rep.Pushed)
	assert.Equal(t, 1, rep.Held)
	assert.Empty(t, rep.Conflicts)
	assert.Equal(t, pushes, srv.pushes, "a conflicted note is not re-sent every round")

	got, err := b.store.GetNote(ctx, user, bNote.ID)
	require.NoError(t, err)
	assert.True(t, got.Conflict)
	assert.False(t, got.Synced)

	_, err = NewResolver(b.store, b.sess).Resolve(ctx, user, bNote.ID, PolicyKeepLocal)
	require.NoError(t, err)

	rep, err = b.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Acked)
	assert.Zero(t, rep.Held)
	assert.Equal(t, "from b", srvContent(t, srv, a.mek, 1))
}

func srvContent(t *testing.T, srv *fakeServer, mek []byte, serverID int64) string {
	t.Helper()
	srv.mu.Lock()
	r := srv.records[serverID]
	srv.mu.Unlock()
	p, err := cryptox.DecryptNote(r.Ciphertext, r.Nonce, mek)
	require.NoError(t, err)
	return p.Content
}

func TestContiguous(t *testing.T) {
	assert.True(t, contiguous(4, []int64{5, 6, 7}))
	assert.True(t, contiguous(4, []int64{7, 5, 6}))
	assert.True(t, contiguous(4, nil))
	assert.False(t, contiguous(4, []int64{6, 7}))
	assert.False(t, contiguous(4, []int64{5, 7}))
}

func TestStartStop(t *testing.T) {
	srv := newFakeServer()
	d := newDevice(t, srv, cryptox.NewMasterKey(), Options{Interval: 10 * time.Millisecond})
	d.write(t, "t", "c")

	d.engine.Start(context.Background())
	d.engine.Start(context.Background())
	require.Eventually(t, func() bool {
		dirty, err := d.store.SelectDirty(context.Background(), user)
		return err == nil && len(dirty) == 0
	}, 2*time.Second, 10*time.Millisecond)

	d.engine.Stop()
	d.engine.Stop()
	assert.Equal(t, StateIdle, d.engine.State())
}

func TestStateTransitions(t *testing.T) {
	assert.True(t, CanTransition(StateIdle, StateSyncing))
	assert.True(t, CanTransition(StateSyncing, StateOffline))
	assert.True(t, CanTransition(StateError, StateIdle))
	assert.False(t, CanTransition(StateIdle, StateSuccess))
	assert.False(t, CanTransition(StateSuccess, StateSyncing))
	assert.Equal(t, "offline", StateOffline.String())
}
