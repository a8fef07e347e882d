package syncer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/session"
	"github.com/dmitrijs2005/notto/internal/client/storage"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/logging"
)

const (
	DefaultInterval    = time.Second
	DefaultPingTimeout = 5 * time.Second
)

// Remote is the remote record service as seen by the engine.
type Remote interface {
	Ping(ctx context.Context) error
	ListNotes(ctx context.Context, username, token string, since int64) ([]*models.RemoteNote, int64, error)
	PushNotes(ctx context.Context, username, token string, notes []*models.Note) ([]*models.PushVerdict, int64, error)
}

// Store is the local record store as seen by the engine.
type Store interface {
	ConflictStore
	SelectDirty(ctx context.Context, userID string) ([]*models.Note, error)
	ApplyRemote(ctx context.Context, userID string, remote *models.RemoteNote) (storage.ApplyResult, error)
	MarkSynced(ctx context.Context, userID string, pushed *models.Note, serverID int64) (bool, error)
	RecordConflict(ctx context.Context, userID string, id int64, remote *models.RemoteNote) (*common.ConflictError, error)
	Conflicts(ctx context.Context, userID string) ([]*models.Conflict, error)
	Checkpoint(ctx context.Context, userID string) (int64, error)
	AdvanceCheckpoint(ctx context.Context, userID string, v int64) (int64, error)
}

// Report summarises one round.
type Report struct {
	State      State
	Pulled     int
	Applied    int
	Skipped    int
	Pushed     int
	Held       int
	Acked      int
	Resolved   int
	Conflicts  []*common.ConflictError
	Checkpoint int64
	Err        error
}

type Options struct {
	Interval    time.Duration
	PingTimeout time.Duration
	// Policy is applied to every stored conflict after a round. PolicyManual
	// leaves them for the user.
	Policy Policy
}

// Engine is owned by one signed-in session: built at login, stopped at logout.
type Engine struct {
	store    Store
	remote   Remote
	session  *session.Session
	resolver *Resolver
	logger   logging.Logger
	opts     Options

	roundMu sync.Mutex

	mu    sync.RWMutex
	state State
	last  *Report

	loopMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewEngine(store Store, remote Remote, sess *session.Session, logger logging.Logger, opts Options) *Engine {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = DefaultPingTimeout
	}
	if opts.Policy == "" {
		opts.Policy = PolicyManual
	}
	return &Engine{
		store:    store,
		remote:   remote,
		session:  sess,
		resolver: NewResolver(store, sess),
		logger:   logger.With("module", "syncer"),
		opts:     opts,
	}
}

func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// LastReport returns the report of the most recent round, or nil.
func (e *Engine) LastReport() *Report {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.last
}

func (e *Engine) transition(ctx context.Context, to State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !CanTransition(e.state, to) {
		e.logger.Error(ctx, "invalid sync state transition", "from", e.state, "to", to)
		return
	}
	e.state = to
}

// RunOnce performs one round. Without a complete session (user, token,
// server address, master key) the engine stays Idle and nothing is sent.
// The returned error is the round's failure, also recorded in the report.
func (e *Engine) RunOnce(ctx context.Context) (*Report, error) {
	e.roundMu.Lock()
	defer e.roundMu.Unlock()

	snap := e.session.Snapshot()
	if !e.session.Ready() || snap.ServerAddress == "" {
		return &Report{State: StateIdle}, nil
	}

	e.transition(ctx, StateSyncing)
	rep := e.round(ctx, snap)
	e.transition(ctx, rep.State)

	switch rep.State {
	case StateSuccess:
		e.logger.Debug(ctx, "sync round done",
			"pulled", rep.Pulled, "applied", rep.Applied, "pushed", rep.Pushed,
			"held", rep.Held, "acked", rep.Acked, "conflicts", len(rep.Conflicts), "checkpoint", rep.Checkpoint)
	case StateOffline:
		e.logger.Debug(ctx, "sync round offline", "error", rep.Err)
	default:
		e.logger.Error(ctx, "sync round failed", "error", rep.Err)
	}

	e.mu.Lock()
	e.last = rep
	e.mu.Unlock()
	e.transition(ctx, StateIdle)
	return rep, rep.Err
}

func (e *Engine) round(ctx context.Context, snap session.Snapshot) *Report {
	rep := &Report{}
	fail := func(err error) *Report {
		rep.Err = err
		rep.State = StateError
		if errors.Is(err, common.ErrTransport) {
			rep.State = StateOffline
		}
		return rep
	}

	pctx, cancel := context.WithTimeout(ctx, e.opts.PingTimeout)
	err := e.remote.Ping(pctx)
	cancel()
	if err != nil {
		rep.Err = fmt.Errorf("%w: ping: %v", common.ErrTransport, err)
		rep.State = StateOffline
		return rep
	}

	user := snap.UserID
	since, err := e.store.Checkpoint(ctx, user)
	if err != nil {
		return fail(err)
	}

	pullWM, err := e.pull(ctx, snap, since, rep)
	if err != nil {
		return fail(err)
	}

	revisions, pushWM, err := e.push(ctx, snap, rep)
	if err != nil {
		return fail(err)
	}

	next := pullWM
	if contiguous(pullWM, revisions) && len(revisions) > 0 {
		next = pushWM
	}
	if rep.Checkpoint, err = e.store.AdvanceCheckpoint(ctx, user, next); err != nil {
		return fail(err)
	}

	if err := e.autoResolve(ctx, user, rep); err != nil {
		return fail(err)
	}

	rep.State = StateSuccess
	return rep
}

func (e *Engine) pull(ctx context.Context, snap session.Snapshot, since int64, rep *Report) (int64, error) {
	records, watermark, err := e.remote.ListNotes(ctx, snap.UserID, snap.Token, since)
	if err != nil {
		return 0, fmt.Errorf("pull: %w", err)
	}
	rep.Pulled = len(records)

	for _, r := range records {
		if !r.Deleted {
			if err := e.verify(r); err != nil {
				rep.Skipped++
				e.logger.Warn(ctx, "skipping undecryptable record", "server_id", r.ServerID, "error", err)
				continue
			}
		}
		res, err := e.store.ApplyRemote(ctx, snap.UserID, r)
		if err != nil {
			return 0, err
		}
		switch res.Outcome {
		case storage.ApplyInserted, storage.ApplyUpdated:
			rep.Applied++
		case storage.ApplyConflict:
			rep.Conflicts = append(rep.Conflicts, res.Conflict)
			e.logger.Warn(ctx, "conflict on pull", "note_id", res.NoteID, "server_id", r.ServerID)
		}
	}
	return watermark, nil
}

// verify checks that a pulled record opens under the master key, so that a
// corrupt or foreign record never reaches the store.
func (e *Engine) verify(r *models.RemoteNote) error {
	return e.session.WithMasterKey(func(mek []byte) error {
		_, err := cryptox.DecryptNote(r.Ciphertext, r.Nonce, mek)
		return err
	})
}

// push sends a snapshot of the dirty notes taken under the store lock; the
// lock is released before the network call. Notes with an unresolved
// conflict stay local until the conflict is resolved. It returns the
// revisions the server assigned to accepted notes and the server's watermark.
func (e *Engine) push(ctx context.Context, snap session.Snapshot, rep *Report) ([]int64, int64, error) {
	dirty, err := e.store.SelectDirty(ctx, snap.UserID)
	if err != nil {
		return nil, 0, err
	}
	dirty = slices.DeleteFunc(dirty, func(n *models.Note) bool {
		if n.Conflict {
			rep.Held++
		}
		return n.Conflict
	})
	if len(dirty) == 0 {
		return nil, 0, nil
	}
	rep.Pushed = len(dirty)

	verdicts, watermark, err := e.remote.PushNotes(ctx, snap.UserID, snap.Token, dirty)
	if err != nil {
		return nil, 0, fmt.Errorf("push: %w", err)
	}

	pushed := make(map[int64]*models.Note, len(dirty))
	for _, n := range dirty {
		pushed[n.ID] = n
	}

	revisions := make([]int64, 0, len(verdicts))
	for _, v := range verdicts {
		n, ok := pushed[v.ClientID]
		if !ok {
			e.logger.Warn(ctx, "verdict for a note that was not pushed", "client_id", v.ClientID)
			continue
		}
		switch v.Status {
		case models.PushOK:
			revisions = append(revisions, v.Revision)
			synced, err := e.store.MarkSynced(ctx, snap.UserID, n, v.ServerID)
			if err != nil {
				return nil, 0, err
			}
			if synced {
				rep.Acked++
			}
		case models.PushConflict:
			ce, err := e.store.RecordConflict(ctx, snap.UserID, n.ID, v.Current)
			if err != nil {
				return nil, 0, err
			}
			rep.Conflicts = append(rep.Conflicts, ce)
			e.logger.Warn(ctx, "conflict on push", "note_id", n.ID, "server_id", v.ServerID)
		default:
			e.logger.Warn(ctx, "unknown push status", "client_id", v.ClientID, "status", v.Status)
		}
	}
	return revisions, watermark, nil
}

// contiguous reports whether revs are exactly from+1..from+len(revs), i.e.
// the push wrote every revision after the pull watermark and nothing from
// another device can hide between them.
func contiguous(from int64, revs []int64) bool {
	sorted := slices.Clone(revs)
	slices.Sort(sorted)
	for i, r := range sorted {
		if r != from+int64(i)+1 {
			return false
		}
	}
	return true
}

func (e *Engine) autoResolve(ctx context.Context, user string, rep *Report) error {
	if e.opts.Policy == PolicyManual {
		return nil
	}
	conflicts, err := e.store.Conflicts(ctx, user)
	if err != nil {
		return err
	}
	for _, c := range conflicts {
		if _, err := e.resolver.Resolve(ctx, user, c.NoteID, e.opts.Policy); err != nil {
			e.logger.Error(ctx, "conflict resolution failed", "note_id", c.NoteID, "policy", e.opts.Policy, "error", err)
			continue
		}
		rep.Resolved++
	}
	return nil
}

// SyncNow runs a round immediately, waiting for any round in progress.
func (e *Engine) SyncNow(ctx context.Context) (*Report, error) {
	return e.RunOnce(ctx)
}

// Start runs rounds every Interval until ctx is done or Stop is called.
// A round that has begun always runs to completion.
func (e *Engine) Start(ctx context.Context) {
	e.loopMu.Lock()
	defer e.loopMu.Unlock()
	if e.cancel != nil {
		return
	}

	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})
	go e.loop(ctx, e.done)
}

func (e *Engine) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(e.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = e.RunOnce(context.WithoutCancel(ctx))
		case <-ctx.Done():
			return
		}
	}
}

// Stop ends the loop and waits for the current round to finish.
func (e *Engine) Stop() {
	e.loopMu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel, e.done = nil, nil
	e.loopMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
