package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/notto/internal/client/client"
	"github.com/dmitrijs2005/notto/internal/client/config"
	"github.com/dmitrijs2005/notto/internal/client/services"
	"github.com/dmitrijs2005/notto/internal/client/session"
	"github.com/dmitrijs2005/notto/internal/client/storage"
	"github.com/dmitrijs2005/notto/internal/client/syncer"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/logging"
	"github.com/dmitrijs2005/notto/internal/timex"
)

// syncEngine is the part of *syncer.Engine the CLI drives.
type syncEngine interface {
	Start(ctx context.Context)
	Stop()
	SyncNow(ctx context.Context) (*syncer.Report, error)
	State() syncer.State
	LastReport() *syncer.Report
}

type App struct {
	config  *config.Config
	auth    services.AuthService
	notes   services.NoteService
	session *session.Session
	logger  logging.Logger

	// newEngine builds a sync engine for the session opened by a login.
	newEngine func() syncEngine

	mu     sync.Mutex
	engine syncEngine
	mode   services.Mode

	reader *bufio.Reader
	out    io.Writer

	closers []func() error
}

// NewApp opens the local database and the server connection and builds the
// services. The connection is lazy, so an unreachable server is not an error.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerAddress, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := storage.New(db, timex.NewClock())
	sess := session.New()

	a := &App{
		config:  c,
		auth:    services.NewAuthService(apiClient, store, sess, cryptox.DefaultKDFParams(), c.ServerAddress, logger),
		notes:   services.NewNoteService(store, sess, logger),
		session: sess,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closers: []func() error{apiClient.Close, closeDB(db)},
	}
	a.newEngine = func() syncEngine {
		return syncer.NewEngine(store, apiClient, sess, logger, syncer.Options{
			Interval:    c.SyncInterval,
			PingTimeout: c.RequestTimeout,
			Policy:      c.Policy(),
		})
	}
	return a, nil
}

func closeDB(db *sql.DB) func() error {
	return db.Close
}

// Run blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to notto (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.status, scanner)
}

// Close stops the engine, wipes the session and releases resources.
func (a *App) Close() {
	a.stopEngine()
	a.session.Close()
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Unlocked()
}

func (a *App) startEngine(ctx context.Context, mode services.Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = mode
	if a.engine != nil || a.newEngine == nil {
		return
	}
	a.engine = a.newEngine()
	a.engine.Start(ctx)
}

func (a *App) stopEngine() {
	a.mu.Lock()
	e := a.engine
	a.engine = nil
	a.mode = ""
	a.mu.Unlock()
	if e != nil {
		e.Stop()
	}
}

func (a *App) currentEngine() syncEngine {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine
}

// status renders the prompt suffix, e.g. "alice offline". The connectivity
// word follows the last sync round once one has run.
func (a *App) status() string {
	snap := a.session.Snapshot()
	if snap.UserID == "" {
		return ""
	}

	a.mu.Lock()
	mode := string(a.mode)
	a.mu.Unlock()

	if e := a.currentEngine(); e != nil {
		if rep := e.LastReport(); rep != nil {
			switch rep.State {
			case syncer.StateOffline:
				mode = string(services.ModeOffline)
			case syncer.StateError:
				mode = "sync-error"
			case syncer.StateSuccess:
				mode = string(services.ModeOnline)
			}
		}
	}
	if mode == "" {
		return snap.UserID
	}
	return snap.UserID + " " + mode
}
