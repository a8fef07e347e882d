// Package server wires the Remote Record Service together: PostgreSQL
// storage, optional S3 ciphertext offload, the gRPC endpoint, health checks
// and the expired-session purger, all supervised by one errgroup.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notto/internal/logging"
	"github.com/dmitrijs2005/notto/internal/server/blobs"
	"github.com/dmitrijs2005/notto/internal/server/config"
	"github.com/dmitrijs2005/notto/internal/server/httpapi"
	"github.com/dmitrijs2005/notto/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/notto/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/notto/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	noteService *services.NoteService
}

// openDB is a seam for tests.
var openDB = repomanager.Open

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var store blobs.Store
	if c.BlobsEnabled() {
		s3, err := blobs.NewS3Store(ctx, blobs.Options{
			Endpoint:  c.S3BaseEndpoint,
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3RootUser,
			SecretKey: c.S3RootPassword,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("blob store init error: %w", err)
		}
		store = s3
		logger.Info(ctx, "ciphertext offload enabled", "bucket", c.S3Bucket)
	}

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		userService: services.NewUserService(db, rm, c, logger),
		noteService: services.NewNoteService(db, rm, store, logger),
	}, nil
}

// Run serves gRPC and HTTP and purges expired sessions until ctx is done or
// one of them fails.
func (app *App) Run(ctx context.Context) error {
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.GRPCAddress, app.logger, app.userService, app.noteService)
		return s.Run(gCtx)
	})

	g.Go(func() error {
		return httpapi.NewServer(app.config.HTTPAddress, app.db, app.logger).Run(gCtx)
	})

	g.Go(func() error {
		purgeLoop(gCtx, app.config.SessionPurgeInterval, app.userService, app.logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		app.logger.Error(ctx, "Application error", "error", err)
		return err
	}

	app.logger.Info(ctx, "Server stopped")
	return nil
}

type sessionPurger interface {
	PurgeSessions(ctx context.Context) (int64, error)
}

func purgeLoop(ctx context.Context, interval time.Duration, p sessionPurger, logger logging.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.PurgeSessions(ctx); err != nil {
				logger.Warn(ctx, "session purge failed", "error", err)
			}
		}
	}
}
