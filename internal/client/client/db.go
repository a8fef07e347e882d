package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/migrations"
	"github.com/dmitrijs2005/notto/internal/filex"
	_ "modernc.org/sqlite"
)

// RunMigrations brings the local database schema up to date.
var RunMigrations = migrations.Up

// InitDatabase opens the device database at dsn, creating its directory
// if needed, and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("failed to prepare database dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
