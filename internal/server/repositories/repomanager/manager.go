package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/notto/internal/dbx"
	"github.com/dmitrijs2005/notto/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notto/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/notto/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a *sql.DB or a *sql.Tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
