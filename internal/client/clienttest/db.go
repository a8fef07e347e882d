// Package clienttest provides test helpers for packages that need a migrated
// client database.
package clienttest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/notto/internal/client/migrations"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// OpenDB returns a migrated SQLite database in a temporary directory.
func OpenDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "notto.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}
