// Package notes persists encrypted notes in the client SQLite database.
package notes

import (
	"context"

	"github.com/dmitrijs2005/notto/internal/client/models"
)

type Repository interface {
	Insert(ctx context.Context, n *models.Note) (int64, error)
	Update(ctx context.Context, n *models.Note) error
	GetByID(ctx context.Context, userID string, id int64) (*models.Note, error)
	GetByServerID(ctx context.Context, userID string, serverID int64) (*models.Note, error)
	List(ctx context.Context, userID string) ([]*models.Note, error)
	SelectDirty(ctx context.Context, userID string) ([]*models.Note, error)
	MarkSynced(ctx context.Context, userID string, id, serverID, timestamp int64) (bool, error)
	BindServerID(ctx context.Context, userID string, id, serverID int64) error
	Delete(ctx context.Context, userID string, id int64) error
}
