package notes

import (
	"context"

	"github.com/dmitrijs2005/notto/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, note *models.Note) (int64, error)
	GetForUpdate(ctx context.Context, userID string, id int64) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	SelectSince(ctx context.Context, userID string, since int64) ([]*models.Note, error)
}
