package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notto/internal/server/models"
)

// Repository persists issued tokens so that logout can revoke them.
type Repository interface {
	Create(ctx context.Context, s *models.Session) error
	Find(ctx context.Context, id string) (*models.Session, error)
	Revoke(ctx context.Context, id string, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
