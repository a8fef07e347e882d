package users

import (
	"context"

	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID string, cred models.Credential, key cryptox.WrappedKey) error
	NextRevision(ctx context.Context, userID string) (int64, error)
	CurrentRevision(ctx context.Context, userID string) (int64, error)
}
