package repositories

import (
	"context"
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// UserRepository persists login accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error
}
