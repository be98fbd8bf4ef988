package services

import (
	"context"
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// UserSvcFacade manages login accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, userID string) error
	// Authenticate verifies username/password and returns the account.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenSvcFacade issues and validates access and refresh tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// GenerateAndStoreRefreshToken mints a new opaque refresh token, stores
	// its hash against the user and returns the raw token with its expiry.
	GenerateAndStoreRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateRefreshToken checks the raw token against the stored hash.
	ValidateRefreshToken(ctx context.Context, userID, rawToken string) (*domain.User, error)
	ClearRefreshToken(ctx context.Context, userID string) error
}
