package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
	"github.com/himakom/orgadmin_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates the login account service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageUsers); err != nil {
		return nil, err
	}

	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}

	if existing, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil && existing != nil {
		return nil, fmt.Errorf("username %q taken: %w", req.Username, apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("new_user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.User, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageUsers); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageUsers); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s for update: %w", userID, err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q: %w", *req.Role, apperrors.ErrValidation)
		}
		user.Role = role
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = actor.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	if err := s.Authorize(ctx, actor, domain.CapManageUsers); err != nil {
		return err
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), actor.UserID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	s.LogInfo(ctx, "User deleted", slog.String("target_user_id", userID))
	return nil
}

// Authenticate verifies credentials. It returns ErrUnauthorized for both an
// unknown username and a wrong password so callers cannot probe accounts.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
