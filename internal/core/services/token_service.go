package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/platform/config"
	"github.com/himakom/orgadmin_backend/internal/utils"
)

// tokenService issues access tokens and manages refresh token rotation.
type tokenService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

// NewTokenService creates the token service.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiryTime, nil
}

func (s *tokenService) GenerateAndStoreRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(rawToken), expiryTime); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return rawToken, expiryTime, nil
}

func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID, rawToken string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user for refresh validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(rawToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *tokenService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
