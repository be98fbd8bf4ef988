package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/core/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
	"github.com/himakom/orgadmin_backend/internal/utils"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	return m.Called(ctx, userID, refreshTokenHash, expiryTime).Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	return m.Called(ctx, userID, deletedAt, deleterUserID).Error(0)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)
	admin := domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}

	repo.On("FindUserByUsername", mock.Anything, "sekretaris").Return(nil, apperrors.ErrNotFound)
	repo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "sekretaris" &&
			u.Role == domain.RoleSecretary1 &&
			u.PasswordHash != "rahasia-sekali" &&
			utils.CheckPasswordHash("rahasia-sekali", u.PasswordHash)
	})).Return(nil)

	user, err := svc.CreateUser(context.Background(), admin, dto.CreateUserRequest{
		Username: "sekretaris",
		Password: "rahasia-sekali",
		Name:     "Siti Rahma",
		Role:     "SECRETARY_1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	repo.AssertExpectations(t)
}

func TestCreateUser_RejectsUnknownRole(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)
	admin := domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}

	_, err := svc.CreateUser(context.Background(), admin, dto.CreateUserRequest{
		Username: "x",
		Password: "password123",
		Name:     "X",
		Role:     "SUPREME_LEADER",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)
	admin := domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}

	existing := &domain.User{UserID: "u1", Username: "sekretaris"}
	repo.On("FindUserByUsername", mock.Anything, "sekretaris").Return(existing, nil)

	_, err := svc.CreateUser(context.Background(), admin, dto.CreateUserRequest{
		Username: "sekretaris",
		Password: "password123",
		Name:     "Siti Rahma",
		Role:     "SECRETARY_1",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestCreateUser_RequiresUserManagement(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)

	chair := domain.Actor{UserID: "u1", Role: domain.RoleChair}
	_, err := svc.CreateUser(context.Background(), chair, dto.CreateUserRequest{
		Username: "x",
		Password: "password123",
		Name:     "X",
		Role:     "MEMBER",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestAuthenticate_SingleFailureMode(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)
	user := &domain.User{UserID: "u1", Username: "budi", PasswordHash: hash}

	repo.On("FindUserByUsername", mock.Anything, "budi").Return(user, nil)
	repo.On("FindUserByUsername", mock.Anything, "nobody").Return(nil, apperrors.ErrNotFound)

	got, err := svc.Authenticate(context.Background(), "budi", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	// Unknown user and wrong password collapse to the same error.
	_, err = svc.Authenticate(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Authenticate(context.Background(), "budi", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
