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
)

type MockAgendaRepository struct {
	mock.Mock
}

func (m *MockAgendaRepository) SaveAgenda(ctx context.Context, agenda domain.Agenda) error {
	return m.Called(ctx, agenda).Error(0)
}

func (m *MockAgendaRepository) FindAgendaByID(ctx context.Context, agendaID string) (*domain.Agenda, error) {
	args := m.Called(ctx, agendaID)
	var agenda *domain.Agenda
	if args.Get(0) != nil {
		agenda = args.Get(0).(*domain.Agenda)
	}
	return agenda, args.Error(1)
}

func (m *MockAgendaRepository) FindAgendas(ctx context.Context, limit, offset int) ([]domain.Agenda, error) {
	args := m.Called(ctx, limit, offset)
	var agendas []domain.Agenda
	if args.Get(0) != nil {
		agendas = args.Get(0).([]domain.Agenda)
	}
	return agendas, args.Error(1)
}

func (m *MockAgendaRepository) UpdateAgenda(ctx context.Context, agenda domain.Agenda) error {
	return m.Called(ctx, agenda).Error(0)
}

func (m *MockAgendaRepository) DeleteAgenda(ctx context.Context, agendaID string) error {
	return m.Called(ctx, agendaID).Error(0)
}

func TestCreateAgenda_StartsInDraft(t *testing.T) {
	repo := new(MockAgendaRepository)
	svc := services.NewAgendaService(repo)
	actor := domain.Actor{UserID: "u1", Role: domain.RoleSecretary1}

	repo.On("SaveAgenda", mock.Anything, mock.MatchedBy(func(a domain.Agenda) bool {
		return a.Status == domain.AgendaDraft
	})).Return(nil)

	agenda, err := svc.CreateAgenda(context.Background(), actor, dto.CreateAgendaRequest{
		Title:       "Monthly meeting",
		ScheduledAt: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AgendaDraft, agenda.Status)
	repo.AssertExpectations(t)
}

func TestUpdateAgendaStatus_ValidTransition(t *testing.T) {
	repo := new(MockAgendaRepository)
	svc := services.NewAgendaService(repo)
	actor := domain.Actor{UserID: "u1", Role: domain.RoleSecretary1}

	current := &domain.Agenda{AgendaID: "a1", Status: domain.AgendaDraft}
	repo.On("FindAgendaByID", mock.Anything, "a1").Return(current, nil)
	repo.On("UpdateAgenda", mock.Anything, mock.MatchedBy(func(a domain.Agenda) bool {
		return a.Status == domain.AgendaPublished
	})).Return(nil)

	agenda, err := svc.UpdateAgendaStatus(context.Background(), actor, "a1", domain.AgendaPublished)
	require.NoError(t, err)
	assert.Equal(t, domain.AgendaPublished, agenda.Status)
}

func TestUpdateAgendaStatus_InvalidTransition(t *testing.T) {
	repo := new(MockAgendaRepository)
	svc := services.NewAgendaService(repo)
	actor := domain.Actor{UserID: "u1", Role: domain.RoleSecretary1}

	current := &domain.Agenda{AgendaID: "a1", Status: domain.AgendaCompleted}
	repo.On("FindAgendaByID", mock.Anything, "a1").Return(current, nil)

	_, err := svc.UpdateAgendaStatus(context.Background(), actor, "a1", domain.AgendaCancelled)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "UpdateAgenda", mock.Anything, mock.Anything)
}

func TestAgendaMutations_RequireAgendaCapability(t *testing.T) {
	repo := new(MockAgendaRepository)
	svc := services.NewAgendaService(repo)

	treasurer := domain.Actor{UserID: "u2", Role: domain.RoleTreasurer1}
	_, err := svc.CreateAgenda(context.Background(), treasurer, dto.CreateAgendaRequest{Title: "x", ScheduledAt: time.Now()})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.DeleteAgenda(context.Background(), treasurer, "a1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
