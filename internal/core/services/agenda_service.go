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
)

type agendaService struct {
	BaseService
	agendaRepo portsrepo.AgendaRepository
}

// NewAgendaService creates the schedule item service.
func NewAgendaService(agendaRepo portsrepo.AgendaRepository) portssvc.AgendaSvcFacade {
	return &agendaService{agendaRepo: agendaRepo}
}

var _ portssvc.AgendaSvcFacade = (*agendaService)(nil)

func (s *agendaService) CreateAgenda(ctx context.Context, actor domain.Actor, req dto.CreateAgendaRequest) (*domain.Agenda, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageAgenda); err != nil {
		return nil, err
	}

	now := time.Now()
	agenda := domain.Agenda{
		AgendaID:    uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
		Location:    req.Location,
		Status:      domain.AgendaDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.agendaRepo.SaveAgenda(ctx, agenda); err != nil {
		return nil, fmt.Errorf("failed to create agenda: %w", err)
	}

	s.LogInfo(ctx, "Agenda created", slog.String("agenda_id", agenda.AgendaID), slog.String("title", agenda.Title))
	return &agenda, nil
}

func (s *agendaService) GetAgendaByID(ctx context.Context, actor domain.Actor, agendaID string) (*domain.Agenda, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	agenda, err := s.agendaRepo.FindAgendaByID(ctx, agendaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agenda %s: %w", agendaID, err)
	}
	return agenda, nil
}

func (s *agendaService) ListAgendas(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Agenda, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	agendas, err := s.agendaRepo.FindAgendas(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list agendas: %w", err)
	}
	return agendas, nil
}

func (s *agendaService) UpdateAgenda(ctx context.Context, actor domain.Actor, agendaID string, req dto.UpdateAgendaRequest) (*domain.Agenda, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageAgenda); err != nil {
		return nil, err
	}

	agenda, err := s.agendaRepo.FindAgendaByID(ctx, agendaID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agenda %s for update: %w", agendaID, err)
	}

	if req.Title != nil {
		agenda.Title = *req.Title
	}
	if req.Description != nil {
		agenda.Description = *req.Description
	}
	if req.ScheduledAt != nil {
		agenda.ScheduledAt = *req.ScheduledAt
	}
	if req.Location != nil {
		agenda.Location = *req.Location
	}
	agenda.LastUpdatedAt = time.Now()
	agenda.LastUpdatedBy = actor.UserID

	if err := s.agendaRepo.UpdateAgenda(ctx, *agenda); err != nil {
		return nil, fmt.Errorf("failed to update agenda %s: %w", agendaID, err)
	}
	return agenda, nil
}

func (s *agendaService) UpdateAgendaStatus(ctx context.Context, actor domain.Actor, agendaID string, next domain.AgendaStatus) (*domain.Agenda, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageAgenda); err != nil {
		return nil, err
	}

	agenda, err := s.agendaRepo.FindAgendaByID(ctx, agendaID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agenda %s for status update: %w", agendaID, err)
	}

	if !agenda.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot move agenda from %s to %s: %w", agenda.Status, next, apperrors.ErrValidation)
	}

	agenda.Status = next
	agenda.LastUpdatedAt = time.Now()
	agenda.LastUpdatedBy = actor.UserID

	if err := s.agendaRepo.UpdateAgenda(ctx, *agenda); err != nil {
		return nil, fmt.Errorf("failed to update agenda %s status: %w", agendaID, err)
	}

	s.LogInfo(ctx, "Agenda status changed",
		slog.String("agenda_id", agendaID), slog.String("status", string(next)))
	return agenda, nil
}

func (s *agendaService) DeleteAgenda(ctx context.Context, actor domain.Actor, agendaID string) error {
	if err := s.Authorize(ctx, actor, domain.CapManageAgenda); err != nil {
		return err
	}
	if err := s.agendaRepo.DeleteAgenda(ctx, agendaID); err != nil {
		return fmt.Errorf("failed to delete agenda %s: %w", agendaID, err)
	}
	s.LogInfo(ctx, "Agenda deleted", slog.String("agenda_id", agendaID))
	return nil
}
