package services

import (
	"context"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// AgendaSvcFacade manages schedule items and their status lifecycle.
type AgendaSvcFacade interface {
	CreateAgenda(ctx context.Context, actor domain.Actor, req dto.CreateAgendaRequest) (*domain.Agenda, error)
	GetAgendaByID(ctx context.Context, actor domain.Actor, agendaID string) (*domain.Agenda, error)
	ListAgendas(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Agenda, error)
	UpdateAgenda(ctx context.Context, actor domain.Actor, agendaID string, req dto.UpdateAgendaRequest) (*domain.Agenda, error)
	// UpdateAgendaStatus validates the transition before persisting it.
	UpdateAgendaStatus(ctx context.Context, actor domain.Actor, agendaID string, next domain.AgendaStatus) (*domain.Agenda, error)
	DeleteAgenda(ctx context.Context, actor domain.Actor, agendaID string) error
}
