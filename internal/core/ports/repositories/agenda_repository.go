package repositories

import (
	"context"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// AgendaRepository persists schedule items.
type AgendaRepository interface {
	SaveAgenda(ctx context.Context, agenda domain.Agenda) error
	FindAgendaByID(ctx context.Context, agendaID string) (*domain.Agenda, error)
	FindAgendas(ctx context.Context, limit, offset int) ([]domain.Agenda, error)
	UpdateAgenda(ctx context.Context, agenda domain.Agenda) error
	DeleteAgenda(ctx context.Context, agendaID string) error
}
