package dto

import (
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// CreateAgendaRequest defines the data for a new schedule item. New agendas
// always start in DRAFT.
type CreateAgendaRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Location    string    `json:"location"`
}

// UpdateAgendaRequest defines the editable agenda fields. Status moves
// through its own endpoint so transitions stay validated.
type UpdateAgendaRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Location    *string    `json:"location"`
}

// UpdateAgendaStatusRequest moves an agenda through its lifecycle.
type UpdateAgendaStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PUBLISHED COMPLETED CANCELLED"`
}

// ListAgendasParams defines query parameters for listing agendas.
type ListAgendasParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// AgendaResponse is the outward representation of a schedule item.
type AgendaResponse struct {
	AgendaID    string    `json:"agendaID"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"createdBy"`
	UpdatedBy   string    `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToAgendaResponse converts a domain agenda to its DTO.
func ToAgendaResponse(a *domain.Agenda) AgendaResponse {
	return AgendaResponse{
		AgendaID:    a.AgendaID,
		Title:       a.Title,
		Description: a.Description,
		ScheduledAt: a.ScheduledAt,
		Location:    a.Location,
		Status:      string(a.Status),
		CreatedBy:   a.CreatedBy,
		UpdatedBy:   a.LastUpdatedBy,
		CreatedAt:   a.CreatedAt,
	}
}

// ToAgendaListResponse converts a slice of agendas to DTOs.
func ToAgendaListResponse(agendas []domain.Agenda) []AgendaResponse {
	out := make([]AgendaResponse, len(agendas))
	for i := range agendas {
		out[i] = ToAgendaResponse(&agendas[i])
	}
	return out
}
