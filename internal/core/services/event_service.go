package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

type eventService struct {
	BaseService
	eventRepo portsrepo.EventRepository
}

// NewEventService creates the event management service.
func NewEventService(eventRepo portsrepo.EventRepository) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, actor domain.Actor, req dto.CreateEventRequest) (*domain.Event, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageAttendance); err != nil {
		return nil, err
	}

	now := time.Now()
	event := domain.Event{
		EventID:             uuid.NewString(),
		Name:                req.Name,
		Location:            req.Location,
		StartsAt:            req.StartsAt,
		EndsAt:              req.EndsAt,
		ResponsibleMemberID: req.ResponsibleMemberID,
		Description:         req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.LogInfo(ctx, "Event created", slog.String("event_id", event.EventID), slog.String("name", event.Name))
	return &event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, actor domain.Actor, eventID string) (*domain.Event, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Event, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.FindEvents(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, actor domain.Actor, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageAttendance); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s for update: %w", eventID, err)
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = *req.EndsAt
	}
	if req.ResponsibleMemberID != nil {
		event.ResponsibleMemberID = *req.ResponsibleMemberID
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = actor.UserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to update event %s: %w", eventID, err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, actor domain.Actor, eventID string) error {
	if err := s.Authorize(ctx, actor, domain.CapManageAttendance); err != nil {
		return err
	}
	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID))
	return nil
}
