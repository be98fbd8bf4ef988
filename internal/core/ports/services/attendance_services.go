package services

import (
	"context"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// EventSvcFacade manages tracked activities.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, actor domain.Actor, req dto.CreateEventRequest) (*domain.Event, error)
	GetEventByID(ctx context.Context, actor domain.Actor, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, actor domain.Actor, eventID string, req dto.UpdateEventRequest) (*domain.Event, error)
	DeleteEvent(ctx context.Context, actor domain.Actor, eventID string) error
}

// AttendanceSvcFacade manages attendance records. Every mutation triggers a
// standing recompute for the member involved.
type AttendanceSvcFacade interface {
	CreateRecord(ctx context.Context, actor domain.Actor, req dto.CreateAttendanceRequest) (*domain.AttendanceRecord, error)
	GetRecordByID(ctx context.Context, actor domain.Actor, recordID string) (*domain.AttendanceRecord, error)
	ListRecordsByEvent(ctx context.Context, actor domain.Actor, eventID string) ([]domain.AttendanceRecord, error)
	ListRecordsByMember(ctx context.Context, actor domain.Actor, memberID string) ([]domain.AttendanceRecord, error)
	UpdateRecord(ctx context.Context, actor domain.Actor, recordID string, req dto.UpdateAttendanceRequest) (*domain.AttendanceRecord, error)
	DeleteRecord(ctx context.Context, actor domain.Actor, recordID string) error
}
