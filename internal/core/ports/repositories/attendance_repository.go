package repositories

import (
	"context"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// EventRepository persists tracked activities.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	FindEvents(ctx context.Context, limit, offset int) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// AttendanceRepository persists attendance records and answers the absence
// count query the standing calculator runs on.
type AttendanceRepository interface {
	SaveRecord(ctx context.Context, record domain.AttendanceRecord) error
	FindRecordByID(ctx context.Context, recordID string) (*domain.AttendanceRecord, error)
	FindRecordByEventAndMember(ctx context.Context, eventID, memberID string) (*domain.AttendanceRecord, error)
	FindRecordsByEvent(ctx context.Context, eventID string) ([]domain.AttendanceRecord, error)
	FindRecordsByMember(ctx context.Context, memberID string) ([]domain.AttendanceRecord, error)
	UpdateRecord(ctx context.Context, record domain.AttendanceRecord) error
	DeleteRecord(ctx context.Context, recordID string) error
	// CountAbsences counts the member's records whose outcome is anything
	// other than present.
	CountAbsences(ctx context.Context, memberID string) (int, error)
}
