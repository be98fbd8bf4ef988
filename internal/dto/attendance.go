package dto

import (
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// CreateEventRequest defines the data needed to create an event.
type CreateEventRequest struct {
	Name                string    `json:"name" binding:"required"`
	Location            string    `json:"location" binding:"required"`
	StartsAt            time.Time `json:"startsAt" binding:"required"`
	EndsAt              time.Time `json:"endsAt" binding:"required,gtfield=StartsAt"`
	ResponsibleMemberID string    `json:"responsibleMemberID" binding:"omitempty,uuid"`
	Description         string    `json:"description"`
}

// UpdateEventRequest defines the editable event fields.
type UpdateEventRequest struct {
	Name                *string    `json:"name"`
	Location            *string    `json:"location"`
	StartsAt            *time.Time `json:"startsAt"`
	EndsAt              *time.Time `json:"endsAt"`
	ResponsibleMemberID *string    `json:"responsibleMemberID" binding:"omitempty,uuid"`
	Description         *string    `json:"description"`
}

// EventResponse is the outward representation of an event.
type EventResponse struct {
	EventID             string    `json:"eventID"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	StartsAt            time.Time `json:"startsAt"`
	EndsAt              time.Time `json:"endsAt"`
	ResponsibleMemberID string    `json:"responsibleMemberID,omitempty"`
	Description         string    `json:"description,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToEventResponse converts a domain.Event to its response DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:             e.EventID,
		Name:                e.Name,
		Location:            e.Location,
		StartsAt:            e.StartsAt,
		EndsAt:              e.EndsAt,
		ResponsibleMemberID: e.ResponsibleMemberID,
		Description:         e.Description,
		CreatedAt:           e.CreatedAt,
	}
}

// CreateAttendanceRequest records one member's outcome at one event.
type CreateAttendanceRequest struct {
	EventID    string     `json:"eventID" binding:"required,uuid"`
	MemberID   string     `json:"memberID" binding:"required,uuid"`
	Outcome    string     `json:"outcome" binding:"required,oneof=hadir alpha izin sakit"`
	RecordedAt *time.Time `json:"recordedAt"`
	Note       string     `json:"note"`
}

// UpdateAttendanceRequest defines the editable attendance fields. MemberID is
// editable because a record can be reassigned to the right person.
type UpdateAttendanceRequest struct {
	MemberID   *string    `json:"memberID" binding:"omitempty,uuid"`
	Outcome    *string    `json:"outcome" binding:"omitempty,oneof=hadir alpha izin sakit"`
	RecordedAt *time.Time `json:"recordedAt"`
	Note       *string    `json:"note"`
}

// AttendanceResponse is the outward representation of an attendance record.
type AttendanceResponse struct {
	RecordID        string    `json:"recordID"`
	EventID         string    `json:"eventID"`
	MemberID        string    `json:"memberID"`
	Outcome         string    `json:"outcome"`
	CountsAsAbsence bool      `json:"countsAsAbsence"`
	RecordedAt      time.Time `json:"recordedAt"`
	Note            string    `json:"note,omitempty"`
}

// ToAttendanceResponse converts a domain.AttendanceRecord to its DTO.
func ToAttendanceResponse(r *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		RecordID:        r.RecordID,
		EventID:         r.EventID,
		MemberID:        r.MemberID,
		Outcome:         string(r.Outcome),
		CountsAsAbsence: r.Outcome.CountsAsAbsence(),
		RecordedAt:      r.RecordedAt,
		Note:            r.Note,
	}
}

// ToAttendanceListResponse converts a slice of records to DTOs.
func ToAttendanceListResponse(records []domain.AttendanceRecord) []AttendanceResponse {
	out := make([]AttendanceResponse, len(records))
	for i := range records {
		out[i] = ToAttendanceResponse(&records[i])
	}
	return out
}
