package models

import (
	"database/sql"
	"time"
)

// Event is the events table row.
type Event struct {
	EventID             string         `db:"event_id"`
	Name                string         `db:"name"`
	Location            string         `db:"location"`
	StartsAt            time.Time      `db:"starts_at"`
	EndsAt              time.Time      `db:"ends_at"`
	ResponsibleMemberID sql.NullString `db:"responsible_member_id"`
	Description         sql.NullString `db:"description"`
	AuditFields
}

// AttendanceRecord is the attendance_records table row.
type AttendanceRecord struct {
	RecordID   string         `db:"record_id"`
	EventID    string         `db:"event_id"`
	MemberID   string         `db:"member_id"`
	Outcome    string         `db:"outcome"`
	RecordedAt time.Time      `db:"recorded_at"`
	Note       sql.NullString `db:"note"`
	AuditFields
}
