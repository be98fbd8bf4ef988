package domain

import "time"

// AttendanceOutcome is the fixed set of outcomes a record can carry. The
// values follow the wire format the frontends already speak.
type AttendanceOutcome string

const (
	OutcomePresent AttendanceOutcome = "hadir" // present
	OutcomeAbsent  AttendanceOutcome = "alpha" // unexcused absence
	OutcomeExcused AttendanceOutcome = "izin"  // excused leave
	OutcomeSick    AttendanceOutcome = "sakit" // sick
)

// IsValid reports whether o is one of the four known outcomes.
func (o AttendanceOutcome) IsValid() bool {
	switch o {
	case OutcomePresent, OutcomeAbsent, OutcomeExcused, OutcomeSick:
		return true
	}
	return false
}

// CountsAsAbsence reports whether the outcome contributes to a member's
// absence total. Everything other than present counts.
func (o AttendanceOutcome) CountsAsAbsence() bool {
	return o != OutcomePresent
}

// Event is a tracked activity that owns attendance records.
type Event struct {
	EventID             string    `json:"eventID"` // Primary key (UUID)
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	StartsAt            time.Time `json:"startsAt"`
	EndsAt              time.Time `json:"endsAt"`
	ResponsibleMemberID string    `json:"responsibleMemberID,omitempty"`
	Description         string    `json:"description,omitempty"`
	AuditFields
}

// AttendanceRecord is one outcome of one member at one event. The service
// layer enforces at most one record per (member, event) pair.
type AttendanceRecord struct {
	RecordID   string            `json:"recordID"` // Primary key (UUID)
	EventID    string            `json:"eventID"`
	MemberID   string            `json:"memberID"`
	Outcome    AttendanceOutcome `json:"outcome"`
	RecordedAt time.Time         `json:"recordedAt"`
	Note       string            `json:"note,omitempty"`
	AuditFields
}
