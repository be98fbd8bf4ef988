package domain

import "time"

// MemberStatus is the membership lifecycle state.
type MemberStatus string

const (
	MemberActive   MemberStatus = "ACTIVE"
	MemberInactive MemberStatus = "INACTIVE"
	MemberAlumni   MemberStatus = "ALUMNI"
)

// Member represents a person in the association. AbsenceCount, SPLevel and
// SPNote are derived by the standing calculator; SPLevel only ever moves up
// automatically, a manual edit is the sole downgrade path.
type Member struct {
	MemberID   string       `json:"memberID"`         // Primary key (UUID)
	UserID     string       `json:"userID,omitempty"` // Optional linked login account
	AcademicID string       `json:"academicID"`       // Student number, unique
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Department string       `json:"department"`
	Position   string       `json:"position"`
	JoinYear   int          `json:"joinYear"`
	Status     MemberStatus `json:"status"`
	PhotoPath  string       `json:"photoPath,omitempty"`

	AbsenceCount int    `json:"absenceCount"`
	SPLevel      int    `json:"spLevel"` // 0-3
	SPNote       string `json:"spNote,omitempty"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
