package models

import (
	"database/sql"
	"time"
)

// Member is the members table row.
type Member struct {
	MemberID   string         `db:"member_id"`
	UserID     sql.NullString `db:"user_id"`
	AcademicID string         `db:"academic_id"`
	Name       string         `db:"name"`
	Email      string         `db:"email"`
	Department string         `db:"department"`
	Position   string         `db:"position"`
	JoinYear   int            `db:"join_year"`
	Status     string         `db:"status"`
	PhotoPath  sql.NullString `db:"photo_path"`

	AbsenceCount int            `db:"absence_count"`
	SPLevel      int            `db:"sp_level"`
	SPNote       sql.NullString `db:"sp_note"`

	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
