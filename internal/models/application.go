package models

import (
	"database/sql"
	"time"
)

// MembershipApplication is the membership_applications table row.
type MembershipApplication struct {
	ApplicationID string         `db:"application_id"`
	Name          string         `db:"name"`
	AcademicID    string         `db:"academic_id"`
	Email         string         `db:"email"`
	Department    string         `db:"department"`
	Reason        sql.NullString `db:"reason"`
	Status        string         `db:"status"`
	RejectionNote sql.NullString `db:"rejection_note"`
	ReviewedBy    sql.NullString `db:"reviewed_by"`
	ReviewedAt    sql.NullTime   `db:"reviewed_at"`
	CreatedAt     time.Time      `db:"created_at"`
}
