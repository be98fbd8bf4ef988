package models

import (
	"database/sql"
	"time"
)

// Letter is the letters table row.
type Letter struct {
	LetterID        string         `db:"letter_id"`
	Direction       string         `db:"direction"`
	ReferenceNumber string         `db:"reference_number"`
	Counterparty    string         `db:"counterparty"`
	LetterDate      time.Time      `db:"letter_date"`
	Subject         string         `db:"subject"`
	Summary         sql.NullString `db:"summary"`
	AttachmentPath  sql.NullString `db:"attachment_path"`
	AuditFields
}
