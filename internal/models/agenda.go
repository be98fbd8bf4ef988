package models

import (
	"database/sql"
	"time"
)

// Agenda is the agendas table row.
type Agenda struct {
	AgendaID    string         `db:"agenda_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	ScheduledAt time.Time      `db:"scheduled_at"`
	Location    sql.NullString `db:"location"`
	Status      string         `db:"status"`
	AuditFields
}
