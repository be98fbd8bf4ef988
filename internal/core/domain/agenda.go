package domain

import "time"

// AgendaStatus is the schedule item lifecycle state.
type AgendaStatus string

const (
	AgendaDraft     AgendaStatus = "DRAFT"
	AgendaPublished AgendaStatus = "PUBLISHED"
	AgendaCompleted AgendaStatus = "COMPLETED"
	AgendaCancelled AgendaStatus = "CANCELLED"
)

// agendaTransitions lists the allowed status moves: draft → published →
// completed, with cancellation possible until completion.
var agendaTransitions = map[AgendaStatus][]AgendaStatus{
	AgendaDraft:     {AgendaPublished, AgendaCancelled},
	AgendaPublished: {AgendaCompleted, AgendaCancelled},
}

// CanTransitionTo reports whether the status may move to next.
func (s AgendaStatus) CanTransitionTo(next AgendaStatus) bool {
	for _, allowed := range agendaTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Agenda is a schedule item independent of attendance tracking.
type Agenda struct {
	AgendaID    string       `json:"agendaID"` // Primary key (UUID)
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	ScheduledAt time.Time    `json:"scheduledAt"`
	Location    string       `json:"location,omitempty"`
	Status      AgendaStatus `json:"status"`
	AuditFields
}
