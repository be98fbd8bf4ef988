package domain

import "time"

// LetterDirection distinguishes incoming from outgoing correspondence.
type LetterDirection string

const (
	LetterIncoming LetterDirection = "INCOMING"
	LetterOutgoing LetterDirection = "OUTGOING"
)

// IsValid reports whether d is a known letter direction.
func (d LetterDirection) IsValid() bool {
	return d == LetterIncoming || d == LetterOutgoing
}

// Letter is one registered piece of correspondence. Counterparty is the
// sender for incoming letters and the recipient for outgoing ones.
type Letter struct {
	LetterID        string          `json:"letterID"` // Primary key (UUID)
	Direction       LetterDirection `json:"direction"`
	ReferenceNumber string          `json:"referenceNumber"` // Unique per letter
	Counterparty    string          `json:"counterparty"`
	LetterDate      time.Time       `json:"letterDate"`
	Subject         string          `json:"subject"`
	Summary         string          `json:"summary,omitempty"`
	AttachmentPath  string          `json:"attachmentPath,omitempty"`
	AuditFields
}
