package dto

import (
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// CreateLetterRequest registers one piece of correspondence.
type CreateLetterRequest struct {
	Direction       string `json:"direction" binding:"required,oneof=INCOMING OUTGOING"`
	ReferenceNumber string `json:"referenceNumber" binding:"required"`
	Counterparty    string `json:"counterparty" binding:"required"`
	LetterDate      string `json:"letterDate" binding:"required,datetime=2006-01-02"`
	Subject         string `json:"subject" binding:"required"`
	Summary         string `json:"summary"`
}

// UpdateLetterRequest defines the editable letter fields.
type UpdateLetterRequest struct {
	Counterparty *string `json:"counterparty"`
	LetterDate   *string `json:"letterDate" binding:"omitempty,datetime=2006-01-02"`
	Subject      *string `json:"subject"`
	Summary      *string `json:"summary"`
}

// ListLettersParams defines query parameters for listing letters.
type ListLettersParams struct {
	Direction string `form:"direction" binding:"omitempty,oneof=INCOMING OUTGOING"`
	Limit     int    `form:"limit,default=20"`
	Offset    int    `form:"offset,default=0"`
}

// LetterResponse is the outward representation of a letter.
type LetterResponse struct {
	LetterID        string    `json:"letterID"`
	Direction       string    `json:"direction"`
	ReferenceNumber string    `json:"referenceNumber"`
	Counterparty    string    `json:"counterparty"`
	LetterDate      string    `json:"letterDate"`
	Subject         string    `json:"subject"`
	Summary         string    `json:"summary,omitempty"`
	AttachmentPath  string    `json:"attachmentPath,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToLetterResponse converts a domain letter to its DTO.
func ToLetterResponse(l *domain.Letter) LetterResponse {
	return LetterResponse{
		LetterID:        l.LetterID,
		Direction:       string(l.Direction),
		ReferenceNumber: l.ReferenceNumber,
		Counterparty:    l.Counterparty,
		LetterDate:      l.LetterDate.Format("2006-01-02"),
		Subject:         l.Subject,
		Summary:         l.Summary,
		AttachmentPath:  l.AttachmentPath,
		CreatedAt:       l.CreatedAt,
	}
}

// ToLetterListResponse converts a slice of letters to DTOs.
func ToLetterListResponse(letters []domain.Letter) []LetterResponse {
	out := make([]LetterResponse, len(letters))
	for i := range letters {
		out[i] = ToLetterResponse(&letters[i])
	}
	return out
}
