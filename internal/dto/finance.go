package dto

import (
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data for one ledger entry. The date
// uses the plain calendar format the finance forms submit.
type CreateTransactionRequest struct {
	Direction       string          `json:"direction" binding:"required,oneof=masuk keluar"`
	Category        string          `json:"category" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Description     string          `json:"description"`
}

// UpdateTransactionRequest defines the editable transaction fields.
type UpdateTransactionRequest struct {
	Direction       *string          `json:"direction" binding:"omitempty,oneof=masuk keluar"`
	Category        *string          `json:"category"`
	Amount          *decimal.Decimal `json:"amount"`
	TransactionDate *string          `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
	Description     *string          `json:"description"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// TransactionResponse is the outward representation of a ledger entry.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Direction       string          `json:"direction"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transactionDate"`
	Description     string          `json:"description,omitempty"`
	EvidencePath    string          `json:"evidencePath,omitempty"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain transaction to its DTO.
func ToTransactionResponse(t *domain.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Direction:       string(t.Direction),
		Category:        t.Category,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		Description:     t.Description,
		EvidencePath:    t.EvidencePath,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionListResponse converts a slice of transactions to DTOs.
func ToTransactionListResponse(txns []domain.FinancialTransaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

// CreateAuditRequest defines the data for a review record.
type CreateAuditRequest struct {
	TransactionID string `json:"transactionID" binding:"required,uuid"`
	ReviewDate    string `json:"reviewDate" binding:"required,datetime=2006-01-02"`
	Outcome       string `json:"outcome" binding:"required,oneof=approved rejected pending"`
	Note          string `json:"note"`
}

// UpdateAuditRequest defines the editable audit fields.
type UpdateAuditRequest struct {
	ReviewDate *string `json:"reviewDate" binding:"omitempty,datetime=2006-01-02"`
	Outcome    *string `json:"outcome" binding:"omitempty,oneof=approved rejected pending"`
	Note       *string `json:"note"`
}

// ListAuditsParams defines query parameters for listing audits.
type ListAuditsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// AuditResponse is the outward representation of a review record.
type AuditResponse struct {
	AuditID       string    `json:"auditID"`
	TransactionID string    `json:"transactionID"`
	AuditorUserID string    `json:"auditorUserID"`
	ReviewDate    string    `json:"reviewDate"`
	Outcome       string    `json:"outcome"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToAuditResponse converts a domain audit to its DTO.
func ToAuditResponse(a *domain.FinancialAudit) AuditResponse {
	return AuditResponse{
		AuditID:       a.AuditID,
		TransactionID: a.TransactionID,
		AuditorUserID: a.AuditorUserID,
		ReviewDate:    a.ReviewDate.Format("2006-01-02"),
		Outcome:       string(a.Outcome),
		Note:          a.Note,
		CreatedAt:     a.CreatedAt,
	}
}

// ToAuditListResponse converts a slice of audits to DTOs.
func ToAuditListResponse(audits []domain.FinancialAudit) []AuditResponse {
	out := make([]AuditResponse, len(audits))
	for i := range audits {
		out[i] = ToAuditResponse(&audits[i])
	}
	return out
}
