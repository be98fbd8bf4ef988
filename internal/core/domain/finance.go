package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection indicates whether money came in or went out. The
// values are the Indonesian terms the stored data and frontends use.
type TransactionDirection string

const (
	DirectionIn  TransactionDirection = "masuk"
	DirectionOut TransactionDirection = "keluar"
)

// IsValid reports whether d is a known direction.
func (d TransactionDirection) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// FinancialTransaction is one money movement in the association ledger.
// Amount is always non-negative; Direction determines its sign contribution
// to the balance.
type FinancialTransaction struct {
	TransactionID   string               `json:"transactionID"` // Primary key (UUID)
	Direction       TransactionDirection `json:"direction"`
	Category        string               `json:"category"`
	Amount          decimal.Decimal      `json:"amount"`
	TransactionDate time.Time            `json:"transactionDate"`
	Description     string               `json:"description,omitempty"`
	EvidencePath    string               `json:"evidencePath,omitempty"`
	AuditFields
}

// AuditOutcome is the review verdict on a financial transaction.
type AuditOutcome string

const (
	AuditApproved AuditOutcome = "approved"
	AuditRejected AuditOutcome = "rejected"
	AuditPending  AuditOutcome = "pending"
)

// IsValid reports whether o is a known audit outcome.
func (o AuditOutcome) IsValid() bool {
	switch o {
	case AuditApproved, AuditRejected, AuditPending:
		return true
	}
	return false
}

// FinancialAudit is a review annotation against one transaction. Its
// lifecycle is independent: deleting the transaction never touches audits,
// it only clears TransactionID on the surviving records.
type FinancialAudit struct {
	AuditID       string       `json:"auditID"` // Primary key (UUID)
	TransactionID string       `json:"transactionID,omitempty"`
	AuditorUserID string       `json:"auditorUserID"`
	ReviewDate    time.Time    `json:"reviewDate"`
	Outcome       AuditOutcome `json:"outcome"`
	Note          string       `json:"note,omitempty"`
	AuditFields
}
