package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// FinancialTransaction is the financial_transactions table row.
type FinancialTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	Direction       string          `db:"direction"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     sql.NullString  `db:"description"`
	EvidencePath    sql.NullString  `db:"evidence_path"`
	AuditFields
}

// FinancialAudit is the financial_audits table row. TransactionID is
// nullable: the FK sets it to NULL when the transaction is deleted, so the
// review record survives on its own.
type FinancialAudit struct {
	AuditID       string         `db:"audit_id"`
	TransactionID sql.NullString `db:"transaction_id"`
	AuditorUserID string         `db:"auditor_user_id"`
	ReviewDate    time.Time      `db:"review_date"`
	Outcome       string         `db:"outcome"`
	Note          sql.NullString `db:"note"`
	AuditFields
}
