package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinanceSummary holds the all-time ledger aggregates.
type FinanceSummary struct {
	TotalIn          decimal.Decimal `json:"totalIn"`
	TotalOut         decimal.Decimal `json:"totalOut"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}

// MonthlyBucket is one month's in/out totals in the yearly chart series.
// JSON keys match the wire format the dashboards consume.
type MonthlyBucket struct {
	Month int             `json:"month"` // 1-12
	In    decimal.Decimal `json:"masuk"`
	Out   decimal.Decimal `json:"keluar"`
}

// CategoryTotal is one (category, direction) aggregate row.
type CategoryTotal struct {
	Category  string               `json:"category"`
	Direction TransactionDirection `json:"direction"`
	Total     decimal.Decimal      `json:"total"`
}

// RecentTransaction is a ledger row with the creator's display name resolved
// for listing. CreatorName falls back to "Unknown" when the creator account
// no longer exists.
type RecentTransaction struct {
	TransactionID   string               `json:"transactionID"`
	Direction       TransactionDirection `json:"direction"`
	Category        string               `json:"category"`
	Amount          decimal.Decimal      `json:"amount"`
	TransactionDate time.Time            `json:"transactionDate"`
	Description     string               `json:"description,omitempty"`
	CreatorName     string               `json:"creatorName"`
}
