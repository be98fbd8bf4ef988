package repositories

import (
	"context"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// FinanceRepository persists ledger transactions.
type FinanceRepository interface {
	SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error)
	FindTransactions(ctx context.Context, limit, offset int) ([]domain.FinancialTransaction, error)
	FindTransactionsByYear(ctx context.Context, year int) ([]domain.FinancialTransaction, error)
	UpdateTransaction(ctx context.Context, txn domain.FinancialTransaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// AuditRepository persists review records against transactions. Audits live
// independently of the transaction rows they reference.
type AuditRepository interface {
	SaveAudit(ctx context.Context, audit domain.FinancialAudit) error
	FindAuditByID(ctx context.Context, auditID string) (*domain.FinancialAudit, error)
	FindAuditsByTransaction(ctx context.Context, transactionID string) ([]domain.FinancialAudit, error)
	FindAudits(ctx context.Context, limit, offset int) ([]domain.FinancialAudit, error)
	UpdateAudit(ctx context.Context, audit domain.FinancialAudit) error
	DeleteAudit(ctx context.Context, auditID string) error
}
