package services

import (
	"context"
	"io"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// FinanceSvcFacade manages ledger transactions and their evidence files.
type FinanceSvcFacade interface {
	CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.FinancialTransaction, error)
	GetTransactionByID(ctx context.Context, actor domain.Actor, transactionID string) (*domain.FinancialTransaction, error)
	ListTransactions(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.FinancialTransaction, error)
	UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.FinancialTransaction, error)
	DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error
	// AttachEvidence stores the file, updates the row, then removes any
	// previous evidence file best-effort.
	AttachEvidence(ctx context.Context, actor domain.Actor, transactionID string, filename string, content io.Reader) (*domain.FinancialTransaction, error)
}

// AuditSvcFacade manages review records. Audits never mutate the transaction
// they reference.
type AuditSvcFacade interface {
	CreateAudit(ctx context.Context, actor domain.Actor, req dto.CreateAuditRequest) (*domain.FinancialAudit, error)
	GetAuditByID(ctx context.Context, actor domain.Actor, auditID string) (*domain.FinancialAudit, error)
	ListAuditsByTransaction(ctx context.Context, actor domain.Actor, transactionID string) ([]domain.FinancialAudit, error)
	ListAudits(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.FinancialAudit, error)
	UpdateAudit(ctx context.Context, actor domain.Actor, auditID string, req dto.UpdateAuditRequest) (*domain.FinancialAudit, error)
	DeleteAudit(ctx context.Context, actor domain.Actor, auditID string) error
}

// ReportingSvcFacade produces the read-only finance aggregates.
type ReportingSvcFacade interface {
	Overview(ctx context.Context, actor domain.Actor, year, month int) (*dto.FinanceOverviewResponse, error)
	// YearReportXLSX renders the year report as a spreadsheet.
	YearReportXLSX(ctx context.Context, actor domain.Actor, year int) ([]byte, error)
}
