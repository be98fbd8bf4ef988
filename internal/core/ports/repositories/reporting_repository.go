package repositories

import (
	"context"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// ReportingRepository answers the read-only ledger aggregate queries. The
// monthly totals come back sparse (only months that have rows); the service
// zero-fills to a complete 12-entry series.
type ReportingRepository interface {
	GetSummary(ctx context.Context) (*domain.FinanceSummary, error)
	GetMonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyBucket, error)
	// GetCategoryTotals aggregates by (category, direction), ordered by total
	// descending. year/month of zero mean no filter on that component.
	GetCategoryTotals(ctx context.Context, year, month int) ([]domain.CategoryTotal, error)
	GetRecentTransactions(ctx context.Context, limit int) ([]domain.RecentTransaction, error)
}
