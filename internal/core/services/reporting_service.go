package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
	"github.com/himakom/orgadmin_backend/internal/export"
)

const recentTransactionLimit = 10

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	financeRepo   portsrepo.FinanceRepository
}

// NewReportingService creates the read-only finance aggregates service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, financeRepo portsrepo.FinanceRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, financeRepo: financeRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Overview(ctx context.Context, actor domain.Actor, year, month int) (*dto.FinanceOverviewResponse, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}

	summary, err := s.reportingRepo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load finance summary: %w", err)
	}

	series, err := s.monthlySeries(ctx, year)
	if err != nil {
		return nil, err
	}

	categories, err := s.reportingRepo.GetCategoryTotals(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load category totals: %w", err)
	}

	recent, err := s.reportingRepo.GetRecentTransactions(ctx, recentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	return &dto.FinanceOverviewResponse{
		Year:          year,
		Summary:       *summary,
		MonthlySeries: series,
		Categories:    categories,
		Recent:        recent,
	}, nil
}

func (s *reportingService) YearReportXLSX(ctx context.Context, actor domain.Actor, year int) ([]byte, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}

	summary, err := s.reportingRepo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load finance summary: %w", err)
	}

	series, err := s.monthlySeries(ctx, year)
	if err != nil {
		return nil, err
	}

	txns, err := s.financeRepo.FindTransactionsByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for %d: %w", year, err)
	}

	report, err := export.BuildFinanceYearReport(year, *summary, series, txns)
	if err != nil {
		return nil, fmt.Errorf("failed to build year report: %w", err)
	}
	return report, nil
}

// monthlySeries zero-fills the sparse repository buckets to a full January
// through December series.
func (s *reportingService) monthlySeries(ctx context.Context, year int) ([]domain.MonthlyBucket, error) {
	sparse, err := s.reportingRepo.GetMonthlyTotals(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals for %d: %w", year, err)
	}

	series := make([]domain.MonthlyBucket, 12)
	for i := range series {
		series[i] = domain.MonthlyBucket{Month: i + 1, In: decimal.Zero, Out: decimal.Zero}
	}
	for _, bucket := range sparse {
		if bucket.Month < 1 || bucket.Month > 12 {
			continue
		}
		series[bucket.Month-1].In = bucket.In
		series[bucket.Month-1].Out = bucket.Out
	}
	return series, nil
}
