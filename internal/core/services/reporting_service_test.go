package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/core/services"
)

func TestOverview_ZeroFillsMonthlySeries(t *testing.T) {
	reportingRepo := new(MockReportingRepository)
	financeRepo := new(MockFinanceRepository)
	svc := services.NewReportingService(reportingRepo, financeRepo)

	actor := domain.Actor{UserID: "u1", Role: domain.RoleTreasurer1}
	summary := &domain.FinanceSummary{
		TotalIn:          decimal.NewFromInt(125000),
		TotalOut:         decimal.NewFromInt(40000),
		Balance:          decimal.NewFromInt(85000),
		TransactionCount: 3,
	}

	// The repository only returns months that have rows.
	sparse := []domain.MonthlyBucket{
		{Month: 3, In: decimal.NewFromInt(100000), Out: decimal.NewFromInt(40000)},
		{Month: 7, In: decimal.NewFromInt(25000), Out: decimal.Zero},
	}

	reportingRepo.On("GetSummary", mock.Anything).Return(summary, nil)
	reportingRepo.On("GetMonthlyTotals", mock.Anything, 2024).Return(sparse, nil)
	reportingRepo.On("GetCategoryTotals", mock.Anything, 2024, 0).Return([]domain.CategoryTotal{}, nil)
	reportingRepo.On("GetRecentTransactions", mock.Anything, 10).Return([]domain.RecentTransaction{}, nil)

	overview, err := svc.Overview(context.Background(), actor, 2024, 0)
	require.NoError(t, err)

	require.Len(t, overview.MonthlySeries, 12)
	for i, bucket := range overview.MonthlySeries {
		assert.Equal(t, i+1, bucket.Month)
	}

	assert.True(t, overview.MonthlySeries[2].In.Equal(decimal.NewFromInt(100000)))
	assert.True(t, overview.MonthlySeries[2].Out.Equal(decimal.NewFromInt(40000)))
	assert.True(t, overview.MonthlySeries[6].In.Equal(decimal.NewFromInt(25000)))

	// Every month without rows comes back as explicit zeroes.
	assert.True(t, overview.MonthlySeries[0].In.IsZero())
	assert.True(t, overview.MonthlySeries[11].Out.IsZero())

	// Balance identity holds on the returned summary.
	assert.True(t, overview.Summary.Balance.Equal(overview.Summary.TotalIn.Sub(overview.Summary.TotalOut)))
}

func TestOverview_RequiresReportCapability(t *testing.T) {
	reportingRepo := new(MockReportingRepository)
	financeRepo := new(MockFinanceRepository)
	svc := services.NewReportingService(reportingRepo, financeRepo)

	// An actor with an unknown role holds no capabilities.
	actor := domain.Actor{UserID: "u1", Role: domain.Role("GHOST")}

	_, err := svc.Overview(context.Background(), actor, 2024, 0)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	reportingRepo.AssertNotCalled(t, "GetSummary", mock.Anything)
}

func TestYearReportXLSX_ProducesWorkbook(t *testing.T) {
	reportingRepo := new(MockReportingRepository)
	financeRepo := new(MockFinanceRepository)
	svc := services.NewReportingService(reportingRepo, financeRepo)

	actor := domain.Actor{UserID: "u1", Role: domain.RoleChair}
	summary := &domain.FinanceSummary{
		TotalIn:  decimal.NewFromInt(50000),
		TotalOut: decimal.NewFromInt(20000),
		Balance:  decimal.NewFromInt(30000),
	}

	reportingRepo.On("GetSummary", mock.Anything).Return(summary, nil)
	reportingRepo.On("GetMonthlyTotals", mock.Anything, 2024).Return([]domain.MonthlyBucket{}, nil)
	financeRepo.On("FindTransactionsByYear", mock.Anything, 2024).Return([]domain.FinancialTransaction{}, nil)

	report, err := svc.YearReportXLSX(context.Background(), actor, 2024)
	require.NoError(t, err)
	assert.NotEmpty(t, report)

	// XLSX files are zip archives; check the magic bytes.
	require.GreaterOrEqual(t, len(report), 2)
	assert.Equal(t, byte('P'), report[0])
	assert.Equal(t, byte('K'), report[1])
}
