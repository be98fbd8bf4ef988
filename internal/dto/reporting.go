package dto

import "github.com/himakom/orgadmin_backend/internal/core/domain"

// FinanceOverviewResponse bundles the dashboard aggregates for one year.
type FinanceOverviewResponse struct {
	Year          int                        `json:"year"`
	Summary       domain.FinanceSummary      `json:"summary"`
	MonthlySeries []domain.MonthlyBucket     `json:"monthlySeries"`
	Categories    []domain.CategoryTotal     `json:"categories"`
	Recent        []domain.RecentTransaction `json:"recent"`
}

// FinanceOverviewParams defines query parameters for the overview endpoint.
type FinanceOverviewParams struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}
