package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetSummary(ctx context.Context) (*domain.FinanceSummary, error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN direction = 'masuk' THEN amount ELSE 0 END), 0) AS total_in,
            COALESCE(SUM(CASE WHEN direction = 'keluar' THEN amount ELSE 0 END), 0) AS total_out,
            COUNT(*) AS transaction_count
        FROM financial_transactions;
    `
	var summary domain.FinanceSummary
	err := r.Pool.QueryRow(ctx, query).Scan(&summary.TotalIn, &summary.TotalOut, &summary.TransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to query finance summary: %w", err)
	}
	summary.Balance = summary.TotalIn.Sub(summary.TotalOut)
	return &summary, nil
}

// GetMonthlyTotals returns one bucket per month that has transactions in the
// year. Months with no rows are absent; the service zero-fills.
func (r *PgxReportingRepository) GetMonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyBucket, error) {
	query := `
        SELECT
            EXTRACT(MONTH FROM transaction_date)::int AS month,
            COALESCE(SUM(CASE WHEN direction = 'masuk' THEN amount ELSE 0 END), 0) AS total_in,
            COALESCE(SUM(CASE WHEN direction = 'keluar' THEN amount ELSE 0 END), 0) AS total_out
        FROM financial_transactions
        WHERE EXTRACT(YEAR FROM transaction_date) = $1
        GROUP BY month
        ORDER BY month;
    `
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	buckets := []domain.MonthlyBucket{}
	for rows.Next() {
		var b domain.MonthlyBucket
		if err := rows.Scan(&b.Month, &b.In, &b.Out); err != nil {
			return nil, fmt.Errorf("failed to scan monthly bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly buckets: %w", rows.Err())
	}
	return buckets, nil
}

func (r *PgxReportingRepository) GetCategoryTotals(ctx context.Context, year, month int) ([]domain.CategoryTotal, error) {
	query := `
        SELECT category, direction, COALESCE(SUM(amount), 0) AS total
        FROM financial_transactions
        WHERE ($1 = 0 OR EXTRACT(YEAR FROM transaction_date) = $1)
          AND ($2 = 0 OR EXTRACT(MONTH FROM transaction_date) = $2)
        GROUP BY category, direction
        ORDER BY total DESC;
    `
	rows, err := r.Pool.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var t domain.CategoryTotal
		var direction string
		var total decimal.Decimal
		if err := rows.Scan(&t.Category, &direction, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		t.Direction = domain.TransactionDirection(direction)
		t.Total = total
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", rows.Err())
	}
	return totals, nil
}

// GetRecentTransactions resolves the creator's display name; accounts that
// were deleted come back as 'Unknown'.
func (r *PgxReportingRepository) GetRecentTransactions(ctx context.Context, limit int) ([]domain.RecentTransaction, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
        SELECT
            t.transaction_id,
            t.direction,
            t.category,
            t.amount,
            t.transaction_date,
            COALESCE(t.description, '') AS description,
            COALESCE(u.name, 'Unknown') AS creator_name
        FROM financial_transactions t
        LEFT JOIN users u ON u.user_id = t.created_by AND u.deleted_at IS NULL
        ORDER BY t.transaction_date DESC, t.created_at DESC
        LIMIT $1;
    `
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	defer rows.Close()

	recent := []domain.RecentTransaction{}
	for rows.Next() {
		var t domain.RecentTransaction
		var direction string
		err := rows.Scan(
			&t.TransactionID,
			&direction,
			&t.Category,
			&t.Amount,
			&t.TransactionDate,
			&t.Description,
			&t.CreatorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent transaction: %w", err)
		}
		t.Direction = domain.TransactionDirection(direction)
		recent = append(recent, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating recent transactions: %w", rows.Err())
	}
	return recent, nil
}
