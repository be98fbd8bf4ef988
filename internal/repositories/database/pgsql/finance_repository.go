package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	"github.com/himakom/orgadmin_backend/internal/models"
)

type PgxFinanceRepository struct {
	BaseRepository
}

func newPgxFinanceRepository(pool *pgxpool.Pool) portsrepo.FinanceRepository {
	return &PgxFinanceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FinanceRepository = (*PgxFinanceRepository)(nil)

func toModelTransaction(d domain.FinancialTransaction) models.FinancialTransaction {
	m := models.FinancialTransaction{
		TransactionID:   d.TransactionID,
		Direction:       string(d.Direction),
		Category:        d.Category,
		Amount:          d.Amount,
		TransactionDate: d.TransactionDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.Description != "" {
		m.Description = sql.NullString{String: d.Description, Valid: true}
	}
	if d.EvidencePath != "" {
		m.EvidencePath = sql.NullString{String: d.EvidencePath, Valid: true}
	}
	return m
}

func toDomainTransaction(m models.FinancialTransaction) domain.FinancialTransaction {
	return domain.FinancialTransaction{
		TransactionID:   m.TransactionID,
		Direction:       domain.TransactionDirection(m.Direction),
		Category:        m.Category,
		Amount:          m.Amount,
		TransactionDate: m.TransactionDate,
		Description:     m.Description.String,
		EvidencePath:    m.EvidencePath.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const transactionColumns = `transaction_id, direction, category, amount, transaction_date, description, evidence_path, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.FinancialTransaction, error) {
	var m models.FinancialTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.Direction,
		&m.Category,
		&m.Amount,
		&m.TransactionDate,
		&m.Description,
		&m.EvidencePath,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxFinanceRepository) SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO financial_transactions (transaction_id, direction, category, amount, transaction_date, description, evidence_path, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Direction,
		m.Category,
		m.Amount,
		m.TransactionDate,
		m.Description,
		m.EvidencePath,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxFinanceRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM financial_transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := toDomainTransaction(*m)
	return &d, nil
}

func (r *PgxFinanceRepository) FindTransactions(ctx context.Context, limit, offset int) ([]domain.FinancialTransaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + transactionColumns + `
        FROM financial_transactions
        ORDER BY transaction_date DESC, created_at DESC
        LIMIT $1 OFFSET $2;
    `
	return r.queryTransactions(ctx, query, limit, offset)
}

func (r *PgxFinanceRepository) FindTransactionsByYear(ctx context.Context, year int) ([]domain.FinancialTransaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM financial_transactions
        WHERE EXTRACT(YEAR FROM transaction_date) = $1
        ORDER BY transaction_date ASC, created_at ASC;
    `
	return r.queryTransactions(ctx, query, year)
}

func (r *PgxFinanceRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.FinancialTransaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.FinancialTransaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxFinanceRepository) UpdateTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	m := toModelTransaction(txn)
	query := `
        UPDATE financial_transactions
        SET direction = $1, category = $2, amount = $3, transaction_date = $4, description = $5, evidence_path = $6, last_updated_at = $7, last_updated_by = $8
        WHERE transaction_id = $9;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Direction,
		m.Category,
		m.Amount,
		m.TransactionDate,
		m.Description,
		m.EvidencePath,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxFinanceRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM financial_transactions WHERE transaction_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
