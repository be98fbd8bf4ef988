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

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

func toModelAudit(d domain.FinancialAudit) models.FinancialAudit {
	m := models.FinancialAudit{
		AuditID:       d.AuditID,
		AuditorUserID: d.AuditorUserID,
		ReviewDate:    d.ReviewDate,
		Outcome:       string(d.Outcome),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.TransactionID != "" {
		m.TransactionID = sql.NullString{String: d.TransactionID, Valid: true}
	}
	if d.Note != "" {
		m.Note = sql.NullString{String: d.Note, Valid: true}
	}
	return m
}

func toDomainAudit(m models.FinancialAudit) domain.FinancialAudit {
	return domain.FinancialAudit{
		AuditID:       m.AuditID,
		TransactionID: m.TransactionID.String,
		AuditorUserID: m.AuditorUserID,
		ReviewDate:    m.ReviewDate,
		Outcome:       domain.AuditOutcome(m.Outcome),
		Note:          m.Note.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const auditColumns = `audit_id, transaction_id, auditor_user_id, review_date, outcome, note, created_at, created_by, last_updated_at, last_updated_by`

func scanAudit(row pgx.Row) (*models.FinancialAudit, error) {
	var m models.FinancialAudit
	err := row.Scan(
		&m.AuditID,
		&m.TransactionID,
		&m.AuditorUserID,
		&m.ReviewDate,
		&m.Outcome,
		&m.Note,
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

func (r *PgxAuditRepository) SaveAudit(ctx context.Context, audit domain.FinancialAudit) error {
	m := toModelAudit(audit)
	query := `
        INSERT INTO financial_audits (audit_id, transaction_id, auditor_user_id, review_date, outcome, note, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.AuditID,
		m.TransactionID,
		m.AuditorUserID,
		m.ReviewDate,
		m.Outcome,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit: %w", err)
	}
	return nil
}

func (r *PgxAuditRepository) FindAuditByID(ctx context.Context, auditID string) (*domain.FinancialAudit, error) {
	query := `SELECT ` + auditColumns + ` FROM financial_audits WHERE audit_id = $1;`
	m, err := scanAudit(r.Pool.QueryRow(ctx, query, auditID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find audit by ID %s: %w", auditID, err)
	}
	d := toDomainAudit(*m)
	return &d, nil
}

func (r *PgxAuditRepository) FindAuditsByTransaction(ctx context.Context, transactionID string) ([]domain.FinancialAudit, error) {
	query := `SELECT ` + auditColumns + ` FROM financial_audits WHERE transaction_id = $1 ORDER BY review_date DESC;`
	return r.queryAudits(ctx, query, transactionID)
}

func (r *PgxAuditRepository) FindAudits(ctx context.Context, limit, offset int) ([]domain.FinancialAudit, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT ` + auditColumns + `
        FROM financial_audits
        ORDER BY review_date DESC
        LIMIT $1 OFFSET $2;
    `
	return r.queryAudits(ctx, query, limit, offset)
}

func (r *PgxAuditRepository) queryAudits(ctx context.Context, query string, args ...any) ([]domain.FinancialAudit, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audits: %w", err)
	}
	defer rows.Close()

	audits := []domain.FinancialAudit{}
	for rows.Next() {
		m, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		audits = append(audits, toDomainAudit(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit rows: %w", rows.Err())
	}
	return audits, nil
}

func (r *PgxAuditRepository) UpdateAudit(ctx context.Context, audit domain.FinancialAudit) error {
	m := toModelAudit(audit)
	query := `
        UPDATE financial_audits
        SET review_date = $1, outcome = $2, note = $3, last_updated_at = $4, last_updated_by = $5
        WHERE audit_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ReviewDate,
		m.Outcome,
		m.Note,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.AuditID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update audit query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("audit not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAuditRepository) DeleteAudit(ctx context.Context, auditID string) error {
	query := `DELETE FROM financial_audits WHERE audit_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, auditID)
	if err != nil {
		return fmt.Errorf("failed to delete audit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("audit not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
