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

type PgxLetterRepository struct {
	BaseRepository
}

func newPgxLetterRepository(pool *pgxpool.Pool) portsrepo.LetterRepository {
	return &PgxLetterRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LetterRepository = (*PgxLetterRepository)(nil)

func toModelLetter(d domain.Letter) models.Letter {
	m := models.Letter{
		LetterID:        d.LetterID,
		Direction:       string(d.Direction),
		ReferenceNumber: d.ReferenceNumber,
		Counterparty:    d.Counterparty,
		LetterDate:      d.LetterDate,
		Subject:         d.Subject,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.Summary != "" {
		m.Summary = sql.NullString{String: d.Summary, Valid: true}
	}
	if d.AttachmentPath != "" {
		m.AttachmentPath = sql.NullString{String: d.AttachmentPath, Valid: true}
	}
	return m
}

func toDomainLetter(m models.Letter) domain.Letter {
	return domain.Letter{
		LetterID:        m.LetterID,
		Direction:       domain.LetterDirection(m.Direction),
		ReferenceNumber: m.ReferenceNumber,
		Counterparty:    m.Counterparty,
		LetterDate:      m.LetterDate,
		Subject:         m.Subject,
		Summary:         m.Summary.String,
		AttachmentPath:  m.AttachmentPath.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const letterColumns = `letter_id, direction, reference_number, counterparty, letter_date, subject, summary, attachment_path, created_at, created_by, last_updated_at, last_updated_by`

func scanLetter(row pgx.Row) (*models.Letter, error) {
	var m models.Letter
	err := row.Scan(
		&m.LetterID,
		&m.Direction,
		&m.ReferenceNumber,
		&m.Counterparty,
		&m.LetterDate,
		&m.Subject,
		&m.Summary,
		&m.AttachmentPath,
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

func (r *PgxLetterRepository) SaveLetter(ctx context.Context, letter domain.Letter) error {
	m := toModelLetter(letter)
	query := `
        INSERT INTO letters (letter_id, direction, reference_number, counterparty, letter_date, subject, summary, attachment_path, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.LetterID,
		m.Direction,
		m.ReferenceNumber,
		m.Counterparty,
		m.LetterDate,
		m.Subject,
		m.Summary,
		m.AttachmentPath,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save letter: %w", err)
	}
	return nil
}

func (r *PgxLetterRepository) FindLetterByID(ctx context.Context, letterID string) (*domain.Letter, error) {
	query := `SELECT ` + letterColumns + ` FROM letters WHERE letter_id = $1;`
	m, err := scanLetter(r.Pool.QueryRow(ctx, query, letterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find letter by ID %s: %w", letterID, err)
	}
	d := toDomainLetter(*m)
	return &d, nil
}

func (r *PgxLetterRepository) FindLetterByReference(ctx context.Context, referenceNumber string) (*domain.Letter, error) {
	query := `SELECT ` + letterColumns + ` FROM letters WHERE reference_number = $1;`
	m, err := scanLetter(r.Pool.QueryRow(ctx, query, referenceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find letter by reference: %w", err)
	}
	d := toDomainLetter(*m)
	return &d, nil
}

func (r *PgxLetterRepository) FindLetters(ctx context.Context, direction domain.LetterDirection, limit, offset int) ([]domain.Letter, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + letterColumns + `
        FROM letters
        WHERE ($1 = '' OR direction = $1)
        ORDER BY letter_date DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, string(direction), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query letters: %w", err)
	}
	defer rows.Close()

	letters := []domain.Letter{}
	for rows.Next() {
		m, err := scanLetter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan letter row: %w", err)
		}
		letters = append(letters, toDomainLetter(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating letter rows: %w", rows.Err())
	}
	return letters, nil
}

func (r *PgxLetterRepository) UpdateLetter(ctx context.Context, letter domain.Letter) error {
	m := toModelLetter(letter)
	query := `
        UPDATE letters
        SET counterparty = $1, letter_date = $2, subject = $3, summary = $4, attachment_path = $5, last_updated_at = $6, last_updated_by = $7
        WHERE letter_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Counterparty,
		m.LetterDate,
		m.Subject,
		m.Summary,
		m.AttachmentPath,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.LetterID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update letter query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("letter not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLetterRepository) DeleteLetter(ctx context.Context, letterID string) error {
	query := `DELETE FROM letters WHERE letter_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, letterID)
	if err != nil {
		return fmt.Errorf("failed to delete letter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("letter not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
