package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	"github.com/himakom/orgadmin_backend/internal/models"
)

type PgxApplicationRepository struct {
	BaseRepository
}

func newPgxApplicationRepository(pool *pgxpool.Pool) portsrepo.ApplicationRepository {
	return &PgxApplicationRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ApplicationRepository = (*PgxApplicationRepository)(nil)

func toModelApplication(d domain.MembershipApplication) models.MembershipApplication {
	m := models.MembershipApplication{
		ApplicationID: d.ApplicationID,
		Name:          d.Name,
		AcademicID:    d.AcademicID,
		Email:         d.Email,
		Department:    d.Department,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
	if d.Reason != "" {
		m.Reason = sql.NullString{String: d.Reason, Valid: true}
	}
	if d.RejectionNote != "" {
		m.RejectionNote = sql.NullString{String: d.RejectionNote, Valid: true}
	}
	if d.ReviewedBy != "" {
		m.ReviewedBy = sql.NullString{String: d.ReviewedBy, Valid: true}
	}
	if d.ReviewedAt != nil {
		m.ReviewedAt = sql.NullTime{Time: *d.ReviewedAt, Valid: true}
	}
	return m
}

func toDomainApplication(m models.MembershipApplication) domain.MembershipApplication {
	d := domain.MembershipApplication{
		ApplicationID: m.ApplicationID,
		Name:          m.Name,
		AcademicID:    m.AcademicID,
		Email:         m.Email,
		Department:    m.Department,
		Reason:        m.Reason.String,
		Status:        domain.ApplicationStatus(m.Status),
		RejectionNote: m.RejectionNote.String,
		ReviewedBy:    m.ReviewedBy.String,
		CreatedAt:     m.CreatedAt,
	}
	if m.ReviewedAt.Valid {
		t := m.ReviewedAt.Time
		d.ReviewedAt = &t
	}
	return d
}

const applicationColumns = `application_id, name, academic_id, email, department, reason, status, rejection_note, reviewed_by, reviewed_at, created_at`

func scanApplication(row pgx.Row) (*models.MembershipApplication, error) {
	var m models.MembershipApplication
	err := row.Scan(
		&m.ApplicationID,
		&m.Name,
		&m.AcademicID,
		&m.Email,
		&m.Department,
		&m.Reason,
		&m.Status,
		&m.RejectionNote,
		&m.ReviewedBy,
		&m.ReviewedAt,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxApplicationRepository) SaveApplication(ctx context.Context, app domain.MembershipApplication) error {
	m := toModelApplication(app)
	query := `
        INSERT INTO membership_applications (application_id, name, academic_id, email, department, reason, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ApplicationID,
		m.Name,
		m.AcademicID,
		m.Email,
		m.Department,
		m.Reason,
		m.Status,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

func (r *PgxApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.MembershipApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM membership_applications WHERE application_id = $1;`
	m, err := scanApplication(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application by ID %s: %w", applicationID, err)
	}
	d := toDomainApplication(*m)
	return &d, nil
}

func (r *PgxApplicationRepository) FindApplications(ctx context.Context, status domain.ApplicationStatus, limit, offset int) ([]domain.MembershipApplication, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + applicationColumns + `
        FROM membership_applications
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.MembershipApplication{}
	for rows.Next() {
		m, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, toDomainApplication(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", rows.Err())
	}
	return apps, nil
}

// ApproveApplication flips a PENDING application to APPROVED and inserts the
// member row inside one transaction. The status guard in the UPDATE makes a
// retried approval a conflict instead of a second member.
func (r *PgxApplicationRepository) ApproveApplication(ctx context.Context, applicationID string, member domain.Member, reviewerUserID string, reviewedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	updateQuery := `
        UPDATE membership_applications
        SET status = 'APPROVED', reviewed_by = $1, reviewed_at = $2
        WHERE application_id = $3 AND status = 'PENDING';
    `
	cmdTag, err := tx.Exec(ctx, updateQuery, reviewerUserID, reviewedAt, applicationID)
	if err != nil {
		return fmt.Errorf("failed to mark application approved: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("application %s is not pending: %w", applicationID, apperrors.ErrConflict)
	}

	m := toModelMember(member)
	insertQuery := `
        INSERT INTO members (member_id, user_id, academic_id, name, email, department, position, join_year, status, photo_path, absence_count, sp_level, sp_note, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err = tx.Exec(ctx, insertQuery,
		m.MemberID,
		m.UserID,
		m.AcademicID,
		m.Name,
		m.Email,
		m.Department,
		m.Position,
		m.JoinYear,
		m.Status,
		m.PhotoPath,
		m.AbsenceCount,
		m.SPLevel,
		m.SPNote,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member for application %s: %w", applicationID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxApplicationRepository) RejectApplication(ctx context.Context, applicationID string, note string, reviewerUserID string, reviewedAt time.Time) error {
	query := `
        UPDATE membership_applications
        SET status = 'REJECTED', rejection_note = $1, reviewed_by = $2, reviewed_at = $3
        WHERE application_id = $4 AND status = 'PENDING';
    `
	cmdTag, err := r.Pool.Exec(ctx, query, note, reviewerUserID, reviewedAt, applicationID)
	if err != nil {
		return fmt.Errorf("failed to reject application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either missing or already reviewed; check which.
		if _, findErr := r.FindApplicationByID(ctx, applicationID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("application %s is not pending: %w", applicationID, apperrors.ErrConflict)
	}
	return nil
}
