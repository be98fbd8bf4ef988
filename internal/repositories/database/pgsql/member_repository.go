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

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepository {
	return &PgxMemberRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.MemberRepository = (*PgxMemberRepository)(nil)

func toModelMember(d domain.Member) models.Member {
	m := models.Member{
		MemberID:     d.MemberID,
		AcademicID:   d.AcademicID,
		Name:         d.Name,
		Email:        d.Email,
		Department:   d.Department,
		Position:     d.Position,
		JoinYear:     d.JoinYear,
		Status:       string(d.Status),
		AbsenceCount: d.AbsenceCount,
		SPLevel:      d.SPLevel,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
	if d.UserID != "" {
		m.UserID = sql.NullString{String: d.UserID, Valid: true}
	}
	if d.PhotoPath != "" {
		m.PhotoPath = sql.NullString{String: d.PhotoPath, Valid: true}
	}
	if d.SPNote != "" {
		m.SPNote = sql.NullString{String: d.SPNote, Valid: true}
	}
	return m
}

func toDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:     m.MemberID,
		UserID:       m.UserID.String,
		AcademicID:   m.AcademicID,
		Name:         m.Name,
		Email:        m.Email,
		Department:   m.Department,
		Position:     m.Position,
		JoinYear:     m.JoinYear,
		Status:       domain.MemberStatus(m.Status),
		PhotoPath:    m.PhotoPath.String,
		AbsenceCount: m.AbsenceCount,
		SPLevel:      m.SPLevel,
		SPNote:       m.SPNote.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}

const memberColumns = `member_id, user_id, academic_id, name, email, department, position, join_year, status, photo_path, absence_count, sp_level, sp_note, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanMember(row pgx.Row) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID,
		&m.UserID,
		&m.AcademicID,
		&m.Name,
		&m.Email,
		&m.Department,
		&m.Position,
		&m.JoinYear,
		&m.Status,
		&m.PhotoPath,
		&m.AbsenceCount,
		&m.SPLevel,
		&m.SPNote,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := toModelMember(member)
	query := `
        INSERT INTO members (member_id, user_id, academic_id, name, email, department, position, join_year, status, photo_path, absence_count, sp_level, sp_note, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err := r.Pool.Exec(ctx, query,
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
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1 AND deleted_at IS NULL;`
	m, err := scanMember(r.Pool.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	d := toDomainMember(*m)
	return &d, nil
}

func (r *PgxMemberRepository) FindMemberByAcademicID(ctx context.Context, academicID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE academic_id = $1 AND deleted_at IS NULL;`
	m, err := scanMember(r.Pool.QueryRow(ctx, query, academicID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by academic ID: %w", err)
	}
	d := toDomainMember(*m)
	return &d, nil
}

func (r *PgxMemberRepository) FindMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + memberColumns + `
        FROM members
        WHERE deleted_at IS NULL
        ORDER BY name ASC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, toDomainMember(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}
	return members, nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := toModelMember(member)
	query := `
        UPDATE members
        SET user_id = $1, name = $2, email = $3, department = $4, position = $5, join_year = $6, status = $7, photo_path = $8, sp_level = $9, sp_note = $10, last_updated_at = $11, last_updated_by = $12
        WHERE member_id = $13 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.Department,
		m.Position,
		m.JoinYear,
		m.Status,
		m.PhotoPath,
		m.SPLevel,
		m.SPNote,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.MemberID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update member query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMemberRepository) UpdateMemberStanding(ctx context.Context, memberID string, absenceCount int, spLevel int, spNote string) error {
	var note sql.NullString
	if spNote != "" {
		note = sql.NullString{String: spNote, Valid: true}
	}
	query := `
        UPDATE members
        SET absence_count = $1, sp_level = $2, sp_note = $3
        WHERE member_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, absenceCount, spLevel, note, memberID)
	if err != nil {
		return fmt.Errorf("failed to update member standing: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMemberRepository) MarkMemberDeleted(ctx context.Context, memberID string, deletedAt time.Time, deleterUserID string) error {
	query := `
        UPDATE members
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE member_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deleterUserID, memberID)
	if err != nil {
		return fmt.Errorf("failed to mark member as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
