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

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepository {
	return &PgxAttendanceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AttendanceRepository = (*PgxAttendanceRepository)(nil)

func toModelAttendanceRecord(d domain.AttendanceRecord) models.AttendanceRecord {
	m := models.AttendanceRecord{
		RecordID:   d.RecordID,
		EventID:    d.EventID,
		MemberID:   d.MemberID,
		Outcome:    string(d.Outcome),
		RecordedAt: d.RecordedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.Note != "" {
		m.Note = sql.NullString{String: d.Note, Valid: true}
	}
	return m
}

func toDomainAttendanceRecord(m models.AttendanceRecord) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		RecordID:   m.RecordID,
		EventID:    m.EventID,
		MemberID:   m.MemberID,
		Outcome:    domain.AttendanceOutcome(m.Outcome),
		RecordedAt: m.RecordedAt,
		Note:       m.Note.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const attendanceColumns = `record_id, event_id, member_id, outcome, recorded_at, note, created_at, created_by, last_updated_at, last_updated_by`

func scanAttendanceRecord(row pgx.Row) (*models.AttendanceRecord, error) {
	var m models.AttendanceRecord
	err := row.Scan(
		&m.RecordID,
		&m.EventID,
		&m.MemberID,
		&m.Outcome,
		&m.RecordedAt,
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

func (r *PgxAttendanceRepository) SaveRecord(ctx context.Context, record domain.AttendanceRecord) error {
	m := toModelAttendanceRecord(record)
	query := `
        INSERT INTO attendance_records (record_id, event_id, member_id, outcome, recorded_at, note, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.RecordID,
		m.EventID,
		m.MemberID,
		m.Outcome,
		m.RecordedAt,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance record: %w", err)
	}
	return nil
}

func (r *PgxAttendanceRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE record_id = $1;`
	m, err := scanAttendanceRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance record by ID %s: %w", recordID, err)
	}
	d := toDomainAttendanceRecord(*m)
	return &d, nil
}

func (r *PgxAttendanceRepository) FindRecordByEventAndMember(ctx context.Context, eventID, memberID string) (*domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE event_id = $1 AND member_id = $2;`
	m, err := scanAttendanceRecord(r.Pool.QueryRow(ctx, query, eventID, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance record for event %s member %s: %w", eventID, memberID, err)
	}
	d := toDomainAttendanceRecord(*m)
	return &d, nil
}

func (r *PgxAttendanceRepository) FindRecordsByEvent(ctx context.Context, eventID string) ([]domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE event_id = $1 ORDER BY recorded_at ASC;`
	return r.queryRecords(ctx, query, eventID)
}

func (r *PgxAttendanceRepository) FindRecordsByMember(ctx context.Context, memberID string) ([]domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE member_id = $1 ORDER BY recorded_at DESC;`
	return r.queryRecords(ctx, query, memberID)
}

func (r *PgxAttendanceRepository) queryRecords(ctx context.Context, query string, args ...any) ([]domain.AttendanceRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	records := []domain.AttendanceRecord{}
	for rows.Next() {
		m, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record row: %w", err)
		}
		records = append(records, toDomainAttendanceRecord(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating attendance record rows: %w", rows.Err())
	}
	return records, nil
}

func (r *PgxAttendanceRepository) UpdateRecord(ctx context.Context, record domain.AttendanceRecord) error {
	m := toModelAttendanceRecord(record)
	query := `
        UPDATE attendance_records
        SET member_id = $1, outcome = $2, recorded_at = $3, note = $4, last_updated_at = $5, last_updated_by = $6
        WHERE record_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.MemberID,
		m.Outcome,
		m.RecordedAt,
		m.Note,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.RecordID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update attendance record query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("attendance record not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAttendanceRepository) DeleteRecord(ctx context.Context, recordID string) error {
	query := `DELETE FROM attendance_records WHERE record_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("attendance record not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAttendanceRepository) CountAbsences(ctx context.Context, memberID string) (int, error) {
	query := `SELECT COUNT(*) FROM attendance_records WHERE member_id = $1 AND outcome <> 'hadir';`
	var count int
	if err := r.Pool.QueryRow(ctx, query, memberID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count absences for member %s: %w", memberID, err)
	}
	return count, nil
}
