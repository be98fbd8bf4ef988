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

type PgxAgendaRepository struct {
	BaseRepository
}

func newPgxAgendaRepository(pool *pgxpool.Pool) portsrepo.AgendaRepository {
	return &PgxAgendaRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AgendaRepository = (*PgxAgendaRepository)(nil)

func toModelAgenda(d domain.Agenda) models.Agenda {
	m := models.Agenda{
		AgendaID:    d.AgendaID,
		Title:       d.Title,
		ScheduledAt: d.ScheduledAt,
		Status:      string(d.Status),
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
	if d.Location != "" {
		m.Location = sql.NullString{String: d.Location, Valid: true}
	}
	return m
}

func toDomainAgenda(m models.Agenda) domain.Agenda {
	return domain.Agenda{
		AgendaID:    m.AgendaID,
		Title:       m.Title,
		Description: m.Description.String,
		ScheduledAt: m.ScheduledAt,
		Location:    m.Location.String,
		Status:      domain.AgendaStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const agendaColumns = `agenda_id, title, description, scheduled_at, location, status, created_at, created_by, last_updated_at, last_updated_by`

func scanAgenda(row pgx.Row) (*models.Agenda, error) {
	var m models.Agenda
	err := row.Scan(
		&m.AgendaID,
		&m.Title,
		&m.Description,
		&m.ScheduledAt,
		&m.Location,
		&m.Status,
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

func (r *PgxAgendaRepository) SaveAgenda(ctx context.Context, agenda domain.Agenda) error {
	m := toModelAgenda(agenda)
	query := `
        INSERT INTO agendas (agenda_id, title, description, scheduled_at, location, status, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.AgendaID,
		m.Title,
		m.Description,
		m.ScheduledAt,
		m.Location,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save agenda: %w", err)
	}
	return nil
}

func (r *PgxAgendaRepository) FindAgendaByID(ctx context.Context, agendaID string) (*domain.Agenda, error) {
	query := `SELECT ` + agendaColumns + ` FROM agendas WHERE agenda_id = $1;`
	m, err := scanAgenda(r.Pool.QueryRow(ctx, query, agendaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find agenda by ID %s: %w", agendaID, err)
	}
	d := toDomainAgenda(*m)
	return &d, nil
}

func (r *PgxAgendaRepository) FindAgendas(ctx context.Context, limit, offset int) ([]domain.Agenda, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + agendaColumns + `
        FROM agendas
        ORDER BY scheduled_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query agendas: %w", err)
	}
	defer rows.Close()

	agendas := []domain.Agenda{}
	for rows.Next() {
		m, err := scanAgenda(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agenda row: %w", err)
		}
		agendas = append(agendas, toDomainAgenda(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating agenda rows: %w", rows.Err())
	}
	return agendas, nil
}

func (r *PgxAgendaRepository) UpdateAgenda(ctx context.Context, agenda domain.Agenda) error {
	m := toModelAgenda(agenda)
	query := `
        UPDATE agendas
        SET title = $1, description = $2, scheduled_at = $3, location = $4, status = $5, last_updated_at = $6, last_updated_by = $7
        WHERE agenda_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Description,
		m.ScheduledAt,
		m.Location,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.AgendaID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update agenda query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("agenda not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAgendaRepository) DeleteAgenda(ctx context.Context, agendaID string) error {
	query := `DELETE FROM agendas WHERE agenda_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, agendaID)
	if err != nil {
		return fmt.Errorf("failed to delete agenda: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("agenda not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
