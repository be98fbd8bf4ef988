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

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepository {
	return &PgxEventRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

func toModelEvent(d domain.Event) models.Event {
	m := models.Event{
		EventID:  d.EventID,
		Name:     d.Name,
		Location: d.Location,
		StartsAt: d.StartsAt,
		EndsAt:   d.EndsAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.ResponsibleMemberID != "" {
		m.ResponsibleMemberID = sql.NullString{String: d.ResponsibleMemberID, Valid: true}
	}
	if d.Description != "" {
		m.Description = sql.NullString{String: d.Description, Valid: true}
	}
	return m
}

func toDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:             m.EventID,
		Name:                m.Name,
		Location:            m.Location,
		StartsAt:            m.StartsAt,
		EndsAt:              m.EndsAt,
		ResponsibleMemberID: m.ResponsibleMemberID.String,
		Description:         m.Description.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const eventColumns = `event_id, name, location, starts_at, ends_at, responsible_member_id, description, created_at, created_by, last_updated_at, last_updated_by`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.Name,
		&m.Location,
		&m.StartsAt,
		&m.EndsAt,
		&m.ResponsibleMemberID,
		&m.Description,
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

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := toModelEvent(event)
	query := `
        INSERT INTO events (event_id, name, location, starts_at, ends_at, responsible_member_id, description, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.EventID,
		m.Name,
		m.Location,
		m.StartsAt,
		m.EndsAt,
		m.ResponsibleMemberID,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %s: %w", eventID, err)
	}
	d := toDomainEvent(*m)
	return &d, nil
}

func (r *PgxEventRepository) FindEvents(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + eventColumns + `
        FROM events
        ORDER BY starts_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, toDomainEvent(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}
	return events, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := toModelEvent(event)
	query := `
        UPDATE events
        SET name = $1, location = $2, starts_at = $3, ends_at = $4, responsible_member_id = $5, description = $6, last_updated_at = $7, last_updated_by = $8
        WHERE event_id = $9;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Location,
		m.StartsAt,
		m.EndsAt,
		m.ResponsibleMemberID,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EventID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update event query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM events WHERE event_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
