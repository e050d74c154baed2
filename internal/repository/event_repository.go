package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
)

// EventRepository handles persistence of general events and their sessions.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs the repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// FindGeneralByID returns a general event by its ID.
func (r *EventRepository) FindGeneralByID(ctx context.Context, id string) (*models.GeneralEvent, error) {
	const query = `SELECT id, name, program_id, created_at FROM general_events WHERE id = $1`
	var event models.GeneralEvent
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// ListGeneral returns every general event, newest first.
func (r *EventRepository) ListGeneral(ctx context.Context) ([]models.GeneralEvent, error) {
	const query = `SELECT id, name, program_id, created_at FROM general_events ORDER BY created_at DESC`
	var events []models.GeneralEvent
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list general events: %w", err)
	}
	return events, nil
}

// CreateGeneral persists a new general event.
func (r *EventRepository) CreateGeneral(ctx context.Context, event *models.GeneralEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO general_events (id, name, program_id, created_at)
        VALUES (:id, :name, :program_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create general event: %w", err)
	}
	return nil
}

// FindSpecificByID returns a session by its ID.
func (r *EventRepository) FindSpecificByID(ctx context.Context, id string) (*models.SpecificEvent, error) {
	const query = `SELECT id, general_event_id, name, date, start_time, tolerance_minutes, created_at
        FROM specific_events WHERE id = $1`
	var session models.SpecificEvent
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSpecificByGeneralEvent returns the sessions of a general event.
func (r *EventRepository) ListSpecificByGeneralEvent(ctx context.Context, generalEventID string) ([]models.SpecificEvent, error) {
	const query = `SELECT id, general_event_id, name, date, start_time, tolerance_minutes, created_at
        FROM specific_events WHERE general_event_id = $1 ORDER BY date ASC, start_time ASC`
	var sessions []models.SpecificEvent
	if err := r.db.SelectContext(ctx, &sessions, query, generalEventID); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// CountSpecificByGeneralEvent counts the sessions of a general event.
func (r *EventRepository) CountSpecificByGeneralEvent(ctx context.Context, generalEventID string) (int, error) {
	const query = `SELECT COUNT(*) FROM specific_events WHERE general_event_id = $1`
	var total int
	if err := r.db.GetContext(ctx, &total, query, generalEventID); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return total, nil
}

// CreateSpecific persists a new session.
func (r *EventRepository) CreateSpecific(ctx context.Context, session *models.SpecificEvent) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO specific_events (id, general_event_id, name, date, start_time, tolerance_minutes, created_at)
        VALUES (:id, :general_event_id, :name, :date, :start_time, :tolerance_minutes, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}
