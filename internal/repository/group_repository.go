package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
)

// GroupRepository handles persistence of small groups.
type GroupRepository struct {
	db *sqlx.DB
}

// NewGroupRepository constructs the repository.
func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// FindByID returns a small group by its ID.
func (r *GroupRepository) FindByID(ctx context.Context, id string) (*models.SmallGroup, error) {
	const query = `SELECT id, general_event_id, name, leader_id, capacity, created_at
        FROM small_groups WHERE id = $1`
	var group models.SmallGroup
	if err := r.db.GetContext(ctx, &group, query, id); err != nil {
		return nil, err
	}
	return &group, nil
}

// LockByID loads a small group inside tx, taking a row lock that serialises
// concurrent enrollments against the same group.
func (r *GroupRepository) LockByID(ctx context.Context, tx *sqlx.Tx, id string) (*models.SmallGroup, error) {
	const query = `SELECT id, general_event_id, name, leader_id, capacity, created_at
        FROM small_groups WHERE id = $1 FOR UPDATE`
	var group models.SmallGroup
	if err := tx.GetContext(ctx, &group, query, id); err != nil {
		return nil, err
	}
	return &group, nil
}

// ListByGeneralEvent returns the small groups of a general event.
func (r *GroupRepository) ListByGeneralEvent(ctx context.Context, generalEventID string) ([]models.SmallGroup, error) {
	const query = `SELECT id, general_event_id, name, leader_id, capacity, created_at
        FROM small_groups WHERE general_event_id = $1 ORDER BY name ASC`
	var groups []models.SmallGroup
	if err := r.db.SelectContext(ctx, &groups, query, generalEventID); err != nil {
		return nil, fmt.Errorf("list small groups: %w", err)
	}
	return groups, nil
}

// Create persists a new small group.
func (r *GroupRepository) Create(ctx context.Context, group *models.SmallGroup) error {
	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO small_groups (id, general_event_id, name, leader_id, capacity, created_at)
        VALUES (:id, :general_event_id, :name, :leader_id, :capacity, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, group); err != nil {
		return fmt.Errorf("create small group: %w", err)
	}
	return nil
}
