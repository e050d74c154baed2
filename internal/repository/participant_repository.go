package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
)

// ParticipantRepository handles persistence of group memberships. The
// Tx-suffixed methods participate in a caller-owned transaction so the
// capacity check and insert behave as one atomic unit.
type ParticipantRepository struct {
	db *sqlx.DB
}

// NewParticipantRepository constructs the repository.
func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// FindByID returns a membership by its ID.
func (r *ParticipantRepository) FindByID(ctx context.Context, id string) (*models.GroupMembership, error) {
	const query = `SELECT id, small_group_id, person_id, status, joined_at, removed_at
        FROM group_memberships WHERE id = $1`
	var membership models.GroupMembership
	if err := r.db.GetContext(ctx, &membership, query, id); err != nil {
		return nil, err
	}
	return &membership, nil
}

// CountActive counts ACTIVE memberships of a group.
func (r *ParticipantRepository) CountActive(ctx context.Context, groupID string) (int, error) {
	const query = `SELECT COUNT(*) FROM group_memberships WHERE small_group_id = $1 AND status = $2`
	var total int
	if err := r.db.GetContext(ctx, &total, query, groupID, models.MembershipStatusActive); err != nil {
		return 0, fmt.Errorf("count active members: %w", err)
	}
	return total, nil
}

// CountActiveTx counts ACTIVE memberships of a group inside tx.
func (r *ParticipantRepository) CountActiveTx(ctx context.Context, tx *sqlx.Tx, groupID string) (int, error) {
	const query = `SELECT COUNT(*) FROM group_memberships WHERE small_group_id = $1 AND status = $2`
	var total int
	if err := tx.GetContext(ctx, &total, query, groupID, models.MembershipStatusActive); err != nil {
		return 0, fmt.Errorf("count active members: %w", err)
	}
	return total, nil
}

// FindActiveByPairTx returns the ACTIVE membership for (group, person)
// inside tx, or sql.ErrNoRows when none exists. INACTIVE rows are history
// and never block a new enrollment.
func (r *ParticipantRepository) FindActiveByPairTx(ctx context.Context, tx *sqlx.Tx, groupID, personID string) (*models.GroupMembership, error) {
	const query = `SELECT id, small_group_id, person_id, status, joined_at, removed_at
        FROM group_memberships WHERE small_group_id = $1 AND person_id = $2 AND status = $3`
	var membership models.GroupMembership
	if err := tx.GetContext(ctx, &membership, query, groupID, personID, models.MembershipStatusActive); err != nil {
		return nil, err
	}
	return &membership, nil
}

// CreateTx inserts a membership inside tx. A partial unique index on
// (small_group_id, person_id) WHERE status = 'ACTIVE' backstops the
// duplicate check under concurrency.
func (r *ParticipantRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, membership *models.GroupMembership) error {
	if membership.ID == "" {
		membership.ID = uuid.NewString()
	}
	if membership.JoinedAt.IsZero() {
		membership.JoinedAt = time.Now().UTC()
	}
	if membership.Status == "" {
		membership.Status = models.MembershipStatusActive
	}
	const query = `INSERT INTO group_memberships (id, small_group_id, person_id, status, joined_at, removed_at)
        VALUES (:id, :small_group_id, :person_id, :status, :joined_at, :removed_at)`
	if _, err := tx.NamedExecContext(ctx, query, membership); err != nil {
		return fmt.Errorf("create membership: %w", err)
	}
	return nil
}

// UpdateStatus flips a membership's status, stamping removed_at on
// deactivation. Soft removal keeps the row.
func (r *ParticipantRepository) UpdateStatus(ctx context.Context, id string, status models.MembershipStatus, removedAt *time.Time) error {
	const query = `UPDATE group_memberships SET status = $2, removed_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status, removedAt); err != nil {
		return fmt.Errorf("update membership status: %w", err)
	}
	return nil
}

// ListByGroup returns the memberships of a group with person info.
func (r *ParticipantRepository) ListByGroup(ctx context.Context, groupID string) ([]models.GroupMembershipDetail, error) {
	const query = `SELECT gm.id, gm.small_group_id, gm.person_id, gm.status, gm.joined_at, gm.removed_at,
        p.full_name, p.student_code
        FROM group_memberships gm
        JOIN people p ON p.id = gm.person_id
        WHERE gm.small_group_id = $1
        ORDER BY gm.joined_at ASC`
	var memberships []models.GroupMembershipDetail
	if err := r.db.SelectContext(ctx, &memberships, query, groupID); err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	return memberships, nil
}

// ListActiveByGeneralEvent returns the active participants across every
// small group of a general event, in stable join order.
func (r *ParticipantRepository) ListActiveByGeneralEvent(ctx context.Context, generalEventID string) ([]models.EventParticipant, error) {
	const query = `SELECT gm.person_id, p.full_name, p.student_code
        FROM group_memberships gm
        JOIN small_groups sg ON sg.id = gm.small_group_id
        JOIN people p ON p.id = gm.person_id
        WHERE sg.general_event_id = $1 AND gm.status = $2
        ORDER BY sg.name ASC, gm.joined_at ASC`
	var participants []models.EventParticipant
	if err := r.db.SelectContext(ctx, &participants, query, generalEventID, models.MembershipStatusActive); err != nil {
		return nil, fmt.Errorf("list event participants: %w", err)
	}
	return participants, nil
}
