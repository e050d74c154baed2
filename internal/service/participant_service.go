package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
)

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type membershipRepository interface {
	FindByID(ctx context.Context, id string) (*models.GroupMembership, error)
	CountActive(ctx context.Context, groupID string) (int, error)
	CountActiveTx(ctx context.Context, tx *sqlx.Tx, groupID string) (int, error)
	FindActiveByPairTx(ctx context.Context, tx *sqlx.Tx, groupID, personID string) (*models.GroupMembership, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, membership *models.GroupMembership) error
	UpdateStatus(ctx context.Context, id string, status models.MembershipStatus, removedAt *time.Time) error
	ListByGroup(ctx context.Context, groupID string) ([]models.GroupMembershipDetail, error)
}

type groupLocker interface {
	LockByID(ctx context.Context, tx *sqlx.Tx, id string) (*models.SmallGroup, error)
}

// ParticipantService manages capacity-bounded group memberships.
type ParticipantService struct {
	repo   membershipRepository
	groups groupLocker
	people personReader
	tx     txProvider
	logger *zap.Logger
	now    func() time.Time
}

// NewParticipantService constructs the participant service.
func NewParticipantService(repo membershipRepository, groups groupLocker, people personReader, tx txProvider, logger *zap.Logger) *ParticipantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParticipantService{repo: repo, groups: groups, people: people, tx: tx, logger: logger, now: time.Now}
}

// Add enrolls a person into a small group. The group row is locked for the
// duration of the capacity check and insert so two concurrent adds against
// a group at capacity-1 cannot both succeed.
func (s *ParticipantService) Add(ctx context.Context, groupID, personID string) (*models.GroupMembership, error) {
	if groupID == "" || personID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "group id and person id are required")
	}
	if s.tx == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "transaction provider missing")
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	group, err := s.groups.LockByID(ctx, tx, groupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = appErrors.Clone(appErrors.ErrNotFound, "small group not found")
			return nil, err
		}
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load small group")
		return nil, err
	}

	if _, err = s.people.FindByID(ctx, personID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = appErrors.Clone(appErrors.ErrNotFound, "person not found")
			return nil, err
		}
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load person")
		return nil, err
	}

	current, err := s.repo.CountActiveTx(ctx, tx, groupID)
	if err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count members")
		return nil, err
	}
	if current >= group.Capacity {
		err = appErrors.Clone(appErrors.ErrCapacityExceeded, "group has reached maximum capacity")
		return nil, err
	}

	if _, err = s.repo.FindActiveByPairTx(ctx, tx, groupID, personID); err == nil {
		err = appErrors.Clone(appErrors.ErrConflict, "person already enrolled in this group")
		return nil, err
	} else if !errors.Is(err, sql.ErrNoRows) {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment")
		return nil, err
	}

	membership := &models.GroupMembership{
		SmallGroupID: groupID,
		PersonID:     personID,
		Status:       models.MembershipStatusActive,
		JoinedAt:     s.now().UTC(),
	}
	if err = s.repo.CreateTx(ctx, tx, membership); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create membership")
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit enrollment")
		return nil, err
	}

	s.logger.Info("participant added",
		zap.String("person_id", personID),
		zap.String("group_id", groupID))
	return membership, nil
}

// Remove soft-removes a membership by flipping it to INACTIVE, freeing one
// capacity slot. The row is retained so enrollment history stays queryable.
func (s *ParticipantService) Remove(ctx context.Context, membershipID string) error {
	if membershipID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "membership id is required")
	}

	membership, err := s.repo.FindByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "membership not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load membership")
	}

	removedAt := s.now().UTC()
	if err := s.repo.UpdateStatus(ctx, membership.ID, models.MembershipStatusInactive, &removedAt); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove participant")
	}

	s.logger.Info("participant removed",
		zap.String("membership_id", membershipID),
		zap.String("group_id", membership.SmallGroupID))
	return nil
}

// ListByGroup returns a group's roster: every membership with person info
// plus the ACTIVE head count, so callers can show occupancy against the
// group's capacity.
func (s *ParticipantService) ListByGroup(ctx context.Context, groupID string) (*models.GroupRoster, error) {
	if groupID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "group id is required")
	}
	memberships, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list group members")
	}
	active, err := s.repo.CountActive(ctx, groupID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count active members")
	}
	return &models.GroupRoster{Members: memberships, ActiveCount: active}, nil
}
