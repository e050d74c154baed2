package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
)

type groupRepository interface {
	FindByID(ctx context.Context, id string) (*models.SmallGroup, error)
	ListByGeneralEvent(ctx context.Context, generalEventID string) ([]models.SmallGroup, error)
	Create(ctx context.Context, group *models.SmallGroup) error
}

// CreateGroupRequest is the small group creation payload.
type CreateGroupRequest struct {
	GeneralEventID string `json:"general_event_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	LeaderID       string `json:"leader_id" validate:"required"`
	Capacity       int    `json:"capacity" validate:"required,gt=0"`
}

// GroupService manages small groups.
type GroupService struct {
	repo      groupRepository
	events    generalEventReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGroupService constructs the group service.
func NewGroupService(repo groupRepository, events generalEventReader, validate *validator.Validate, logger *zap.Logger) *GroupService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroupService{repo: repo, events: events, validator: validate, logger: logger}
}

// Get returns a small group by ID.
func (s *GroupService) Get(ctx context.Context, id string) (*models.SmallGroup, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "group id is required")
	}
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "small group not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load small group")
	}
	return group, nil
}

// ListByGeneralEvent returns the small groups of a general event.
func (s *GroupService) ListByGeneralEvent(ctx context.Context, generalEventID string) ([]models.SmallGroup, error) {
	if generalEventID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "general event id is required")
	}
	groups, err := s.repo.ListByGeneralEvent(ctx, generalEventID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list small groups")
	}
	return groups, nil
}

// Create registers a new small group under an existing general event.
func (s *GroupService) Create(ctx context.Context, req CreateGroupRequest) (*models.SmallGroup, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid group payload")
	}

	if _, err := s.events.FindGeneralByID(ctx, req.GeneralEventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "general event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load general event")
	}

	group := &models.SmallGroup{
		GeneralEventID: req.GeneralEventID,
		Name:           req.Name,
		LeaderID:       req.LeaderID,
		Capacity:       req.Capacity,
	}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create small group")
	}

	s.logger.Info("small group created",
		zap.String("group_id", group.ID),
		zap.String("general_event_id", group.GeneralEventID))
	return group, nil
}
