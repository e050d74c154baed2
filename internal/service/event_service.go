package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
)

type eventRepository interface {
	FindGeneralByID(ctx context.Context, id string) (*models.GeneralEvent, error)
	ListGeneral(ctx context.Context) ([]models.GeneralEvent, error)
	CreateGeneral(ctx context.Context, event *models.GeneralEvent) error
	FindSpecificByID(ctx context.Context, id string) (*models.SpecificEvent, error)
	ListSpecificByGeneralEvent(ctx context.Context, generalEventID string) ([]models.SpecificEvent, error)
	CreateSpecific(ctx context.Context, session *models.SpecificEvent) error
}

// CreateGeneralEventRequest is the general event creation payload.
type CreateGeneralEventRequest struct {
	Name      string `json:"name" validate:"required"`
	ProgramID string `json:"program_id" validate:"required"`
}

// CreateSessionRequest is the session creation payload. StartTime uses the
// HH:MM 24h format.
type CreateSessionRequest struct {
	GeneralEventID   string `json:"general_event_id" validate:"required"`
	Name             string `json:"name" validate:"required"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime        string `json:"start_time" validate:"required,datetime=15:04"`
	ToleranceMinutes int    `json:"tolerance_minutes" validate:"gte=0,lte=240"`
}

// EventService manages general events and their sessions.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs the event service.
func NewEventService(repo eventRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, validator: validate, logger: logger}
}

// GetGeneral returns a general event by ID.
func (s *EventService) GetGeneral(ctx context.Context, id string) (*models.GeneralEvent, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "general event id is required")
	}
	event, err := s.repo.FindGeneralByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "general event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load general event")
	}
	return event, nil
}

// ListGeneral returns every general event.
func (s *EventService) ListGeneral(ctx context.Context) ([]models.GeneralEvent, error) {
	events, err := s.repo.ListGeneral(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list general events")
	}
	return events, nil
}

// CreateGeneral registers a new general event.
func (s *EventService) CreateGeneral(ctx context.Context, req CreateGeneralEventRequest) (*models.GeneralEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid general event payload")
	}
	event := &models.GeneralEvent{Name: req.Name, ProgramID: req.ProgramID}
	if err := s.repo.CreateGeneral(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create general event")
	}
	s.logger.Info("general event created", zap.String("event_id", event.ID))
	return event, nil
}

// GetSession returns a session by ID.
func (s *EventService) GetSession(ctx context.Context, id string) (*models.SpecificEvent, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "session id is required")
	}
	session, err := s.repo.FindSpecificByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	return session, nil
}

// ListSessions returns the sessions of a general event in chronological
// order.
func (s *EventService) ListSessions(ctx context.Context, generalEventID string) ([]models.SpecificEvent, error) {
	if generalEventID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "general event id is required")
	}
	sessions, err := s.repo.ListSpecificByGeneralEvent(ctx, generalEventID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}
	return sessions, nil
}

// CreateSession registers a new session under an existing general event.
func (s *EventService) CreateSession(ctx context.Context, req CreateSessionRequest) (*models.SpecificEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session payload")
	}

	if _, err := s.repo.FindGeneralByID(ctx, req.GeneralEventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "general event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load general event")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid session date")
	}

	session := &models.SpecificEvent{
		GeneralEventID:   req.GeneralEventID,
		Name:             req.Name,
		Date:             date,
		StartTime:        req.StartTime,
		ToleranceMinutes: req.ToleranceMinutes,
	}
	if err := s.repo.CreateSpecific(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}

	s.logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("general_event_id", session.GeneralEventID))
	return session, nil
}
