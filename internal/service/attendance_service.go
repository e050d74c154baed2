package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	"github.com/LeoNarD1812/backendpruebas/internal/repository"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
)

type attendanceRepository interface {
	FindByPair(ctx context.Context, sessionID, personID string) (*models.AttendanceRecord, error)
	Create(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error)
	ListBySpecificEvent(ctx context.Context, sessionID string, status models.AttendanceStatus) ([]models.AttendanceRecord, error)
	ListByPerson(ctx context.Context, personID string) ([]models.AttendanceRecord, error)
	CountByPersonEventAndStatus(ctx context.Context, personID, generalEventID string, status models.AttendanceStatus) (int, error)
}

type sessionReader interface {
	FindSpecificByID(ctx context.Context, id string) (*models.SpecificEvent, error)
	CountSpecificByGeneralEvent(ctx context.Context, generalEventID string) (int, error)
}

type personReader interface {
	FindByID(ctx context.Context, id string) (*models.Person, error)
}

type participantLister interface {
	ListActiveByGeneralEvent(ctx context.Context, generalEventID string) ([]models.EventParticipant, error)
}

// RegisterAttendanceRequest is the registration payload.
type RegisterAttendanceRequest struct {
	SessionID string   `json:"session_id" validate:"required"`
	PersonID  string   `json:"person_id" validate:"required"`
	Remark    *string  `json:"remark"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// AttendanceService records arrivals and aggregates per-person reports.
type AttendanceService struct {
	repo         attendanceRepository
	sessions     sessionReader
	people       personReader
	participants participantLister
	validator    *validator.Validate
	logger       *zap.Logger
	now          func() time.Time
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo attendanceRepository, sessions sessionReader, people personReader, participants participantLister, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		repo:         repo,
		sessions:     sessions,
		people:       people,
		participants: participants,
		validator:    validate,
		logger:       logger,
		now:          time.Now,
	}
}

// Register records one person's arrival for a session. The status is
// derived from the session's start time and tolerance window: arrivals up
// to and including the deadline are PRESENT, anything after is LATE. A
// second registration for the same pair is rejected, never overwritten.
func (s *AttendanceService) Register(ctx context.Context, req RegisterAttendanceRequest) (*models.AttendanceRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	session, err := s.sessions.FindSpecificByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}

	if _, err := s.people.FindByID(ctx, req.PersonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "person not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load person")
	}

	if _, err := s.repo.FindByPair(ctx, req.SessionID, req.PersonID); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "attendance already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing attendance")
	}

	now := s.now()
	status, err := classifyArrival(now, session.StartTime, session.ToleranceMinutes)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to classify arrival")
	}

	record := &models.AttendanceRecord{
		SpecificEventID: req.SessionID,
		PersonID:        req.PersonID,
		RecordedAt:      now.UTC(),
		Status:          status,
		Remark:          req.Remark,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
	stored, err := s.repo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "attendance already registered")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save attendance")
	}

	s.logger.Info("attendance registered",
		zap.String("person_id", req.PersonID),
		zap.String("session_id", req.SessionID),
		zap.String("status", string(status)))
	return stored, nil
}

// Report aggregates attendance across every session of a general event,
// one summary per active participant. Output order follows the membership
// listing order, first occurrence per person.
func (s *AttendanceService) Report(ctx context.Context, generalEventID string) ([]models.PersonAttendanceSummary, error) {
	if generalEventID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "general event id is required")
	}

	participants, err := s.participants.ListActiveByGeneralEvent(ctx, generalEventID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list participants")
	}

	totalSessions, err := s.sessions.CountSpecificByGeneralEvent(ctx, generalEventID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count sessions")
	}

	summaries := make([]models.PersonAttendanceSummary, 0, len(participants))
	seen := make(map[string]struct{}, len(participants))
	for _, participant := range participants {
		if _, ok := seen[participant.PersonID]; ok {
			continue
		}
		seen[participant.PersonID] = struct{}{}

		summary := models.PersonAttendanceSummary{
			PersonID:      participant.PersonID,
			FullName:      participant.FullName,
			StudentCode:   participant.StudentCode,
			TotalSessions: totalSessions,
		}
		counts := map[models.AttendanceStatus]*int{
			models.AttendanceStatusPresent: &summary.Present,
			models.AttendanceStatusLate:    &summary.Late,
			models.AttendanceStatusAbsent:  &summary.Absent,
			models.AttendanceStatusExcused: &summary.Excused,
		}
		for _, status := range []models.AttendanceStatus{
			models.AttendanceStatusPresent,
			models.AttendanceStatusLate,
			models.AttendanceStatusAbsent,
			models.AttendanceStatusExcused,
		} {
			count, err := s.repo.CountByPersonEventAndStatus(ctx, participant.PersonID, generalEventID, status)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count attendance")
			}
			*counts[status] = count
		}

		// EXCUSED and ABSENT never count toward the percentage.
		if totalSessions > 0 {
			attended := float64(summary.Present + summary.Late)
			summary.Percentage = round2(attended * 100 / float64(totalSessions))
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ListBySession returns the records of one session. A non-empty status
// narrows the listing and must be one of the known status values.
func (s *AttendanceService) ListBySession(ctx context.Context, sessionID, status string) ([]models.AttendanceRecord, error) {
	if sessionID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "session id is required")
	}
	filter := models.AttendanceStatus(status)
	if filter != "" && !filter.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown attendance status")
	}
	records, err := s.repo.ListBySpecificEvent(ctx, sessionID, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list session attendance")
	}
	return records, nil
}

// ListByPerson returns the records of one person.
func (s *AttendanceService) ListByPerson(ctx context.Context, personID string) ([]models.AttendanceRecord, error) {
	if personID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "person id is required")
	}
	records, err := s.repo.ListByPerson(ctx, personID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list person attendance")
	}
	return records, nil
}

// classifyArrival compares the arrival's time-of-day against the session
// start plus tolerance. The deadline itself still counts as PRESENT.
func classifyArrival(now time.Time, startTime string, toleranceMinutes int) (models.AttendanceStatus, error) {
	layout := "15:04:05"
	if len(startTime) == len("15:04") {
		layout = "15:04"
	}
	start, err := time.Parse(layout, startTime)
	if err != nil {
		return "", fmt.Errorf("parse session start time %q: %w", startTime, err)
	}

	startOfDay := timeOfDay(start)
	arrival := timeOfDay(now)
	deadline := startOfDay + time.Duration(toleranceMinutes)*time.Minute

	if arrival <= deadline {
		return models.AttendanceStatusPresent, nil
	}
	return models.AttendanceStatusLate, nil
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
