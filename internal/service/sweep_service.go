package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
	"github.com/LeoNarD1812/backendpruebas/pkg/jobs"
)

type absenteeWriter interface {
	InsertAbsentees(ctx context.Context, sessionID string, recordedAt time.Time) (int64, error)
}

type jobQueue interface {
	Enqueue(job jobs.Job) error
}

const sweepJobType = "absence_sweep"

// SweepService closes a session by marking every active participant who
// never registered as ABSENT. The sweep runs on the background queue so
// the close request returns immediately.
type SweepService struct {
	repo     absenteeWriter
	sessions sessionReader
	queue    jobQueue
	logger   *zap.Logger
	now      func() time.Time
}

// NewSweepService constructs the sweep service.
func NewSweepService(repo absenteeWriter, sessions sessionReader, queue jobQueue, logger *zap.Logger) *SweepService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SweepService{repo: repo, sessions: sessions, queue: queue, logger: logger, now: time.Now}
}

// AttachQueue binds the job queue. The queue's handler is this service, so
// the two are constructed before being linked.
func (s *SweepService) AttachQueue(queue jobQueue) {
	s.queue = queue
}

// CloseSession validates the session and enqueues its absence sweep.
func (s *SweepService) CloseSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "session id is required")
	}

	if _, err := s.sessions.FindSpecificByID(ctx, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}

	if s.queue == nil {
		return appErrors.Clone(appErrors.ErrInternal, "sweep queue not attached")
	}

	job := jobs.Job{
		ID:      uuid.NewString(),
		Type:    sweepJobType,
		Payload: sessionID,
	}
	if err := s.queue.Enqueue(job); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue absence sweep")
	}

	s.logger.Info("absence sweep enqueued",
		zap.String("session_id", sessionID),
		zap.String("job_id", job.ID))
	return nil
}

// HandleJob is the queue handler that performs the sweep.
func (s *SweepService) HandleJob(ctx context.Context, job jobs.Job) error {
	sessionID, ok := job.Payload.(string)
	if !ok || sessionID == "" {
		s.logger.Error("absence sweep job with invalid payload", zap.String("job_id", job.ID))
		return nil
	}

	inserted, err := s.repo.InsertAbsentees(ctx, sessionID, s.now().UTC())
	if err != nil {
		return err
	}

	s.logger.Info("absence sweep completed",
		zap.String("session_id", sessionID),
		zap.Int64("absentees", inserted))
	return nil
}
