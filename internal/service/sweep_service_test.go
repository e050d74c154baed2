package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
	"github.com/LeoNarD1812/backendpruebas/pkg/jobs"
)

type mockAbsenteeWriter struct {
	swept    []string
	inserted int64
	err      error
}

func (m *mockAbsenteeWriter) InsertAbsentees(ctx context.Context, sessionID string, recordedAt time.Time) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.swept = append(m.swept, sessionID)
	return m.inserted, nil
}

type mockJobQueue struct {
	jobs []jobs.Job
	err  error
}

func (m *mockJobQueue) Enqueue(job jobs.Job) error {
	if m.err != nil {
		return m.err
	}
	m.jobs = append(m.jobs, job)
	return nil
}

func TestSweepCloseSessionEnqueues(t *testing.T) {
	queue := &mockJobQueue{}
	sessions := &mockSessionReader{sessions: map[string]models.SpecificEvent{
		"ses1": {ID: "ses1", GeneralEventID: "gen1", StartTime: "09:00"},
	}}
	svc := NewSweepService(&mockAbsenteeWriter{}, sessions, queue, zap.NewNop())

	err := svc.CloseSession(context.Background(), "ses1")
	require.NoError(t, err)
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, sweepJobType, queue.jobs[0].Type)
	assert.Equal(t, "ses1", queue.jobs[0].Payload)
}

func TestSweepCloseSessionNotFound(t *testing.T) {
	svc := NewSweepService(&mockAbsenteeWriter{}, &mockSessionReader{}, &mockJobQueue{}, zap.NewNop())

	err := svc.CloseSession(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestSweepHandleJob(t *testing.T) {
	writer := &mockAbsenteeWriter{inserted: 3}
	svc := NewSweepService(writer, &mockSessionReader{}, &mockJobQueue{}, zap.NewNop())

	err := svc.HandleJob(context.Background(), jobs.Job{ID: "job1", Type: sweepJobType, Payload: "ses1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ses1"}, writer.swept)
}

func TestSweepHandleJobInvalidPayload(t *testing.T) {
	writer := &mockAbsenteeWriter{}
	svc := NewSweepService(writer, &mockSessionReader{}, &mockJobQueue{}, zap.NewNop())

	err := svc.HandleJob(context.Background(), jobs.Job{ID: "job1", Type: sweepJobType, Payload: 42})
	require.NoError(t, err)
	assert.Empty(t, writer.swept)
}
