package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	"github.com/LeoNarD1812/backendpruebas/internal/repository"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
)

type mockAttendanceRepo struct {
	records map[string]models.AttendanceRecord
	counts  map[string]map[models.AttendanceStatus]int
}

func pairKey(sessionID, personID string) string { return sessionID + "|" + personID }

func (m *mockAttendanceRepo) FindByPair(ctx context.Context, sessionID, personID string) (*models.AttendanceRecord, error) {
	if r, ok := m.records[pairKey(sessionID, personID)]; ok {
		return &r, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAttendanceRepo) Create(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if m.records == nil {
		m.records = make(map[string]models.AttendanceRecord)
	}
	key := pairKey(record.SpecificEventID, record.PersonID)
	if _, ok := m.records[key]; ok {
		return nil, repository.ErrDuplicateRecord
	}
	if record.ID == "" {
		record.ID = "generated"
	}
	m.records[key] = *record
	return record, nil
}

func (m *mockAttendanceRepo) ListBySpecificEvent(ctx context.Context, sessionID string, status models.AttendanceStatus) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range m.records {
		if r.SpecificEventID != sessionID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockAttendanceRepo) ListByPerson(ctx context.Context, personID string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range m.records {
		if r.PersonID == personID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) CountByPersonEventAndStatus(ctx context.Context, personID, generalEventID string, status models.AttendanceStatus) (int, error) {
	return m.counts[personID][status], nil
}

type mockSessionReader struct {
	sessions map[string]models.SpecificEvent
	total    int
}

func (m *mockSessionReader) FindSpecificByID(ctx context.Context, id string) (*models.SpecificEvent, error) {
	if s, ok := m.sessions[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockSessionReader) CountSpecificByGeneralEvent(ctx context.Context, generalEventID string) (int, error) {
	return m.total, nil
}

type mockPersonReader struct {
	people map[string]models.Person
}

func (m *mockPersonReader) FindByID(ctx context.Context, id string) (*models.Person, error) {
	if p, ok := m.people[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

type mockParticipantLister struct {
	participants []models.EventParticipant
}

func (m *mockParticipantLister) ListActiveByGeneralEvent(ctx context.Context, generalEventID string) ([]models.EventParticipant, error) {
	return m.participants, nil
}

func newAttendanceFixture(startTime string, tolerance int) (*AttendanceService, *mockAttendanceRepo) {
	repo := &mockAttendanceRepo{records: make(map[string]models.AttendanceRecord)}
	sessions := &mockSessionReader{sessions: map[string]models.SpecificEvent{
		"ses1": {ID: "ses1", GeneralEventID: "gen1", StartTime: startTime, ToleranceMinutes: tolerance},
	}}
	people := &mockPersonReader{people: map[string]models.Person{
		"per1": {ID: "per1", FullName: "Ana Torres"},
	}}
	svc := NewAttendanceService(repo, sessions, people, &mockParticipantLister{}, validator.New(), zap.NewNop())
	return svc, repo
}

func atClock(svc *AttendanceService, hhmmss string) {
	t, _ := time.Parse("15:04:05", hhmmss)
	svc.now = func() time.Time {
		return time.Date(2025, 9, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	}
}

func TestAttendanceRegisterWithinTolerance(t *testing.T) {
	svc, _ := newAttendanceFixture("09:00", 15)
	atClock(svc, "09:10:00")

	record, err := svc.Register(context.Background(), RegisterAttendanceRequest{SessionID: "ses1", PersonID: "per1"})
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceStatusPresent, record.Status)
}

func TestAttendanceRegisterAtDeadline(t *testing.T) {
	svc, _ := newAttendanceFixture("09:00", 15)
	atClock(svc, "09:15:00")

	record, err := svc.Register(context.Background(), RegisterAttendanceRequest{SessionID: "ses1", PersonID: "per1"})
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceStatusPresent, record.Status)
}

func TestAttendanceRegisterAfterDeadline(t *testing.T) {
	svc, _ := newAttendanceFixture("09:00", 15)
	atClock(svc, "09:16:00")

	record, err := svc.Register(context.Background(), RegisterAttendanceRequest{SessionID: "ses1", PersonID: "per1"})
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceStatusLate, record.Status)
}

func TestAttendanceRegisterDuplicateKeepsFirst(t *testing.T) {
	svc, repo := newAttendanceFixture("09:00", 15)
	atClock(svc, "09:05:00")

	first, err := svc.Register(context.Background(), RegisterAttendanceRequest{SessionID: "ses1", PersonID: "per1"})
	require.NoError(t, err)

	atClock(svc, "09:30:00")
	_, err = svc.Register(context.Background(), RegisterAttendanceRequest{SessionID: "ses1", PersonID: "per1"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))

	stored := repo.records[pairKey("ses1", "per1")]
	assert.Equal(t, first.Status, stored.Status)
	assert.Equal(t, models.AttendanceStatusPresent, stored.Status)
}

func TestAttendanceRegisterSessionNotFound(t *testing.T) {
	svc, _ := newAttendanceFixture("09:00", 15)

	_, err := svc.Register(context.Background(), RegisterAttendanceRequest{SessionID: "missing", PersonID: "per1"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestAttendanceRegisterPersonNotFound(t *testing.T) {
	svc, _ := newAttendanceFixture("09:00", 15)

	_, err := svc.Register(context.Background(), RegisterAttendanceRequest{SessionID: "ses1", PersonID: "missing"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestAttendanceReportPercentages(t *testing.T) {
	code := "S001"
	repo := &mockAttendanceRepo{counts: map[string]map[models.AttendanceStatus]int{
		"per1": {models.AttendanceStatusPresent: 3, models.AttendanceStatusLate: 1},
		"per2": {models.AttendanceStatusPresent: 2, models.AttendanceStatusAbsent: 2},
	}}
	sessions := &mockSessionReader{total: 4}
	participants := &mockParticipantLister{participants: []models.EventParticipant{
		{PersonID: "per1", FullName: "Ana Torres", StudentCode: &code},
		{PersonID: "per2", FullName: "Luis Vega"},
	}}
	svc := NewAttendanceService(repo, sessions, &mockPersonReader{}, participants, validator.New(), zap.NewNop())

	summaries, err := svc.Report(context.Background(), "gen1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "per1", summaries[0].PersonID)
	assert.Equal(t, 4, summaries[0].TotalSessions)
	assert.Equal(t, 3, summaries[0].Present)
	assert.Equal(t, 1, summaries[0].Late)
	assert.Equal(t, 100.0, summaries[0].Percentage)

	assert.Equal(t, "per2", summaries[1].PersonID)
	assert.Equal(t, 2, summaries[1].Absent)
	assert.Equal(t, 50.0, summaries[1].Percentage)
}

func TestAttendanceReportNoSessions(t *testing.T) {
	repo := &mockAttendanceRepo{counts: map[string]map[models.AttendanceStatus]int{}}
	participants := &mockParticipantLister{participants: []models.EventParticipant{
		{PersonID: "per1", FullName: "Ana Torres"},
	}}
	svc := NewAttendanceService(repo, &mockSessionReader{total: 0}, &mockPersonReader{}, participants, validator.New(), zap.NewNop())

	summaries, err := svc.Report(context.Background(), "gen1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 0.0, summaries[0].Percentage)
}

func TestAttendanceReportDeduplicatesParticipants(t *testing.T) {
	repo := &mockAttendanceRepo{counts: map[string]map[models.AttendanceStatus]int{}}
	participants := &mockParticipantLister{participants: []models.EventParticipant{
		{PersonID: "per1", FullName: "Ana Torres"},
		{PersonID: "per1", FullName: "Ana Torres"},
		{PersonID: "per2", FullName: "Luis Vega"},
	}}
	svc := NewAttendanceService(repo, &mockSessionReader{total: 2}, &mockPersonReader{}, participants, validator.New(), zap.NewNop())

	summaries, err := svc.Report(context.Background(), "gen1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "per1", summaries[0].PersonID)
	assert.Equal(t, "per2", summaries[1].PersonID)
}

func TestAttendanceListBySessionFiltersByStatus(t *testing.T) {
	svc, repo := newAttendanceFixture("09:00", 15)
	repo.records[pairKey("ses1", "per1")] = models.AttendanceRecord{ID: "a1", SpecificEventID: "ses1", PersonID: "per1", Status: models.AttendanceStatusPresent}
	repo.records[pairKey("ses1", "per2")] = models.AttendanceRecord{ID: "a2", SpecificEventID: "ses1", PersonID: "per2", Status: models.AttendanceStatusLate}

	records, err := svc.ListBySession(context.Background(), "ses1", "LATE")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "per2", records[0].PersonID)

	records, err = svc.ListBySession(context.Background(), "ses1", "")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestAttendanceListBySessionRejectsUnknownStatus(t *testing.T) {
	svc, _ := newAttendanceFixture("09:00", 15)

	_, err := svc.ListBySession(context.Background(), "ses1", "TARDE")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestClassifyArrivalRejectsBadStartTime(t *testing.T) {
	_, err := classifyArrival(time.Now(), "not-a-time", 10)
	require.Error(t, err)
}
