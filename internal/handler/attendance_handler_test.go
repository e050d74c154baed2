package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	"github.com/LeoNarD1812/backendpruebas/internal/service"
)

type fakeAttendanceRepo struct {
	records map[string]models.AttendanceRecord
}

func (f *fakeAttendanceRepo) FindByPair(ctx context.Context, sessionID, personID string) (*models.AttendanceRecord, error) {
	if r, ok := f.records[sessionID+"|"+personID]; ok {
		return &r, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if f.records == nil {
		f.records = make(map[string]models.AttendanceRecord)
	}
	record.ID = "att-1"
	f.records[record.SpecificEventID+"|"+record.PersonID] = *record
	return record, nil
}

func (f *fakeAttendanceRepo) ListBySpecificEvent(ctx context.Context, sessionID string, status models.AttendanceStatus) ([]models.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByPerson(ctx context.Context, personID string) ([]models.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) CountByPersonEventAndStatus(ctx context.Context, personID, generalEventID string, status models.AttendanceStatus) (int, error) {
	return 0, nil
}

type fakeSessionReader struct {
	sessions map[string]models.SpecificEvent
}

func (f *fakeSessionReader) FindSpecificByID(ctx context.Context, id string) (*models.SpecificEvent, error) {
	if s, ok := f.sessions[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeSessionReader) CountSpecificByGeneralEvent(ctx context.Context, generalEventID string) (int, error) {
	return 0, nil
}

type fakePersonReader struct {
	people map[string]models.Person
}

func (f *fakePersonReader) FindByID(ctx context.Context, id string) (*models.Person, error) {
	if p, ok := f.people[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

type fakeParticipantLister struct{}

func (fakeParticipantLister) ListActiveByGeneralEvent(ctx context.Context, generalEventID string) ([]models.EventParticipant, error) {
	return nil, nil
}

func newAttendanceHandler() *AttendanceHandler {
	repo := &fakeAttendanceRepo{records: make(map[string]models.AttendanceRecord)}
	sessions := &fakeSessionReader{sessions: map[string]models.SpecificEvent{
		"ses-1": {ID: "ses-1", GeneralEventID: "gen-1", StartTime: "09:00", ToleranceMinutes: 15},
	}}
	people := &fakePersonReader{people: map[string]models.Person{
		"per-1": {ID: "per-1", FullName: "Ana Torres"},
	}}
	svc := service.NewAttendanceService(repo, sessions, people, fakeParticipantLister{}, validator.New(), zap.NewNop())
	return NewAttendanceHandler(svc, nil, nil)
}

func TestAttendanceHandlerRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAttendanceHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := `{"session_id":"ses-1","person_id":"per-1"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/asistencias", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var envelope struct {
		Data models.AttendanceRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "ses-1", envelope.Data.SpecificEventID)
	assert.False(t, envelope.Data.RecordedAt.IsZero())
}

func TestAttendanceHandlerRegisterInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAttendanceHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/asistencias", strings.NewReader("{no es json"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandlerRegisterUnknownSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAttendanceHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := `{"session_id":"missing","person_id":"per-1"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/asistencias", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandlerRegisterDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAttendanceHandler()

	register := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		body := `{"session_id":"ses-1","person_id":"per-1"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/asistencias", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		handler.Register(c)
		return rec
	}

	first := register()
	assert.Equal(t, http.StatusCreated, first.Code)

	second := register()
	assert.Equal(t, http.StatusConflict, second.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &envelope))
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestAttendanceHandlerReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAttendanceHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/eventos/gen-1/reporte", nil)
	c.Params = gin.Params{{Key: "id", Value: "gen-1"}}

	handler.Report(c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
