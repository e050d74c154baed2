package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
)

type mockReportProvider struct {
	summaries []models.PersonAttendanceSummary
}

func (m *mockReportProvider) Report(ctx context.Context, generalEventID string) ([]models.PersonAttendanceSummary, error) {
	return m.summaries, nil
}

type mockGeneralEventReader struct {
	events map[string]models.GeneralEvent
}

func (m *mockGeneralEventReader) FindGeneralByID(ctx context.Context, id string) (*models.GeneralEvent, error) {
	if e, ok := m.events[id]; ok {
		return &e, nil
	}
	return nil, sql.ErrNoRows
}

func newExportFixture() *ExportService {
	code := "S001"
	reports := &mockReportProvider{summaries: []models.PersonAttendanceSummary{
		{PersonID: "per1", FullName: "Ana Torres", StudentCode: &code, TotalSessions: 4, Present: 3, Late: 1, Percentage: 100},
		{PersonID: "per2", FullName: "Luis Vega", TotalSessions: 4, Present: 2, Absent: 2, Percentage: 50},
	}}
	events := &mockGeneralEventReader{events: map[string]models.GeneralEvent{
		"gen1": {ID: "gen1", Name: "Congreso 2025"},
	}}
	return NewExportService(reports, events, zap.NewNop())
}

func TestExportReportCSV(t *testing.T) {
	svc := newExportFixture()

	content, filename, err := svc.ReportCSV(context.Background(), "gen1")
	require.NoError(t, err)
	assert.Equal(t, "reporte_asistencia_gen1.csv", filename)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Participante")
	assert.Contains(t, lines[1], "Ana Torres")
	assert.Contains(t, lines[1], "100.00")
	assert.Contains(t, lines[2], "Luis Vega")
	assert.Contains(t, lines[2], "50.00")
}

func TestExportReportPDF(t *testing.T) {
	svc := newExportFixture()

	content, filename, err := svc.ReportPDF(context.Background(), "gen1")
	require.NoError(t, err)
	assert.Equal(t, "reporte_asistencia_gen1.pdf", filename)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestExportReportEventNotFound(t *testing.T) {
	svc := newExportFixture()

	_, _, err := svc.ReportCSV(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestExportReportRequiresEventID(t *testing.T) {
	svc := newExportFixture()

	_, _, err := svc.ReportPDF(context.Background(), "")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}
