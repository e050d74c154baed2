package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
	"github.com/LeoNarD1812/backendpruebas/pkg/export"
)

type reportProvider interface {
	Report(ctx context.Context, generalEventID string) ([]models.PersonAttendanceSummary, error)
}

type generalEventReader interface {
	FindGeneralByID(ctx context.Context, id string) (*models.GeneralEvent, error)
}

// ExportService renders attendance reports as downloadable documents.
type ExportService struct {
	reports reportProvider
	events  generalEventReader
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(reports reportProvider, events generalEventReader, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		reports: reports,
		events:  events,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

var reportHeaders = []string{
	"Participante", "Código", "Sesiones", "Presente", "Tarde", "Ausente", "Justificado", "Porcentaje",
}

// ReportCSV renders a general event's attendance report as CSV bytes.
func (s *ExportService) ReportCSV(ctx context.Context, generalEventID string) ([]byte, string, error) {
	dataset, event, err := s.buildDataset(ctx, generalEventID)
	if err != nil {
		return nil, "", err
	}
	content, err := s.csv.Render(*dataset)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
	}
	return content, fmt.Sprintf("reporte_asistencia_%s.csv", event.ID), nil
}

// ReportPDF renders a general event's attendance report as PDF bytes.
func (s *ExportService) ReportPDF(ctx context.Context, generalEventID string) ([]byte, string, error) {
	dataset, event, err := s.buildDataset(ctx, generalEventID)
	if err != nil {
		return nil, "", err
	}
	content, err := s.pdf.Render(*dataset, "Reporte de Asistencia - "+event.Name)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
	}
	return content, fmt.Sprintf("reporte_asistencia_%s.pdf", event.ID), nil
}

func (s *ExportService) buildDataset(ctx context.Context, generalEventID string) (*export.Dataset, *models.GeneralEvent, error) {
	if generalEventID == "" {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "general event id is required")
	}

	event, err := s.events.FindGeneralByID(ctx, generalEventID)
	if err != nil {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "general event not found")
	}

	summaries, err := s.reports.Report(ctx, generalEventID)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]map[string]string, 0, len(summaries))
	for _, summary := range summaries {
		code := ""
		if summary.StudentCode != nil {
			code = *summary.StudentCode
		}
		rows = append(rows, map[string]string{
			"Participante": summary.FullName,
			"Código":       code,
			"Sesiones":     strconv.Itoa(summary.TotalSessions),
			"Presente":     strconv.Itoa(summary.Present),
			"Tarde":        strconv.Itoa(summary.Late),
			"Ausente":      strconv.Itoa(summary.Absent),
			"Justificado":  strconv.Itoa(summary.Excused),
			"Porcentaje":   fmt.Sprintf("%.2f", summary.Percentage),
		})
	}

	return &export.Dataset{Headers: reportHeaders, Rows: rows}, event, nil
}
