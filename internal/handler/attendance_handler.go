package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeoNarD1812/backendpruebas/internal/service"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
	"github.com/LeoNarD1812/backendpruebas/pkg/response"
)

// AttendanceHandler exposes attendance endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
	sweep      *service.SweepService
	exports    *service.ExportService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService, sweep *service.SweepService, exports *service.ExportService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, sweep: sweep, exports: exports}
}

// Register godoc
// @Summary Register attendance
// @Description Record a person's arrival for a session
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.RegisterAttendanceRequest true "Attendance payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /asistencias [post]
func (h *AttendanceHandler) Register(c *gin.Context) {
	var req service.RegisterAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.attendance.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// ListBySession godoc
// @Summary List session attendance
// @Tags Attendance
// @Produce json
// @Param id path string true "Session ID"
// @Param status query string false "PRESENT, LATE, ABSENT or EXCUSED"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /sesiones/{id}/asistencias [get]
func (h *AttendanceHandler) ListBySession(c *gin.Context) {
	records, err := h.attendance.ListBySession(c.Request.Context(), c.Param("id"), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// ListByPerson godoc
// @Summary List person attendance
// @Tags Attendance
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} response.Envelope
// @Router /personas/{id}/asistencias [get]
func (h *AttendanceHandler) ListByPerson(c *gin.Context) {
	records, err := h.attendance.ListByPerson(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Report godoc
// @Summary Attendance report
// @Description Per-person attendance summary for a general event
// @Tags Attendance
// @Produce json
// @Param id path string true "General event ID"
// @Success 200 {object} response.Envelope
// @Router /eventos/{id}/reporte [get]
func (h *AttendanceHandler) Report(c *gin.Context) {
	summaries, err := h.attendance.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summaries, nil)
}

// ExportReport godoc
// @Summary Export attendance report
// @Description Download the report as CSV or PDF
// @Tags Attendance
// @Produce octet-stream
// @Param id path string true "General event ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /eventos/{id}/reporte/export [get]
func (h *AttendanceHandler) ExportReport(c *gin.Context) {
	eventID := c.Param("id")
	var (
		content  []byte
		filename string
		mime     string
		err      error
	)
	switch c.DefaultQuery("format", "csv") {
	case "pdf":
		content, filename, err = h.exports.ReportPDF(c.Request.Context(), eventID)
		mime = "application/pdf"
	case "csv":
		content, filename, err = h.exports.ReportCSV(c.Request.Context(), eventID)
		mime = "text/csv"
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unsupported export format"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, mime, content)
}

// CloseSession godoc
// @Summary Close a session
// @Description Enqueue the absence sweep that marks missing participants ABSENT
// @Tags Attendance
// @Produce json
// @Param id path string true "Session ID"
// @Success 202 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sesiones/{id}/cerrar [post]
func (h *AttendanceHandler) CloseSession(c *gin.Context) {
	if err := h.sweep.CloseSession(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, gin.H{"message": "absence sweep scheduled"}, nil)
}
