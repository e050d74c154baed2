package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeoNarD1812/backendpruebas/internal/service"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
	"github.com/LeoNarD1812/backendpruebas/pkg/response"
)

// EventHandler exposes general event and session endpoints.
type EventHandler struct {
	events *service.EventService
}

// NewEventHandler constructs EventHandler.
func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// ListGeneral godoc
// @Summary List general events
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /eventos [get]
func (h *EventHandler) ListGeneral(c *gin.Context) {
	events, err := h.events.ListGeneral(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// GetGeneral godoc
// @Summary Get general event
// @Tags Events
// @Produce json
// @Param id path string true "General event ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /eventos/{id} [get]
func (h *EventHandler) GetGeneral(c *gin.Context) {
	event, err := h.events.GetGeneral(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// CreateGeneral godoc
// @Summary Create general event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body service.CreateGeneralEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /eventos [post]
func (h *EventHandler) CreateGeneral(c *gin.Context) {
	var req service.CreateGeneralEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.events.CreateGeneral(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// ListSessions godoc
// @Summary List sessions of a general event
// @Tags Events
// @Produce json
// @Param id path string true "General event ID"
// @Success 200 {object} response.Envelope
// @Router /eventos/{id}/sesiones [get]
func (h *EventHandler) ListSessions(c *gin.Context) {
	sessions, err := h.events.ListSessions(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}

// GetSession godoc
// @Summary Get session
// @Tags Events
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sesiones/{id} [get]
func (h *EventHandler) GetSession(c *gin.Context) {
	session, err := h.events.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// CreateSession godoc
// @Summary Create session
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body service.CreateSessionRequest true "Session payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sesiones [post]
func (h *EventHandler) CreateSession(c *gin.Context) {
	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.events.CreateSession(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}
