package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeoNarD1812/backendpruebas/internal/service"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
	"github.com/LeoNarD1812/backendpruebas/pkg/response"
)

// ParticipantHandler exposes group membership endpoints.
type ParticipantHandler struct {
	participants *service.ParticipantService
}

// NewParticipantHandler constructs ParticipantHandler.
func NewParticipantHandler(participants *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participants: participants}
}

// Add godoc
// @Summary Enroll a participant
// @Description Add a person to a small group, enforcing capacity
// @Tags Participants
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param payload body object{person_id=string} true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /grupos/{id}/participantes [post]
func (h *ParticipantHandler) Add(c *gin.Context) {
	var payload struct {
		PersonID string `json:"person_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	membership, err := h.participants.Add(c.Request.Context(), c.Param("id"), payload.PersonID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, membership)
}

// Remove godoc
// @Summary Remove a participant
// @Description Soft-remove a membership, freeing one capacity slot
// @Tags Participants
// @Produce json
// @Param id path string true "Membership ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /participantes/{id} [delete]
func (h *ParticipantHandler) Remove(c *gin.Context) {
	if err := h.participants.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListByGroup godoc
// @Summary List group members
// @Description Group roster with the active head count
// @Tags Participants
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /grupos/{id}/participantes [get]
func (h *ParticipantHandler) ListByGroup(c *gin.Context) {
	roster, err := h.participants.ListByGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, nil)
}
