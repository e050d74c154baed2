package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeoNarD1812/backendpruebas/internal/service"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
	"github.com/LeoNarD1812/backendpruebas/pkg/response"
)

// MenuHandler exposes navigation menu endpoints.
type MenuHandler struct {
	menus *service.MenuService
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(menus *service.MenuService) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// Web godoc
// @Summary Web navigation menu
// @Description Grouped menu for the authenticated user's web frontend
// @Tags Menu
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /menu/web [get]
func (h *MenuHandler) Web(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	menu, err := h.menus.WebMenuForUser(c.Request.Context(), claims.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, menu, nil)
}

// Mobile godoc
// @Summary Mobile navigation menu
// @Description Flat menu for the authenticated user's mobile frontend
// @Tags Menu
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /menu/movil [get]
func (h *MenuHandler) Mobile(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	menu, err := h.menus.MobileMenuForUser(c.Request.Context(), claims.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, menu, nil)
}
