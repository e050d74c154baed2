package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/LeoNarD1812/backendpruebas/internal/middleware"
	"github.com/LeoNarD1812/backendpruebas/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
