package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/middleware"
	"github.com/LeoNarD1812/backendpruebas/internal/models"
	"github.com/LeoNarD1812/backendpruebas/internal/service"
)

type fakeAccessLister struct {
	entries []models.AccessEntry
}

func (f *fakeAccessLister) ListByUser(ctx context.Context, username string) ([]models.AccessEntry, error) {
	return f.entries, nil
}

func newMenuHandler(entries []models.AccessEntry) *MenuHandler {
	svc := service.NewMenuService(&fakeAccessLister{entries: entries}, nil, zap.NewNop())
	return NewMenuHandler(svc)
}

func TestMenuHandlerWebRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newMenuHandler(nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/menu/web", nil)

	handler.Web(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMenuHandlerWeb(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newMenuHandler([]models.AccessEntry{
		{ID: 1, Name: "Dashboard", URL: "/dashboard", Icon: "fa-home"},
		{ID: 2, Name: "Sedes", URL: "/sedes", Icon: "fa-building"},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/menu/web", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "usr1", Username: "ana"})

	handler.Web(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []models.MenuGroup `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "Dashboard", envelope.Data[0].Label)
	assert.Equal(t, "Administración", envelope.Data[1].Label)
}

func TestMenuHandlerMobile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newMenuHandler([]models.AccessEntry{
		{ID: 1, Name: "Dashboard", URL: "/dashboard"},
		{ID: 2, Name: "Eventos Generales", URL: "/eventos/generales"},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/menu/movil", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "usr1", Username: "ana"})

	handler.Mobile(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []models.MenuGroup `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "/eventos/generales", envelope.Data[0].Path)
}
