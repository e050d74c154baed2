package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
)

type accessLister interface {
	ListByUser(ctx context.Context, username string) ([]models.AccessEntry, error)
}

// Frontend paths with special classification behaviour.
const (
	dashboardPath        = "/dashboard"
	profileEditPath      = "/personas/my-profile"
	attendanceReportPath = "/asistencias/reporte"
	genericReportsPath   = "/reportes"
)

// adminPathKeywords route an access entry into the administration group.
var adminPathKeywords = []string{
	"matriculas", "sedes", "facultades", "programas",
	"usuarios", "users", "roles", "configuracion", "periodos",
}

// eventPathKeywords collect an access entry into the events buffer.
var eventPathKeywords = []string{"eventos", "grupos", "sesiones", "participantes"}

// eventPathPriority fixes the order of event children regardless of input
// order; unknown paths sort last, stable among themselves.
var eventPathPriority = map[string]int{
	"/eventos/generales":    1,
	"/eventos/especificos":  2,
	"/grupos/pequenos":      3,
	"/grupos/participantes": 4,
	genericReportsPath:      5,
}

// MenuService turns a user's flat access list into navigation menus. The
// composition itself is pure; per-user results are cached when a cache
// service is wired.
type MenuService struct {
	accesses accessLister
	cache    *CacheService
	logger   *zap.Logger
}

// NewMenuService constructs the menu service.
func NewMenuService(accesses accessLister, cache *CacheService, logger *zap.Logger) *MenuService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuService{accesses: accesses, cache: cache, logger: logger}
}

// WebMenuForUser composes the web navigation menu for a username.
func (s *MenuService) WebMenuForUser(ctx context.Context, username string) ([]models.MenuGroup, error) {
	return s.menuForUser(ctx, username, "web", s.WebMenu)
}

// MobileMenuForUser composes the mobile navigation menu for a username.
func (s *MenuService) MobileMenuForUser(ctx context.Context, username string) ([]models.MenuGroup, error) {
	return s.menuForUser(ctx, username, "movil", s.MobileMenu)
}

func (s *MenuService) menuForUser(ctx context.Context, username, variant string, compose func([]models.AccessEntry) []models.MenuGroup) ([]models.MenuGroup, error) {
	if username == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "username is required")
	}

	cacheKey := "menu:" + variant + ":" + username
	var cached []models.MenuGroup
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	entries, err := s.accesses.ListByUser(ctx, username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load accesses")
	}

	menu := compose(entries)
	if err := s.cache.Set(ctx, cacheKey, menu); err != nil {
		s.logger.Warn("failed to cache menu", zap.String("key", cacheKey), zap.Error(err))
	}
	return menu, nil
}

// InvalidateUser drops any cached menus for a username.
func (s *MenuService) InvalidateUser(ctx context.Context, username string) error {
	return s.cache.Invalidate(ctx, "menu:*:"+username)
}

// WebMenu classifies access entries into fixed navigation groups. Rules
// are evaluated in priority order per entry, first match wins, using
// case-insensitive substring tests on path and display name. Entries that
// match no rule become standalone groups carrying the entry's own ID,
// which may interleave with the fixed IDs 1-5 in the final ordering.
func (s *MenuService) WebMenu(entries []models.AccessEntry) []models.MenuGroup {
	dashboard := newMenuGroup(1, "Dashboard", "fa-tachometer-alt", dashboardPath)
	administration := newMenuGroup(2, "Administración", "fa-cog", "")
	events := newMenuGroup(3, "Eventos", "fa-calendar-alt", "")
	attendance := newMenuGroup(4, "Asistencia", "fa-user-check", "")
	profile := newMenuGroup(5, "Mi Perfil", "fa-user-circle", "")

	var fallbacks []*models.MenuGroup
	var eventItems []models.MenuItem

	for _, entry := range entries {
		path := strings.ToLower(entry.URL)
		name := strings.ToLower(entry.Name)

		switch {
		case strings.Contains(path, "dashboard") || strings.Contains(name, "dashboard"):
			appendMenuItem(dashboard, entry, entry.Name)
		case entry.URL == profileEditPath:
			appendMenuItem(profile, entry, "Editar Perfil")
		case containsAny(path, adminPathKeywords) || strings.Contains(name, "admin"):
			appendMenuItem(administration, entry, entry.Name)
		case entry.URL == attendanceReportPath:
			appendMenuItem(attendance, entry, "Reporte Asistencia")
		case strings.Contains(path, "asistencia") || strings.Contains(name, "asistencia"):
			appendMenuItem(attendance, entry, entry.Name)
		case entry.URL == genericReportsPath || containsAny(path, eventPathKeywords) || strings.Contains(name, "evento"):
			eventItems = append(eventItems, models.MenuItem{ID: entry.ID, Label: entry.Name, Path: entry.URL, Icon: entry.Icon})
		default:
			fallbacks = append(fallbacks, newMenuGroup(entry.ID, entry.Name, entry.Icon, entry.URL))
		}
	}

	sort.SliceStable(eventItems, func(i, j int) bool {
		return eventPriority(eventItems[i].Path) < eventPriority(eventItems[j].Path)
	})
	events.Items = append(events.Items, eventItems...)

	groups := make([]models.MenuGroup, 0, 5+len(fallbacks))
	for _, group := range []*models.MenuGroup{dashboard, administration, events, attendance, profile} {
		if group.Path != "" || len(group.Items) > 0 {
			groups = append(groups, *group)
		}
	}
	for _, group := range fallbacks {
		if group.Path != "" || len(group.Items) > 0 {
			groups = append(groups, *group)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups
}

// MobileMenu maps accesses 1:1 into flat groups, in input order, dropping
// anything under the dashboard path. The prefix match is case-sensitive.
func (s *MenuService) MobileMenu(entries []models.AccessEntry) []models.MenuGroup {
	groups := make([]models.MenuGroup, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(strings.TrimSpace(entry.URL), dashboardPath) {
			continue
		}
		groups = append(groups, models.MenuGroup{
			ID:    entry.ID,
			Label: entry.Name,
			Icon:  entry.Icon,
			Path:  entry.URL,
			Items: []models.MenuItem{},
		})
	}
	return groups
}

func newMenuGroup(id int64, label, icon, path string) *models.MenuGroup {
	return &models.MenuGroup{
		ID:          id,
		Label:       label,
		Icon:        icon,
		Path:        path,
		Collapsible: path == "",
		Items:       []models.MenuItem{},
	}
}

// appendMenuItem adds the entry as a child when the group is collapsible;
// direct-navigation groups never receive children.
func appendMenuItem(group *models.MenuGroup, entry models.AccessEntry, label string) {
	if group.Path != "" {
		return
	}
	group.Items = append(group.Items, models.MenuItem{
		ID:    entry.ID,
		Label: label,
		Path:  entry.URL,
		Icon:  entry.Icon,
	})
}

func containsAny(value string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}

func eventPriority(path string) int {
	if priority, ok := eventPathPriority[path]; ok {
		return priority
	}
	return 99
}
