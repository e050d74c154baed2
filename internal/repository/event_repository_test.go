package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
)

func newEventRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestEventRepositoryCreateGeneral(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO general_events")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	event := &models.GeneralEvent{Name: "Congreso 2025", ProgramID: "prog-1"}
	require.NoError(t, repo.CreateGeneral(context.Background(), event))
	require.NotEmpty(t, event.ID)
	require.False(t, event.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryFindSpecificByID(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	rows := sqlmock.NewRows([]string{"id", "general_event_id", "name", "date", "start_time", "tolerance_minutes", "created_at"}).
		AddRow("ses-1", "gen-1", "Sesión 1", time.Now(), "09:00", 15, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, general_event_id, name, date, start_time, tolerance_minutes")).
		WithArgs("ses-1").
		WillReturnRows(rows)

	session, err := repo.FindSpecificByID(context.Background(), "ses-1")
	require.NoError(t, err)
	require.Equal(t, "09:00", session.StartTime)
	require.Equal(t, 15, session.ToleranceMinutes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryCountSpecificByGeneralEvent(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM specific_events")).
		WithArgs("gen-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	total, err := repo.CountSpecificByGeneralEvent(context.Background(), "gen-1")
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListSpecificByGeneralEvent(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	rows := sqlmock.NewRows([]string{"id", "general_event_id", "name", "date", "start_time", "tolerance_minutes", "created_at"}).
		AddRow("ses-1", "gen-1", "Sesión 1", time.Now(), "09:00", 15, time.Now()).
		AddRow("ses-2", "gen-1", "Sesión 2", time.Now(), "14:00", 10, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM specific_events WHERE general_event_id")).
		WithArgs("gen-1").
		WillReturnRows(rows)

	sessions, err := repo.ListSpecificByGeneralEvent(context.Background(), "gen-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}
