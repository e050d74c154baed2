package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
)

// ErrDuplicateRecord signals that an attendance record already exists for
// the (session, person) pair.
var ErrDuplicateRecord = fmt.Errorf("attendance record already exists")

// AttendanceRepository handles persistence of attendance records.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// FindByPair returns the record for (session, person), or sql.ErrNoRows.
func (r *AttendanceRepository) FindByPair(ctx context.Context, sessionID, personID string) (*models.AttendanceRecord, error) {
	const query = `SELECT id, specific_event_id, person_id, recorded_at, status, remark, latitude, longitude
        FROM attendance_records WHERE specific_event_id = $1 AND person_id = $2`
	var record models.AttendanceRecord
	if err := r.db.GetContext(ctx, &record, query, sessionID, personID); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a new attendance record. The unique constraint on
// (specific_event_id, person_id) turns a lost duplicate race into
// ErrDuplicateRecord instead of a second row.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	const query = `INSERT INTO attendance_records (id, specific_event_id, person_id, recorded_at, status, remark, latitude, longitude)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (specific_event_id, person_id) DO NOTHING
        RETURNING id, specific_event_id, person_id, recorded_at, status, remark, latitude, longitude`
	var stored models.AttendanceRecord
	err := r.db.GetContext(ctx, &stored, query,
		record.ID, record.SpecificEventID, record.PersonID, record.RecordedAt,
		record.Status, record.Remark, record.Latitude, record.Longitude)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("create attendance record: %w", err)
	}
	return &stored, nil
}

// ListBySpecificEvent returns the records of a session, optionally
// narrowed to one status. An empty status means no filter.
func (r *AttendanceRepository) ListBySpecificEvent(ctx context.Context, sessionID string, status models.AttendanceStatus) ([]models.AttendanceRecord, error) {
	query := `SELECT id, specific_event_id, person_id, recorded_at, status, remark, latitude, longitude
        FROM attendance_records WHERE specific_event_id = $1`
	args := []interface{}{sessionID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY recorded_at ASC`
	var records []models.AttendanceRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list session attendance: %w", err)
	}
	return records, nil
}

// ListByPerson returns every record of a person.
func (r *AttendanceRepository) ListByPerson(ctx context.Context, personID string) ([]models.AttendanceRecord, error) {
	const query = `SELECT id, specific_event_id, person_id, recorded_at, status, remark, latitude, longitude
        FROM attendance_records WHERE person_id = $1 ORDER BY recorded_at ASC`
	var records []models.AttendanceRecord
	if err := r.db.SelectContext(ctx, &records, query, personID); err != nil {
		return nil, fmt.Errorf("list person attendance: %w", err)
	}
	return records, nil
}

// CountByPersonEventAndStatus counts a person's records with the given
// status across the sessions of a general event.
func (r *AttendanceRepository) CountByPersonEventAndStatus(ctx context.Context, personID, generalEventID string, status models.AttendanceStatus) (int, error) {
	const query = `SELECT COUNT(*)
        FROM attendance_records ar
        JOIN specific_events se ON se.id = ar.specific_event_id
        WHERE ar.person_id = $1 AND se.general_event_id = $2 AND ar.status = $3`
	var total int
	if err := r.db.GetContext(ctx, &total, query, personID, generalEventID, status); err != nil {
		return 0, fmt.Errorf("count attendance by status: %w", err)
	}
	return total, nil
}

// InsertAbsentees marks every active participant of the session's general
// event who never registered as ABSENT, in one statement. The ON CONFLICT
// clause guarantees the sweep can never clobber a real registration.
func (r *AttendanceRepository) InsertAbsentees(ctx context.Context, sessionID string, recordedAt time.Time) (int64, error) {
	const query = `INSERT INTO attendance_records (id, specific_event_id, person_id, recorded_at, status)
        SELECT gen_random_uuid(), se.id, gm.person_id, $2, $3
        FROM specific_events se
        JOIN small_groups sg ON sg.general_event_id = se.general_event_id
        JOIN group_memberships gm ON gm.small_group_id = sg.id AND gm.status = $4
        WHERE se.id = $1
        ON CONFLICT (specific_event_id, person_id) DO NOTHING`
	result, err := r.db.ExecContext(ctx, query, sessionID, recordedAt,
		models.AttendanceStatusAbsent, models.MembershipStatusActive)
	if err != nil {
		return 0, fmt.Errorf("insert absentees: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("insert absentees rows affected: %w", err)
	}
	return inserted, nil
}
