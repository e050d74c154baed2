package models

import "time"

// GeneralEvent is an umbrella event tied to a program. Sessions and small
// groups hang off it; it owns no attendance directly.
type GeneralEvent struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	ProgramID string    `db:"program_id" json:"program_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SpecificEvent is a single timed session within a general event. StartTime
// is a time-of-day in HH:MM format; arrivals within ToleranceMinutes of it
// still count as on time. Immutable once created.
type SpecificEvent struct {
	ID               string    `db:"id" json:"id"`
	GeneralEventID   string    `db:"general_event_id" json:"general_event_id"`
	Name             string    `db:"name" json:"name"`
	Date             time.Time `db:"date" json:"date"`
	StartTime        string    `db:"start_time" json:"start_time"`
	ToleranceMinutes int       `db:"tolerance_minutes" json:"tolerance_minutes"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
