package models

import "time"

// AttendanceStatus classifies one person's arrival for one session.
type AttendanceStatus string

// Possible attendance statuses. Registration only ever produces PRESENT or
// LATE; ABSENT comes from the end-of-session sweep and EXCUSED from manual
// justification.
const (
	AttendanceStatusPresent AttendanceStatus = "PRESENT"
	AttendanceStatusLate    AttendanceStatus = "LATE"
	AttendanceStatusAbsent  AttendanceStatus = "ABSENT"
	AttendanceStatusExcused AttendanceStatus = "EXCUSED"
)

// Valid reports whether the status is a known value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusLate, AttendanceStatusAbsent, AttendanceStatusExcused:
		return true
	}
	return false
}

// AttendanceRecord is the single permanent record of one person's arrival
// status for one session. At most one record exists per (session, person)
// pair; it is never mutated after registration.
type AttendanceRecord struct {
	ID              string           `db:"id" json:"id"`
	SpecificEventID string           `db:"specific_event_id" json:"specific_event_id"`
	PersonID        string           `db:"person_id" json:"person_id"`
	RecordedAt      time.Time        `db:"recorded_at" json:"recorded_at"`
	Status          AttendanceStatus `db:"status" json:"status"`
	Remark          *string          `db:"remark" json:"remark,omitempty"`
	Latitude        *float64         `db:"latitude" json:"latitude,omitempty"`
	Longitude       *float64         `db:"longitude" json:"longitude,omitempty"`
}

// PersonAttendanceSummary aggregates one person's attendance across every
// session of a general event.
type PersonAttendanceSummary struct {
	PersonID      string  `json:"person_id"`
	FullName      string  `json:"full_name"`
	StudentCode   *string `json:"student_code,omitempty"`
	TotalSessions int     `json:"total_sessions"`
	Present       int     `json:"present"`
	Late          int     `json:"late"`
	Absent        int     `json:"absent"`
	Excused       int     `json:"excused"`
	Percentage    float64 `json:"percentage"`
}
