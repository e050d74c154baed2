package models

import "time"

// MembershipStatus represents the lifecycle of a group membership.
type MembershipStatus string

// Possible membership statuses. Removal never deletes a row, it flips the
// status to INACTIVE so enrollment history stays queryable.
const (
	MembershipStatusActive   MembershipStatus = "ACTIVE"
	MembershipStatusInactive MembershipStatus = "INACTIVE"
)

// SmallGroup is a capacity-bounded sub-team within a general event.
type SmallGroup struct {
	ID             string    `db:"id" json:"id"`
	GeneralEventID string    `db:"general_event_id" json:"general_event_id"`
	Name           string    `db:"name" json:"name"`
	LeaderID       string    `db:"leader_id" json:"leader_id"`
	Capacity       int       `db:"capacity" json:"capacity"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// GroupMembership links a person to a small group. At most one ACTIVE
// membership may exist per (group, person) pair at any time.
type GroupMembership struct {
	ID           string           `db:"id" json:"id"`
	SmallGroupID string           `db:"small_group_id" json:"small_group_id"`
	PersonID     string           `db:"person_id" json:"person_id"`
	Status       MembershipStatus `db:"status" json:"status"`
	JoinedAt     time.Time        `db:"joined_at" json:"joined_at"`
	RemovedAt    *time.Time       `db:"removed_at" json:"removed_at,omitempty"`
}

// GroupMembershipDetail enriches GroupMembership with person info.
type GroupMembershipDetail struct {
	GroupMembership
	FullName    string  `db:"full_name" json:"full_name"`
	StudentCode *string `db:"student_code" json:"student_code,omitempty"`
}

// GroupRoster is a group's membership listing together with the ACTIVE
// head count that the capacity check operates on.
type GroupRoster struct {
	Members     []GroupMembershipDetail `json:"members"`
	ActiveCount int                     `json:"active_count"`
}

// EventParticipant is one active group member of a general event, as
// returned by the membership listing used for report aggregation.
type EventParticipant struct {
	PersonID    string  `db:"person_id" json:"person_id"`
	FullName    string  `db:"full_name" json:"full_name"`
	StudentCode *string `db:"student_code" json:"student_code,omitempty"`
}
