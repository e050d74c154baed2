package models

import "time"

// PersonKind distinguishes institutional people from external guests.
type PersonKind string

// Possible person kinds.
const (
	PersonKindStudent PersonKind = "STUDENT"
	PersonKindGuest   PersonKind = "GUEST"
)

// Valid reports whether the kind is a known value.
func (k PersonKind) Valid() bool {
	switch k {
	case PersonKindStudent, PersonKindGuest:
		return true
	}
	return false
}

// Person is anyone who can belong to a small group and register attendance.
type Person struct {
	ID                 string     `db:"id" json:"id"`
	FullName           string     `db:"full_name" json:"full_name"`
	DocumentNumber     string     `db:"document_number" json:"document_number"`
	InstitutionalEmail string     `db:"institutional_email" json:"institutional_email"`
	PersonalEmail      *string    `db:"personal_email" json:"personal_email,omitempty"`
	StudentCode        *string    `db:"student_code" json:"student_code,omitempty"`
	Kind               PersonKind `db:"kind" json:"kind"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}

// PersonFilter provides filters for listing people.
type PersonFilter struct {
	Kind     PersonKind
	Search   string
	Page     int
	PageSize int
}
