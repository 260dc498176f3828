package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the directory entry of a user.
type Profile struct {
	ID             uuid.UUID
	Email          string
	FirstName      string
	LastName       string
	SchoolID       uuid.UUID
	GraduationYear *int
	CreatedAt      time.Time
}

// FullName joins first and last name.
func (p *Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ProfileWithRole pairs a profile with its highest role, for admin listings.
type ProfileWithRole struct {
	Profile
	Role UserRole
}
