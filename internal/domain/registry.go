package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegistryStudent is an entry of the student eligibility registry. Only
// active entries make an email address eligible to sign up.
type RegistryStudent struct {
	ID           uuid.UUID
	SchoolID     uuid.UUID
	StudentIDNum string
	FirstName    string
	LastName     string
	Email        string
	IsActive     bool
	CreatedBy    *uuid.UUID
	CreatedAt    time.Time
}
