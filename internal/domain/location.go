package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is a named pickup spot inside a school.
type Location struct {
	ID        uuid.UUID
	SchoolID  uuid.UUID
	Name      string
	Label     *string
	CreatedAt time.Time
}
