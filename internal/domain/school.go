package domain

import (
	"time"

	"github.com/google/uuid"
)

// School groups students, textbooks and pickup locations. Domain is the
// email domain of its students.
type School struct {
	ID        uuid.UUID
	Name      string
	Domain    string
	CreatedAt time.Time
}
