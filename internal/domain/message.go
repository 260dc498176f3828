package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry of the append-only thread attached to a request.
type Message struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	FromID    uuid.UUID
	Kind      MessageKind
	Body      string
	CreatedAt time.Time
}
