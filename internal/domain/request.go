package domain

import (
	"time"

	"github.com/google/uuid"
)

// Request is a borrower's ask for a textbook. Its Status only moves along
// the edges allowed by RequestStatus.CanTransitionTo.
type Request struct {
	ID           uuid.UUID
	BorrowerID   uuid.UUID
	LenderID     uuid.UUID
	TextbookID   uuid.UUID
	LocationID   *uuid.UUID
	Status       RequestStatus
	ProposedTime *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBorrower reports whether userID created the request.
func (r *Request) IsBorrower(userID uuid.UUID) bool {
	return r.BorrowerID == userID
}

// IsParticipant reports whether userID is the borrower or the lender.
// LenderID is the textbook owner when the request was created, so the
// lender keeps access after the book changes hands.
func (r *Request) IsParticipant(userID uuid.UUID) bool {
	return r.BorrowerID == userID || r.LenderID == userID
}

// Transition is a guarded status change: it applies only while the stored
// status still equals From.
type Transition struct {
	From RequestStatus
	To   RequestStatus
}

// Validate rejects edges that are not part of the request lifecycle.
func (t Transition) Validate() error {
	if !t.From.CanTransitionTo(t.To) {
		return &TransitionError{Entity: "request", From: t.From.String(), To: t.To.String()}
	}
	return nil
}
