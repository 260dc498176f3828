package domain

import (
	"time"

	"github.com/google/uuid"
)

// Textbook is a physical book listed by its current owner.
type Textbook struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	SchoolID  *uuid.UUID
	Title     string
	Author    *string
	ISBN      *string
	Edition   *string
	Condition *TextbookCondition
	PhotoURL  *string
	Status    TextbookStatus
	CreatedAt time.Time
}

// IsOwnedBy reports whether userID is the current owner.
func (t *Textbook) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerID == userID
}

// IsAvailable reports whether new borrow requests may be created against the book.
func (t *Textbook) IsAvailable() bool {
	return t.Status == TextbookStatusAvailable
}

// TextbookSummary is the compact form embedded in request listings.
type TextbookSummary struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Title    string
	Author   *string
	PhotoURL *string
	Status   TextbookStatus
}

// Summary returns the compact form of t.
func (t *Textbook) Summary() TextbookSummary {
	return TextbookSummary{
		ID:       t.ID,
		OwnerID:  t.OwnerID,
		Title:    t.Title,
		Author:   t.Author,
		PhotoURL: t.PhotoURL,
		Status:   t.Status,
	}
}
