package domain

import "github.com/google/uuid"

// TextbookFilter narrows library listings.
type TextbookFilter struct {
	SchoolID  *uuid.UUID
	OwnerID   *uuid.UUID
	Status    *TextbookStatus
	Condition *TextbookCondition
	// Query matches title or isbn as a case-insensitive substring.
	Query  string
	Limit  int
	Offset int
}

// RequestFilter narrows request listings. Exactly one of BorrowerID or
// OwnerID is expected to be set.
type RequestFilter struct {
	BorrowerID *uuid.UUID
	OwnerID    *uuid.UUID
	Status     *RequestStatus
}
