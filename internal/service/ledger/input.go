package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

// CreateRequestInput holds the parameters for asking to borrow a textbook.
type CreateRequestInput struct {
	TextbookID   uuid.UUID
	LocationID   *uuid.UUID
	ProposedTime *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateRequestInput) Validate() error {
	var errs []domain.FieldError
	if i.TextbookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "textbook_id", Message: "required"})
	}
	if i.LocationID != nil && *i.LocationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "location_id", Message: "invalid"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput holds the parameters for approving a request.
type ApproveInput struct {
	RequestID  uuid.UUID
	LocationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ApproveInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.LocationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "location_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ConfirmPickupInput holds the parameters for confirming a pickup.
type ConfirmPickupInput struct {
	RequestID  uuid.UUID
	TextbookID uuid.UUID
	NewOwnerID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ConfirmPickupInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.TextbookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "textbook_id", Message: "required"})
	}
	if i.NewOwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "new_owner_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReturnInput holds the parameters for returning a borrowed textbook.
type ReturnInput struct {
	RequestID  uuid.UUID
	TextbookID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReturnInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.TextbookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "textbook_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
