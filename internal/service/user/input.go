package user

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

// CreateProfileInput holds parameters for completing sign-up.
type CreateProfileInput struct {
	Email          string
	FirstName      string
	LastName       string
	SchoolID       uuid.UUID
	GraduationYear *int
}

// Validate validates the create profile input.
func (i CreateProfileInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if strings.TrimSpace(i.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "required"})
	} else if len(i.FirstName) > 100 {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}

	if len(i.LastName) > 100 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if i.SchoolID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "school_id", Message: "required"})
	}

	if i.GraduationYear != nil && (*i.GraduationYear < 2000 || *i.GraduationYear > 2100) {
		errs = append(errs, domain.FieldError{Field: "graduation_year", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds the editable profile fields. Nil fields keep
// their current value.
type UpdateProfileInput struct {
	FirstName      *string
	LastName       *string
	SchoolID       *uuid.UUID
	GraduationYear *int
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstName != nil {
		if strings.TrimSpace(*i.FirstName) == "" {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "required"})
		} else if len(*i.FirstName) > 100 {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
		}
	}

	if i.LastName != nil && len(*i.LastName) > 100 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if i.SchoolID != nil && *i.SchoolID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "school_id", Message: "required"})
	}

	if i.GraduationYear != nil && (*i.GraduationYear < 2000 || *i.GraduationYear > 2100) {
		errs = append(errs, domain.FieldError{Field: "graduation_year", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListUsersInput holds parameters for the admin user listing.
type ListUsersInput struct {
	SchoolID *uuid.UUID
	Limit    int
	Offset   int
}

// Validate validates the list users input.
func (i ListUsersInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
