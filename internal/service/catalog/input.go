package catalog

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

const (
	maxTitleLength   = 200
	maxAuthorLength  = 100
	maxEditionLength = 50
	maxQueryLen      = maxTitleLength

	DefaultPageSize = 20
	MaxPageSize     = 100
)

var isbnPattern = regexp.MustCompile(`^[0-9-]{10,17}$`)

// TextbookFields are the owner-editable attributes of a textbook.
type TextbookFields struct {
	Title     string
	Author    *string
	ISBN      *string
	Edition   *string
	Condition *domain.TextbookCondition
	PhotoURL  *string
}

func (f TextbookFields) validate() []domain.FieldError {
	var errs []domain.FieldError

	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if f.Author != nil && utf8.RuneCountInString(strings.TrimSpace(*f.Author)) > maxAuthorLength {
		errs = append(errs, domain.FieldError{Field: "author", Message: "max 100 characters"})
	}
	if isbn := trimOrNil(f.ISBN); isbn != nil && !isbnPattern.MatchString(*isbn) {
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "must be 10-17 digits or dashes"})
	}
	if f.Edition != nil && utf8.RuneCountInString(strings.TrimSpace(*f.Edition)) > maxEditionLength {
		errs = append(errs, domain.FieldError{Field: "edition", Message: "max 50 characters"})
	}
	if f.Condition != nil && !f.Condition.IsValid() {
		errs = append(errs, domain.FieldError{Field: "condition", Message: "invalid value"})
	}
	return errs
}

// normalized trims text fields and turns blank optional fields into nil.
func (f TextbookFields) normalized() TextbookFields {
	return TextbookFields{
		Title:     strings.TrimSpace(f.Title),
		Author:    trimOrNil(f.Author),
		ISBN:      trimOrNil(f.ISBN),
		Edition:   trimOrNil(f.Edition),
		Condition: f.Condition,
		PhotoURL:  trimOrNil(f.PhotoURL),
	}
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// CreateTextbookInput holds the parameters for listing a new textbook.
type CreateTextbookInput struct {
	TextbookFields
}

// Validate checks all fields and collects all errors.
func (i CreateTextbookInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTextbookInput holds the parameters for editing a textbook.
type UpdateTextbookInput struct {
	ID uuid.UUID
	TextbookFields
}

// Validate checks all fields and collects all errors.
func (i UpdateTextbookInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, i.validate()...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListLibraryInput holds the filters for browsing the school library.
type ListLibraryInput struct {
	Status    *domain.TextbookStatus
	Condition *domain.TextbookCondition
	Query     string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListLibraryInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Condition != nil && !i.Condition.IsValid() {
		errs = append(errs, domain.FieldError{Field: "condition", Message: "invalid value"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Query)) > maxQueryLen {
		errs = append(errs, domain.FieldError{Field: "q", Message: "too long"})
	}
	if i.Limit < 0 || i.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
