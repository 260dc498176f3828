package registry

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

// AddStudentInput holds the parameters for one registry entry.
type AddStudentInput struct {
	SchoolID     uuid.UUID
	StudentIDNum string
	FirstName    string
	LastName     string
	Email        string
}

// Validate checks all fields and collects all errors.
func (i AddStudentInput) Validate() error {
	if errs := i.fieldErrors(""); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i AddStudentInput) fieldErrors(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	if i.SchoolID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: prefix + "school_id", Message: "required"})
	}
	if strings.TrimSpace(i.StudentIDNum) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "student_id_num", Message: "required"})
	}
	if strings.TrimSpace(i.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "first_name", Message: "required"})
	}
	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "email", Message: "required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: prefix + "email", Message: "invalid email"})
	}
	return errs
}

// ImportStudentsInput holds a batch of registry entries.
type ImportStudentsInput struct {
	Students []AddStudentInput
}

// Validate checks every entry and reports errors with their row index.
func (i ImportStudentsInput) Validate() error {
	if len(i.Students) == 0 {
		return domain.NewValidationError("students", "at least one student required")
	}
	if len(i.Students) > maxImportBatch {
		return domain.NewValidationError("students", fmt.Sprintf("at most %d students per import", maxImportBatch))
	}

	var errs []domain.FieldError
	for n, s := range i.Students {
		errs = append(errs, s.fieldErrors(fmt.Sprintf("students[%d].", n))...)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
