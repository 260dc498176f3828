package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/pkg/ctxutil"
)

const maxImportBatch = 1000

// AddStudent registers one student (admin only).
func (s *Service) AddStudent(ctx context.Context, input AddStudentInput) (*domain.RegistryStudent, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	st := toStudent(input, adminID, time.Now().UTC())
	if err := s.students.Create(ctx, &st); err != nil {
		return nil, fmt.Errorf("registry.AddStudent: %w", err)
	}

	s.log.InfoContext(ctx, "student registered",
		slog.String("student_id", st.ID.String()),
		slog.String("school_id", st.SchoolID.String()),
	)
	return &st, nil
}

// ImportStudents registers a batch of students, skipping ones already
// present. It returns how many were inserted (admin only).
func (s *Service) ImportStudents(ctx context.Context, input ImportStudentsInput) (int, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return 0, err
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	batch := make([]domain.RegistryStudent, len(input.Students))
	for i, in := range input.Students {
		batch[i] = toStudent(in, adminID, now)
	}

	inserted, err := s.students.BulkInsert(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("registry.ImportStudents: %w", err)
	}

	s.log.InfoContext(ctx, "students imported",
		slog.Int("submitted", len(batch)),
		slog.Int("inserted", inserted),
	)
	return inserted, nil
}

// ListStudents returns the registry of a school (admin only).
func (s *Service) ListStudents(ctx context.Context, schoolID uuid.UUID) ([]domain.RegistryStudent, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	list, err := s.students.List(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("registry.ListStudents: %w", err)
	}
	return list, nil
}

// DeactivateStudent revokes eligibility of a registry entry (admin only).
func (s *Service) DeactivateStudent(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := s.students.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("registry.DeactivateStudent: %w", err)
	}

	s.log.InfoContext(ctx, "student deactivated", slog.String("student_id", id.String()))
	return nil
}

// ReactivateStudent restores eligibility of a deactivated registry entry
// (admin only).
func (s *Service) ReactivateStudent(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := s.students.Reactivate(ctx, id); err != nil {
		return fmt.Errorf("registry.ReactivateStudent: %w", err)
	}

	s.log.InfoContext(ctx, "student reactivated", slog.String("student_id", id.String()))
	return nil
}

// IsEligible reports whether email belongs to an active registry entry.
func (s *Service) IsEligible(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, nil
	}

	ok, err := s.students.IsEligible(ctx, email)
	if err != nil {
		return false, fmt.Errorf("registry.IsEligible: %w", err)
	}
	return ok, nil
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

func toStudent(in AddStudentInput, createdBy uuid.UUID, now time.Time) domain.RegistryStudent {
	return domain.RegistryStudent{
		ID:           uuid.New(),
		SchoolID:     in.SchoolID,
		StudentIDNum: strings.TrimSpace(in.StudentIDNum),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		IsActive:     true,
		CreatedBy:    &createdBy,
		CreatedAt:    now,
	}
}
