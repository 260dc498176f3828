package user

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

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return p, nil
}

// CreateProfile completes sign-up for the authenticated user. The email
// must be an active entry of the student registry.
func (s *Service) CreateProfile(ctx context.Context, input CreateProfileInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	eligible, err := s.registry.IsEligible(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user.CreateProfile: %w", err)
	}
	if !eligible {
		return nil, domain.NewValidationError("email", "not found in student registry")
	}

	p := &domain.Profile{
		ID:             userID,
		Email:          email,
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		SchoolID:       input.SchoolID,
		GraduationYear: input.GraduationYear,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.users.CreateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("user.CreateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile created",
		slog.String("user_id", userID.String()),
		slog.String("school_id", input.SchoolID.String()))

	return p, nil
}

// UpdateProfile edits the authenticated user's name, school and
// graduation year.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	if input.FirstName != nil {
		p.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		p.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.SchoolID != nil {
		p.SchoolID = *input.SchoolID
	}
	if input.GraduationYear != nil {
		p.GraduationYear = input.GraduationYear
	}

	if err := s.users.UpdateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))
	return p, nil
}

// RoleOf returns the role of userID. Users without a role row are students.
func (s *Service) RoleOf(ctx context.Context, userID uuid.UUID) (domain.UserRole, error) {
	role, err := s.users.GetRole(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("user.RoleOf: %w", err)
	}
	return role, nil
}

// HasRole reports whether userID holds role.
func (s *Service) HasRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) (bool, error) {
	got, err := s.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}
	return got == role, nil
}
