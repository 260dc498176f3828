// Package user implements profiles, roles and the admin user directory.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

//go:generate moq -out mocks_test.go . userRepo registry

// userRepo defines the profile and role directory needed by the user service.
type userRepo interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	CreateProfile(ctx context.Context, p *domain.Profile) error
	UpdateProfile(ctx context.Context, p *domain.Profile) error
	GetRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
	SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error
	List(ctx context.Context, schoolID *uuid.UUID, limit, offset int) ([]domain.ProfileWithRole, int, error)
}

// registry answers whether an email address may sign up.
type registry interface {
	IsEligible(ctx context.Context, email string) (bool, error)
}

// Service implements user profile and role operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	registry registry
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, registry registry) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		registry: registry,
	}
}
