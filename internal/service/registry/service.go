// Package registry manages the student eligibility registry.
package registry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

//go:generate moq -out mocks_test.go . registryRepo

type registryRepo interface {
	Create(ctx context.Context, s *domain.RegistryStudent) error
	BulkInsert(ctx context.Context, students []domain.RegistryStudent) (int, error)
	List(ctx context.Context, schoolID uuid.UUID) ([]domain.RegistryStudent, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	IsEligible(ctx context.Context, email string) (bool, error)
}

// Service exposes registry administration and the eligibility check.
type Service struct {
	students registryRepo
	log      *slog.Logger
}

// NewService creates a new registry service.
func NewService(log *slog.Logger, students registryRepo) *Service {
	return &Service{
		students: students,
		log:      log.With("service", "registry"),
	}
}
