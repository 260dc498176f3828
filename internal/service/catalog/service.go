// Package catalog manages textbook listings and the school library view.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

//go:generate moq -out mocks_test.go . textbookRepo profileRepo locationRepo

type textbookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Textbook, error)
	List(ctx context.Context, filter domain.TextbookFilter) ([]domain.Textbook, int, error)
	Create(ctx context.Context, tb *domain.Textbook) (*domain.Textbook, error)
	Update(ctx context.Context, tb *domain.Textbook) (*domain.Textbook, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TextbookStatus) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type profileRepo interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type locationRepo interface {
	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]domain.Location, error)
}

// Service implements textbook CRUD for owners and library browsing.
type Service struct {
	textbooks textbookRepo
	profiles  profileRepo
	locations locationRepo
	log       *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, textbooks textbookRepo, profiles profileRepo, locations locationRepo) *Service {
	return &Service{
		textbooks: textbooks,
		profiles:  profiles,
		locations: locations,
		log:       log.With("service", "catalog"),
	}
}
