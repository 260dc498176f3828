// Package seeder populates a database with a demo school: its student
// registry, profiles, pickup locations and a shelf of textbooks.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

// Repos bundles the write contracts consumed by the pipeline.
// All methods use only domain types.
type Repos struct {
	Schools   schoolRepo
	Registry  registryRepo
	Profiles  profileRepo
	Locations locationRepo
	Textbooks textbookRepo
}

type schoolRepo interface {
	Upsert(ctx context.Context, s *domain.School) (*domain.School, error)
}

type registryRepo interface {
	BulkInsert(ctx context.Context, students []domain.RegistryStudent) (int, error)
}

type profileRepo interface {
	CreateProfile(ctx context.Context, p *domain.Profile) error
	SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error
}

type locationRepo interface {
	Create(ctx context.Context, loc *domain.Location) error
}

type textbookRepo interface {
	Create(ctx context.Context, tb *domain.Textbook) (*domain.Textbook, error)
}
