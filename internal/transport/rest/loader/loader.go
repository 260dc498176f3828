// Package loader provides per-request DataLoaders that batch the textbook,
// location and profile lookups made while rendering request listings.
// Loaders call repositories directly; handlers only ask for ids that the
// service layer already authorized.
package loader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Burns17/book-pass-on/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type textbookRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Textbook, error)
}

type locationRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Location, error)
}

type profileRepo interface {
	GetProfiles(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Textbook textbookRepo
	Location locationRepo
	Profile  profileRepo
}

// Loaders is created per request via NewLoaders. A key with no row resolves
// to nil.
type Loaders struct {
	TextbookByID *dataloader.Loader[uuid.UUID, *domain.Textbook]
	LocationByID *dataloader.Loader[uuid.UUID, *domain.Location]
	ProfileByID  *dataloader.Loader[uuid.UUID, *domain.Profile]
}

// NewLoaders creates a new set of loaders. Results are cached for the life
// of the returned value, so it must not outlive a request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		TextbookByID: newLoader(newTextbookBatchFn(repos.Textbook)),
		LocationByID: newLoader(newLocationBatchFn(repos.Location)),
		ProfileByID:  newLoader(newProfileBatchFn(repos.Profile)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("loader: loaders not found in context, is the middleware configured?")
	}
	return l
}
