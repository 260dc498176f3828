// Package location implements pickup location persistence on PostgreSQL.
package location

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/adapter/postgres"
	"github.com/Burns17/book-pass-on/internal/domain"
)

var columns = []string{"id", "school_id", "name", "label", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	SchoolID  uuid.UUID `db:"school_id"`
	Name      string    `db:"name"`
	Label     *string   `db:"label"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Location {
	return domain.Location(r)
}

// Repo provides location persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new location repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a pickup location.
func (r *Repo) Create(ctx context.Context, loc *domain.Location) error {
	query, args, err := postgres.Builder().
		Insert("locations").
		Columns(columns...).
		Values(loc.ID, loc.SchoolID, loc.Name, loc.Label, loc.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "location", loc.ID)
	}
	return nil
}

// GetByID returns a location by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "location", id)
	}

	loc := dst.toDomain()
	return &loc, nil
}

// GetByIDs returns the locations with the given ids; missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Location, error) {
	if len(ids) == 0 {
		return []domain.Location{}, nil
	}
	return r.list(ctx, squirrel.Eq{"id": ids})
}

// ListBySchool returns a school's pickup locations ordered by name.
func (r *Repo) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]domain.Location, error) {
	return r.list(ctx, squirrel.Eq{"school_id": schoolID})
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Location, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("locations").
		Where(where).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	out := make([]domain.Location, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
