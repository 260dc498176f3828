// Package school implements school persistence on PostgreSQL.
package school

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/adapter/postgres"
	"github.com/Burns17/book-pass-on/internal/domain"
)

var columns = []string{"id", "name", "domain", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Domain    string    `db:"domain"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides school persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new school repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Upsert inserts s, or renames the school already registered for its
// domain. The stored school is returned either way.
func (r *Repo) Upsert(ctx context.Context, s *domain.School) (*domain.School, error) {
	query, args, err := postgres.Builder().
		Insert("schools").
		Columns(columns...).
		Values(s.ID, s.Name, strings.ToLower(s.Domain), s.CreatedAt).
		Suffix("ON CONFLICT (domain) DO UPDATE SET name = EXCLUDED.name RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "school", s.ID)
	}
	out := domain.School(dst)
	return &out, nil
}
