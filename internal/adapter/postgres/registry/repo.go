// Package registry implements the student eligibility registry on PostgreSQL.
package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/adapter/postgres"
	"github.com/Burns17/book-pass-on/internal/domain"
)

var columns = []string{
	"id", "school_id", "student_id_num", "first_name", "last_name",
	"email", "is_active", "created_by", "created_at",
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	SchoolID     uuid.UUID  `db:"school_id"`
	StudentIDNum string     `db:"student_id_num"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Email        string     `db:"email"`
	IsActive     bool       `db:"is_active"`
	CreatedBy    *uuid.UUID `db:"created_by"`
	CreatedAt    time.Time  `db:"created_at"`
}

// Repo provides registry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new registry repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func values(s *domain.RegistryStudent) []any {
	return []any{
		s.ID, s.SchoolID, s.StudentIDNum, s.FirstName, s.LastName,
		strings.ToLower(s.Email), s.IsActive, s.CreatedBy, s.CreatedAt,
	}
}

// Create adds a student to the registry.
func (r *Repo) Create(ctx context.Context, s *domain.RegistryStudent) error {
	query, args, err := postgres.Builder().
		Insert("student_registry").
		Columns(columns...).
		Values(values(s)...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "registry_student", s.ID)
	}
	return nil
}

// BulkInsert adds students in one statement, skipping emails or student
// numbers already registered. It returns the number of rows inserted.
func (r *Repo) BulkInsert(ctx context.Context, students []domain.RegistryStudent) (int, error) {
	if len(students) == 0 {
		return 0, nil
	}

	ins := postgres.Builder().
		Insert("student_registry").
		Columns(columns...)
	for i := range students {
		ins = ins.Values(values(&students[i])...)
	}

	query, args, err := ins.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk insert registry: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// List returns the registry of a school ordered by student number.
func (r *Repo) List(ctx context.Context, schoolID uuid.UUID) ([]domain.RegistryStudent, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("student_registry").
		Where(squirrel.Eq{"school_id": schoolID}).
		OrderBy("student_id_num ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list registry: %w", err)
	}

	out := make([]domain.RegistryStudent, len(rows))
	for i, rw := range rows {
		out[i] = domain.RegistryStudent(rw)
	}
	return out, nil
}

// Deactivate marks a registry entry inactive.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.setActive(ctx, id, false)
}

// Reactivate restores eligibility of a deactivated registry entry.
func (r *Repo) Reactivate(ctx context.Context, id uuid.UUID) error {
	return r.setActive(ctx, id, true)
}

func (r *Repo) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	query, args, err := postgres.Builder().
		Update("student_registry").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "registry_student", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registry_student %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// IsEligible reports whether email belongs to an active registry entry.
func (r *Repo) IsEligible(ctx context.Context, email string) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM student_registry WHERE email = $1 AND is_active)`,
		strings.ToLower(strings.TrimSpace(email)),
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check eligibility: %w", err)
	}
	return ok, nil
}
