// Package user implements the profile and role directory on PostgreSQL.
package user

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

var profileColumns = []string{"id", "email", "first_name", "last_name", "school_id", "graduation_year", "created_at"}

type profileRow struct {
	ID             uuid.UUID `db:"id"`
	Email          string    `db:"email"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	SchoolID       uuid.UUID `db:"school_id"`
	GraduationYear *int      `db:"graduation_year"`
	CreatedAt      time.Time `db:"created_at"`
}

type profileWithRoleRow struct {
	profileRow
	Role string `db:"role"`
}

// Repo provides profile and role persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetProfile returns a profile by user id.
func (r *Repo) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	p := domain.Profile(dst)
	return &p, nil
}

// GetProfiles returns the profiles of ids in no particular order. Unknown
// ids are skipped.
func (r *Repo) GetProfiles(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := postgres.Builder().
		Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []profileRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}

	out := make([]domain.Profile, len(rows))
	for i, rw := range rows {
		out[i] = domain.Profile(rw)
	}
	return out, nil
}

// CreateProfile inserts a profile.
func (r *Repo) CreateProfile(ctx context.Context, p *domain.Profile) error {
	query, args, err := postgres.Builder().
		Insert("profiles").
		Columns(profileColumns...).
		Values(p.ID, p.Email, p.FirstName, p.LastName, p.SchoolID, p.GraduationYear, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "profile", p.ID)
	}
	return nil
}

// UpdateProfile stores the editable fields of p. Email and created_at are
// never changed.
func (r *Repo) UpdateProfile(ctx context.Context, p *domain.Profile) error {
	query, args, err := postgres.Builder().
		Update("profiles").
		Set("first_name", p.FirstName).
		Set("last_name", p.LastName).
		Set("school_id", p.SchoolID).
		Set("graduation_year", p.GraduationYear).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "profile", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// GetRole returns the role of userID. Users without an explicit role are
// students.
func (r *Repo) GetRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error) {
	var role string
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT role FROM user_roles WHERE user_id = $1`, userID).
		Scan(&role)
	if postgres.IsNoRows(err) {
		return domain.UserRoleStudent, nil
	}
	if err != nil {
		return "", postgres.MapError(err, "user_role", userID)
	}
	return domain.UserRole(role), nil
}

// SetRole assigns role to userID, replacing any previous role.
func (r *Repo) SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error {
	query, args, err := postgres.Builder().
		Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, string(role)).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user_role", userID)
	}
	return nil
}

// List returns profiles with their roles ordered by name, plus the total count.
func (r *Repo) List(ctx context.Context, schoolID *uuid.UUID, limit, offset int) ([]domain.ProfileWithRole, int, error) {
	where := squirrel.And{}
	if schoolID != nil {
		where = append(where, squirrel.Eq{"p.school_id": *schoolID})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("profiles p").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}

	cols := make([]string, 0, len(profileColumns)+1)
	for _, c := range profileColumns {
		cols = append(cols, "p."+c)
	}
	cols = append(cols, "COALESCE(ur.role, 'student') AS role")

	sel := postgres.Builder().
		Select(cols...).
		From("profiles p").
		LeftJoin("user_roles ur ON ur.user_id = p.id").
		Where(where).
		OrderBy("p.last_name", "p.first_name", "p.id")
	if limit > 0 {
		sel = sel.Limit(uint64(limit))
	}
	if offset > 0 {
		sel = sel.Offset(uint64(offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var rows []profileWithRoleRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list profiles: %w", err)
	}

	out := make([]domain.ProfileWithRole, len(rows))
	for i, rw := range rows {
		out[i] = domain.ProfileWithRole{Profile: domain.Profile(rw.profileRow), Role: domain.UserRole(rw.Role)}
	}
	return out, total, nil
}
