// Package report implements abuse report storage on PostgreSQL.
package report

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

var columns = []string{"id", "reporter_id", "target_type", "target_id", "reason", "status", "created_at"}

type row struct {
	ID         uuid.UUID `db:"id"`
	ReporterID uuid.UUID `db:"reporter_id"`
	TargetType string    `db:"target_type"`
	TargetID   uuid.UUID `db:"target_id"`
	Reason     string    `db:"reason"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Report {
	return domain.Report{
		ID:         r.ID,
		ReporterID: r.ReporterID,
		TargetType: domain.ReportTarget(r.TargetType),
		TargetID:   r.TargetID,
		Reason:     r.Reason,
		Status:     domain.ReportStatus(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new report repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create files a report.
func (r *Repo) Create(ctx context.Context, rep *domain.Report) error {
	query, args, err := postgres.Builder().
		Insert("reports").
		Columns(columns...).
		Values(rep.ID, rep.ReporterID, string(rep.TargetType), rep.TargetID, rep.Reason, string(rep.Status), rep.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "report", rep.ID)
	}
	return nil
}

// List returns reports newest first, optionally narrowed to one status.
func (r *Repo) List(ctx context.Context, status *domain.ReportStatus) ([]domain.Report, error) {
	sel := postgres.Builder().
		Select(columns...).
		From("reports").
		OrderBy("created_at DESC", "id DESC")
	if status != nil {
		sel = sel.Where(squirrel.Eq{"status": string(*status)})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	out := make([]domain.Report, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Close moves a pending report to status. A report that is no longer
// pending yields a *domain.TransitionError.
func (r *Repo) Close(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error) {
	query, args, err := postgres.Builder().
		Update("reports").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id, "status": string(domain.ReportStatusPending)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var dst row
	err = pgxscan.Get(ctx, q, &dst, query, args...)
	if postgres.IsNoRows(err) {
		var current string
		if err := q.QueryRow(ctx, `SELECT status FROM reports WHERE id = $1`, id).Scan(&current); err != nil {
			return nil, postgres.MapError(err, "report", id)
		}
		return nil, &domain.TransitionError{Entity: "report", From: current, To: status.String()}
	}
	if err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	out := dst.toDomain()
	return &out, nil
}
