// Package request implements the Request Ledger storage on PostgreSQL:
// guarded status transitions, listings, notification counts and the
// ownership transfer.
package request

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

const table = "requests"

var columns = []string{
	"id", "borrower_id", "lender_id", "textbook_id", "location_id", "status",
	"proposed_time", "created_at", "updated_at",
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	BorrowerID   uuid.UUID  `db:"borrower_id"`
	LenderID     uuid.UUID  `db:"lender_id"`
	TextbookID   uuid.UUID  `db:"textbook_id"`
	LocationID   *uuid.UUID `db:"location_id"`
	Status       string     `db:"status"`
	ProposedTime *time.Time `db:"proposed_time"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Request {
	return domain.Request{
		ID:           r.ID,
		BorrowerID:   r.BorrowerID,
		LenderID:     r.LenderID,
		TextbookID:   r.TextbookID,
		LocationID:   r.LocationID,
		Status:       domain.RequestStatus(r.Status),
		ProposedTime: r.ProposedTime,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// txRunner executes fn inside a database transaction.
type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx txRunner
}

// New creates a new request repository.
func New(db postgres.DB, tx txRunner) *Repo {
	return &Repo{db: db, tx: tx}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "request", id)
	}

	req := dst.toDomain()
	return &req, nil
}

// List returns requests matching filter, newest first. OwnerID selects
// requests against textbooks the user currently owns.
func (r *Repo) List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error) {
	sel := postgres.Builder().
		Select(qualified("r")...).
		From(table+" r").
		OrderBy("r.created_at DESC", "r.id DESC")

	if filter.BorrowerID != nil {
		sel = sel.Where(squirrel.Eq{"r.borrower_id": *filter.BorrowerID})
	}
	if filter.OwnerID != nil {
		sel = sel.Join("textbooks t ON t.id = r.textbook_id").
			Where(squirrel.Eq{"t.owner_id": *filter.OwnerID})
	}
	if filter.Status != nil {
		sel = sel.Where(squirrel.Eq{"r.status": string(*filter.Status)})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	out := make([]domain.Request, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new request.
func (r *Repo) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(req.ID, req.BorrowerID, req.LenderID, req.TextbookID, req.LocationID, string(req.Status),
			req.ProposedTime, req.CreatedAt, req.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "request", req.ID)
	}

	out := dst.toDomain()
	return &out, nil
}

// Transition moves a request along tr only while its stored status still
// equals tr.From. locationID, when non-nil, is stored in the same update.
//
// Returns domain.ErrNotFound if the request does not exist and a
// *domain.TransitionError (wrapping domain.ErrConflict) if its status no
// longer matches.
func (r *Repo) Transition(ctx context.Context, id uuid.UUID, tr domain.Transition, locationID *uuid.UUID) (*domain.Request, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	upd := postgres.Builder().
		Update(table).
		Set("status", string(tr.To)).
		Set("updated_at", squirrel.Expr("now()"))
	if locationID != nil {
		upd = upd.Set("location_id", *locationID)
	}

	query, args, err := upd.
		Where(squirrel.Eq{"id": id, "status": string(tr.From)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var dst row
	err = pgxscan.Get(ctx, q, &dst, query, args...)
	if postgres.IsNoRows(err) {
		return nil, r.explainMiss(ctx, q, id, tr)
	}
	if err != nil {
		return nil, postgres.MapError(err, "request", id)
	}

	out := dst.toDomain()
	return &out, nil
}

// explainMiss turns a zero-row guarded update into the precise error.
func (r *Repo) explainMiss(ctx context.Context, q postgres.Querier, id uuid.UUID, tr domain.Transition) error {
	var current string
	err := q.QueryRow(ctx, `SELECT status FROM requests WHERE id = $1`, id).Scan(&current)
	if err != nil {
		return postgres.MapError(err, "request", id)
	}
	return &domain.TransitionError{Entity: "request", From: current, To: tr.To.String()}
}

// RejectCompeting rejects every other pending request for textbookID.
// It returns the number of requests rejected.
func (r *Repo) RejectCompeting(ctx context.Context, textbookID, keepID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(domain.RequestStatusRejected)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"textbook_id": textbookID, "status": string(domain.RequestStatusPending)}).
		Where(squirrel.NotEq{"id": keepID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "textbook", textbookID)
	}
	return int(tag.RowsAffected()), nil
}

func qualified(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
