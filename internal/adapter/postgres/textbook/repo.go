// Package textbook implements the Catalog Store on PostgreSQL.
package textbook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Burns17/book-pass-on/internal/adapter/postgres"
	"github.com/Burns17/book-pass-on/internal/domain"
)

const table = "textbooks"

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

var columns = []string{
	"id", "owner_id", "school_id", "title", "author", "isbn", "edition",
	"condition", "photo_url", "status", "created_at",
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	OwnerID   uuid.UUID  `db:"owner_id"`
	SchoolID  *uuid.UUID `db:"school_id"`
	Title     string     `db:"title"`
	Author    *string    `db:"author"`
	ISBN      *string    `db:"isbn"`
	Edition   *string    `db:"edition"`
	Condition *string    `db:"condition"`
	PhotoURL  *string    `db:"photo_url"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.Textbook {
	tb := domain.Textbook{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		SchoolID:  r.SchoolID,
		Title:     r.Title,
		Author:    r.Author,
		ISBN:      r.ISBN,
		Edition:   r.Edition,
		PhotoURL:  r.PhotoURL,
		Status:    domain.TextbookStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}
	if r.Condition != nil {
		c := domain.TextbookCondition(*r.Condition)
		tb.Condition = &c
	}
	return tb
}

func conditionArg(c *domain.TextbookCondition) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

// Repo provides textbook persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new textbook repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a textbook by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Textbook, error) {
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
		return nil, postgres.MapError(err, "textbook", id)
	}

	tb := dst.toDomain()
	return &tb, nil
}

// GetByIDs returns the textbooks with the given ids in no particular order.
// Missing ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Textbook, error) {
	if len(ids) == 0 {
		return []domain.Textbook{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get textbooks by ids: %w", err)
	}

	return toDomainList(rows), nil
}

// List returns textbooks matching filter, newest first, with the total
// number of matches ignoring limit and offset.
func (r *Repo) List(ctx context.Context, filter domain.TextbookFilter) ([]domain.Textbook, int, error) {
	where := squirrel.And{}
	if filter.SchoolID != nil {
		where = append(where, squirrel.Eq{"school_id": *filter.SchoolID})
	}
	if filter.OwnerID != nil {
		where = append(where, squirrel.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Condition != nil {
		where = append(where, squirrel.Eq{"condition": string(*filter.Condition)})
	}
	if filter.Query != "" {
		pattern := "%" + likeEscaper.Replace(filter.Query) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"isbn": pattern},
		})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count textbooks: %w", err)
	}

	sel := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sel = sel.Offset(uint64(filter.Offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list textbooks: %w", err)
	}

	return toDomainList(rows), total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new textbook and returns the persisted row.
func (r *Repo) Create(ctx context.Context, tb *domain.Textbook) (*domain.Textbook, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(tb.ID, tb.OwnerID, tb.SchoolID, tb.Title, tb.Author, tb.ISBN, tb.Edition,
			conditionArg(tb.Condition), tb.PhotoURL, string(tb.Status), tb.CreatedAt).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "textbook", tb.ID)
	}

	out := dst.toDomain()
	return &out, nil
}

// Update overwrites the descriptive fields of a textbook owned by tb.OwnerID.
// Returns domain.ErrNotFound when the book does not exist or has another owner.
func (r *Repo) Update(ctx context.Context, tb *domain.Textbook) (*domain.Textbook, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("title", tb.Title).
		Set("author", tb.Author).
		Set("isbn", tb.ISBN).
		Set("edition", tb.Edition).
		Set("condition", conditionArg(tb.Condition)).
		Set("photo_url", tb.PhotoURL).
		Where(squirrel.Eq{"id": tb.ID, "owner_id": tb.OwnerID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "textbook", tb.ID)
	}

	out := dst.toDomain()
	return &out, nil
}

// UpdateStatus sets the status of a textbook.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TextbookStatus) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "textbook", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("textbook %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a textbook owned by ownerID. Books that were ever requested
// are referenced by the ledger and cannot be deleted.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		if isFKViolation(err) {
			return fmt.Errorf("textbook %s: has requests: %w", id, domain.ErrConflict)
		}
		return postgres.MapError(err, "textbook", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("textbook %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toDomainList(rows []row) []domain.Textbook {
	out := make([]domain.Textbook, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
