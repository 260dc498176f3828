// Package message implements the per-request message log on PostgreSQL.
package message

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

var columns = []string{"id", "request_id", "from_id", "kind", "body", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	RequestID uuid.UUID `db:"request_id"`
	FromID    uuid.UUID `db:"from_id"`
	Kind      string    `db:"kind"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new message repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create appends a message. Messages are never updated or deleted.
func (r *Repo) Create(ctx context.Context, m *domain.Message) error {
	query, args, err := postgres.Builder().
		Insert("messages").
		Columns(columns...).
		Values(m.ID, m.RequestID, m.FromID, string(m.Kind), m.Body, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "message", m.ID)
	}
	return nil
}

// ListByRequest returns every message of a request, oldest first.
func (r *Repo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Message, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("messages").
		Where(squirrel.Eq{"request_id": requestID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]domain.Message, len(rows))
	for i, rw := range rows {
		out[i] = domain.Message{
			ID:        rw.ID,
			RequestID: rw.RequestID,
			FromID:    rw.FromID,
			Kind:      domain.MessageKind(rw.Kind),
			Body:      rw.Body,
			CreatedAt: rw.CreatedAt,
		}
	}
	return out, nil
}
