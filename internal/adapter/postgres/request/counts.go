package request

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/adapter/postgres"
	"github.com/Burns17/book-pass-on/internal/domain"
)

const countsSQL = `
SELECT
    (SELECT count(*)
       FROM requests r
       JOIN textbooks t ON t.id = r.textbook_id
      WHERE t.owner_id = $1 AND r.status = 'pending') AS incoming_pending,
    (SELECT count(*)
       FROM requests
      WHERE borrower_id = $1 AND status = 'approved') AS approved_to_pickup`

// Counts computes the pending-action counts of userID in one round trip.
func (r *Repo) Counts(ctx context.Context, userID uuid.UUID) (domain.NotificationCounts, error) {
	var incoming, approved int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, countsSQL, userID).
		Scan(&incoming, &approved)
	if err != nil {
		return domain.NotificationCounts{}, postgres.MapError(err, "counts", userID)
	}
	return domain.NewNotificationCounts(incoming, approved), nil
}

const pendingActionsSQL = `
WITH incoming AS (
    SELECT t.owner_id AS user_id, count(*) AS n
      FROM requests r
      JOIN textbooks t ON t.id = r.textbook_id
     WHERE r.status = 'pending'
     GROUP BY t.owner_id
), approved AS (
    SELECT borrower_id AS user_id, count(*) AS n
      FROM requests
     WHERE status = 'approved'
     GROUP BY borrower_id
)
SELECT p.id AS user_id, p.first_name, p.last_name, p.email,
       COALESCE(i.n, 0) AS incoming_pending,
       COALESCE(a.n, 0) AS approved_outgoing
  FROM profiles p
  LEFT JOIN incoming i ON i.user_id = p.id
  LEFT JOIN approved a ON a.user_id = p.id
 WHERE i.n IS NOT NULL OR a.n IS NOT NULL
 ORDER BY COALESCE(i.n, 0) + COALESCE(a.n, 0) DESC, p.last_name, p.first_name`

type pendingActionRow struct {
	UserID           uuid.UUID `db:"user_id"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	Email            string    `db:"email"`
	IncomingPending  int       `db:"incoming_pending"`
	ApprovedOutgoing int       `db:"approved_outgoing"`
}

// PendingActions lists every user with at least one pending action,
// busiest first.
func (r *Repo) PendingActions(ctx context.Context) ([]domain.PendingAction, error) {
	var rows []pendingActionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, pendingActionsSQL); err != nil {
		return nil, fmt.Errorf("pending actions: %w", err)
	}

	out := make([]domain.PendingAction, len(rows))
	for i, rw := range rows {
		out[i] = domain.PendingAction(rw)
	}
	return out, nil
}
