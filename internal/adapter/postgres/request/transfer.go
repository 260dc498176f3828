package request

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/adapter/postgres"
	"github.com/Burns17/book-pass-on/internal/domain"
)

var completeSQL = `UPDATE requests SET status = 'completed', updated_at = now()
 WHERE id = $1 AND textbook_id = $2 AND status = 'approved'
 RETURNING ` + strings.Join(columns, ", ")

const reassignSQL = `UPDATE textbooks SET owner_id = $1, status = $2
 WHERE id = $3 AND owner_id = $4`

// TransferOwnership hands textbookID over to newOwnerID and completes the
// approved request in a single transaction. Either both rows change or
// neither does. The book must still belong to the request's lender: once
// another approved request has moved it, this one can no longer transfer.
func (r *Repo) TransferOwnership(ctx context.Context, requestID, textbookID, newOwnerID uuid.UUID, status domain.TextbookStatus) (*domain.Request, error) {
	var out domain.Request

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		var prevOwner uuid.UUID
		err := q.QueryRow(ctx, `SELECT owner_id FROM textbooks WHERE id = $1 FOR UPDATE`, textbookID).Scan(&prevOwner)
		if err != nil {
			return postgres.MapError(err, "textbook", textbookID)
		}

		var dst row
		err = pgxscan.Get(ctx, q, &dst, completeSQL, requestID, textbookID)
		if postgres.IsNoRows(err) {
			return r.explainMiss(ctx, q, requestID, domain.Transition{
				From: domain.RequestStatusApproved,
				To:   domain.RequestStatusCompleted,
			})
		}
		if err != nil {
			return postgres.MapError(err, "request", requestID)
		}

		if dst.LenderID != prevOwner {
			return fmt.Errorf("textbook %s: no longer owned by lender %s: %w", textbookID, dst.LenderID, domain.ErrConflict)
		}

		tag, err := q.Exec(ctx, reassignSQL, newOwnerID, string(status), textbookID, dst.LenderID)
		if err != nil {
			return postgres.MapError(err, "textbook", textbookID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("textbook %s: owner changed: %w", textbookID, domain.ErrConflict)
		}

		out = dst.toDomain()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("transfer ownership: %w", err)
	}

	return &out, nil
}

const returnTextbookSQL = `UPDATE textbooks SET status = 'available' WHERE id = $1`

// MarkReturned moves a completed request to returned and makes its
// textbook available again, atomically.
func (r *Repo) MarkReturned(ctx context.Context, requestID, textbookID uuid.UUID) (*domain.Request, error) {
	var out *domain.Request

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		req, err := r.Transition(ctx, requestID, domain.Transition{
			From: domain.RequestStatusCompleted,
			To:   domain.RequestStatusReturned,
		}, nil)
		if err != nil {
			return err
		}
		if req.TextbookID != textbookID {
			return domain.NewValidationError("textbook_id", "does not match request")
		}

		tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, returnTextbookSQL, textbookID)
		if err != nil {
			return postgres.MapError(err, "textbook", textbookID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("textbook %s: %w", textbookID, domain.ErrNotFound)
		}

		out = req
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mark returned: %w", err)
	}

	return out, nil
}
