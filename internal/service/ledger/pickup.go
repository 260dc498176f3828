package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/pkg/ctxutil"
)

// ConfirmPickup is called by the borrower once the book is in hand. It
// transfers ownership of the textbook to the borrower and completes the
// request as one atomic operation.
func (s *Service) ConfirmPickup(ctx context.Context, input ConfirmPickupInput) (*domain.Request, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("ledger.ConfirmPickup: %w", err)
	}
	if !req.IsBorrower(callerID) {
		return nil, domain.ErrForbidden
	}
	if input.NewOwnerID != req.BorrowerID {
		return nil, domain.NewValidationError("new_owner_id", "must be the borrower")
	}
	if input.TextbookID != req.TextbookID {
		return nil, domain.NewValidationError("textbook_id", "does not match request")
	}

	tb, err := s.textbooks.GetByID(ctx, req.TextbookID)
	if err != nil {
		return nil, fmt.Errorf("ledger.ConfirmPickup: %w", err)
	}
	if !tb.IsOwnedBy(req.LenderID) {
		return nil, fmt.Errorf("ledger.ConfirmPickup: textbook %s changed hands since approval: %w", tb.ID, domain.ErrConflict)
	}
	previousOwner := tb.OwnerID

	completed, err := s.requests.TransferOwnership(ctx, req.ID, tb.ID, input.NewOwnerID, domain.TextbookStatusLent)
	if err != nil {
		return nil, fmt.Errorf("ledger.ConfirmPickup: %w", err)
	}

	s.log.InfoContext(ctx, "ownership transferred",
		slog.String("request_id", req.ID.String()),
		slog.String("textbook_id", tb.ID.String()),
		slog.String("from_owner_id", previousOwner.String()),
		slog.String("to_owner_id", input.NewOwnerID.String()),
	)

	s.publish("UPDATE", completed, previousOwner)
	return completed, nil
}

// Return marks a completed request returned and makes the textbook
// available again. Only the borrower may return.
func (s *Service) Return(ctx context.Context, input ReturnInput) (*domain.Request, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("ledger.Return: %w", err)
	}
	if !req.IsBorrower(callerID) {
		return nil, domain.ErrForbidden
	}
	if input.TextbookID != req.TextbookID {
		return nil, domain.NewValidationError("textbook_id", "does not match request")
	}

	tb, err := s.textbooks.GetByID(ctx, req.TextbookID)
	if err != nil {
		return nil, fmt.Errorf("ledger.Return: %w", err)
	}

	returned, err := s.requests.MarkReturned(ctx, req.ID, req.TextbookID)
	if err != nil {
		return nil, fmt.Errorf("ledger.Return: %w", err)
	}

	s.log.InfoContext(ctx, "textbook returned",
		slog.String("request_id", req.ID.String()),
		slog.String("textbook_id", req.TextbookID.String()),
	)

	s.publish("UPDATE", returned, tb.OwnerID)
	return returned, nil
}
