package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/pkg/ctxutil"
)

// GetRequest returns a request visible to its borrower or lender.
func (s *Service) GetRequest(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ledger.GetRequest: %w", err)
	}
	if !req.IsParticipant(callerID) {
		// Hide existence from outsiders.
		return nil, fmt.Errorf("request %s: %w", id, domain.ErrNotFound)
	}
	return req, nil
}

// ListOutgoing returns requests the caller made, newest first.
func (s *Service) ListOutgoing(ctx context.Context, status *domain.RequestStatus) ([]domain.Request, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validStatus(status); err != nil {
		return nil, err
	}

	reqs, err := s.requests.List(ctx, domain.RequestFilter{BorrowerID: &callerID, Status: status})
	if err != nil {
		return nil, fmt.Errorf("ledger.ListOutgoing: %w", err)
	}
	return reqs, nil
}

// ListIncoming returns requests against textbooks the caller owns.
func (s *Service) ListIncoming(ctx context.Context, status *domain.RequestStatus) ([]domain.Request, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validStatus(status); err != nil {
		return nil, err
	}

	reqs, err := s.requests.List(ctx, domain.RequestFilter{OwnerID: &callerID, Status: status})
	if err != nil {
		return nil, fmt.Errorf("ledger.ListIncoming: %w", err)
	}
	return reqs, nil
}

// ListBorrowed returns the caller's completed requests: books picked up
// and not yet returned.
func (s *Service) ListBorrowed(ctx context.Context) ([]domain.Request, error) {
	completed := domain.RequestStatusCompleted
	return s.ListOutgoing(ctx, &completed)
}

func validStatus(status *domain.RequestStatus) error {
	if status != nil && !status.IsValid() {
		return domain.NewValidationError("status", "unknown request status")
	}
	return nil
}
