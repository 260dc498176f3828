package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/pkg/ctxutil"
)

// CreateRequest opens a pending request by the caller for an available
// textbook. The textbook's status is left untouched.
func (s *Service) CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.Request, error) {
	borrowerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tb, err := s.textbooks.GetByID(ctx, input.TextbookID)
	if err != nil {
		return nil, fmt.Errorf("ledger.CreateRequest: %w", err)
	}
	if tb.IsOwnedBy(borrowerID) {
		return nil, domain.NewValidationError("textbook_id", "cannot request your own textbook")
	}
	if !tb.IsAvailable() {
		return nil, fmt.Errorf("textbook %s is %s: %w", tb.ID, tb.Status, domain.ErrConflict)
	}

	if input.LocationID != nil {
		if err := s.checkLocation(ctx, *input.LocationID, tb); err != nil {
			return nil, fmt.Errorf("ledger.CreateRequest: %w", err)
		}
	}

	now := time.Now().UTC()
	req, err := s.requests.Create(ctx, &domain.Request{
		ID:           uuid.New(),
		BorrowerID:   borrowerID,
		LenderID:     tb.OwnerID,
		TextbookID:   tb.ID,
		LocationID:   input.LocationID,
		Status:       domain.RequestStatusPending,
		ProposedTime: input.ProposedTime,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.CreateRequest: %w", err)
	}

	s.log.InfoContext(ctx, "request created",
		slog.String("request_id", req.ID.String()),
		slog.String("textbook_id", tb.ID.String()),
		slog.String("borrower_id", borrowerID.String()),
	)

	s.publish("INSERT", req)
	return req, nil
}

// checkLocation loads a location and requires it to belong to the
// textbook's school.
func (s *Service) checkLocation(ctx context.Context, id uuid.UUID, tb *domain.Textbook) error {
	loc, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tb.SchoolID != nil && loc.SchoolID != *tb.SchoolID {
		return domain.NewValidationError("location_id", "location belongs to another school")
	}
	return nil
}
