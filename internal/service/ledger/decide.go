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

// ApprovalNotice is the system message posted to a request when it is approved.
const ApprovalNotice = "Your request has been approved! Please pick up the book at: %s"

// Approve accepts a pending request on a textbook owned by the caller,
// stores the pickup location and posts the pickup notice. All writes
// commit together.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*domain.Request, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, tb, err := s.loadAsOwner(ctx, input.RequestID, callerID)
	if err != nil {
		return nil, fmt.Errorf("ledger.Approve: %w", err)
	}
	if !tb.IsOwnedBy(req.LenderID) {
		return nil, fmt.Errorf("ledger.Approve: request %s predates the current owner: %w", req.ID, domain.ErrConflict)
	}

	loc, err := s.locations.GetByID(ctx, input.LocationID)
	if err != nil {
		return nil, fmt.Errorf("ledger.Approve: %w", err)
	}
	if tb.SchoolID != nil && loc.SchoolID != *tb.SchoolID {
		return nil, domain.NewValidationError("location_id", "location belongs to another school")
	}

	var (
		approved *domain.Request
		rejected int
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		approved, err = s.requests.Transition(ctx, req.ID, domain.Transition{
			From: domain.RequestStatusPending,
			To:   domain.RequestStatusApproved,
		}, &loc.ID)
		if err != nil {
			return err
		}

		if err := s.messages.Create(ctx, &domain.Message{
			ID:        uuid.New(),
			RequestID: req.ID,
			FromID:    callerID,
			Kind:      domain.MessageKindSystem,
			Body:      fmt.Sprintf(ApprovalNotice, locationText(loc)),
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}

		if s.cfg.ReserveOnApprove {
			if err := s.textbooks.UpdateStatus(ctx, tb.ID, domain.TextbookStatusReserved); err != nil {
				return err
			}
		}

		if s.cfg.AutoRejectCompeting {
			rejected, err = s.requests.RejectCompeting(ctx, tb.ID, req.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.Approve: %w", err)
	}

	s.log.InfoContext(ctx, "request approved",
		slog.String("request_id", req.ID.String()),
		slog.String("location_id", loc.ID.String()),
		slog.Int("competing_rejected", rejected),
	)

	s.publish("UPDATE", approved, tb.OwnerID)
	return approved, nil
}

// Reject declines a pending request on a textbook owned by the caller.
// Rejecting twice fails with a transition error.
func (s *Service) Reject(ctx context.Context, requestID uuid.UUID) (*domain.Request, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if requestID == uuid.Nil {
		return nil, domain.NewValidationError("request_id", "required")
	}

	req, tb, err := s.loadAsOwner(ctx, requestID, callerID)
	if err != nil {
		return nil, fmt.Errorf("ledger.Reject: %w", err)
	}

	rejected, err := s.requests.Transition(ctx, req.ID, domain.Transition{
		From: domain.RequestStatusPending,
		To:   domain.RequestStatusRejected,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("ledger.Reject: %w", err)
	}

	s.log.InfoContext(ctx, "request rejected", slog.String("request_id", req.ID.String()))

	s.publish("UPDATE", rejected, tb.OwnerID)
	return rejected, nil
}

// loadAsOwner fetches a request and its textbook and requires callerID to
// be the textbook's current owner.
func (s *Service) loadAsOwner(ctx context.Context, requestID, callerID uuid.UUID) (*domain.Request, *domain.Textbook, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	tb, err := s.textbooks.GetByID(ctx, req.TextbookID)
	if err != nil {
		return nil, nil, err
	}

	if !tb.IsOwnedBy(callerID) {
		return nil, nil, domain.ErrForbidden
	}
	return req, tb, nil
}

func locationText(loc *domain.Location) string {
	if loc.Label != nil && *loc.Label != "" {
		return loc.Name + " (" + *loc.Label + ")"
	}
	return loc.Name
}
