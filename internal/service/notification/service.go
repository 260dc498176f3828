// Package notification computes per-user pending-action counts and keeps
// subscribers up to date as requests and textbooks change.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go . countsRepo

type countsRepo interface {
	Counts(ctx context.Context, userID uuid.UUID) (domain.NotificationCounts, error)
	PendingActions(ctx context.Context) ([]domain.PendingAction, error)
}

type eventSource interface {
	Subscribe() (<-chan domain.ChangeEvent, func())
}

// Aggregator is a read-only projection over the request ledger.
type Aggregator struct {
	counts countsRepo
	events eventSource
	log    *slog.Logger
}

// NewAggregator creates a new notification aggregator.
func NewAggregator(log *slog.Logger, counts countsRepo, events eventSource) *Aggregator {
	return &Aggregator{
		counts: counts,
		events: events,
		log:    log.With("service", "notification"),
	}
}

// Counts returns the caller's notification counts.
func (a *Aggregator) Counts(ctx context.Context) (domain.NotificationCounts, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.NotificationCounts{}, domain.ErrUnauthorized
	}
	return a.CountsFor(ctx, userID)
}

// CountsFor returns the notification counts of userID.
func (a *Aggregator) CountsFor(ctx context.Context, userID uuid.UUID) (domain.NotificationCounts, error) {
	c, err := a.counts.Counts(ctx, userID)
	if err != nil {
		return domain.NotificationCounts{}, fmt.Errorf("notification.Counts: %w", err)
	}
	return c, nil
}

// Watch streams the caller's counts: a snapshot first, then a fresh value
// after every change event that concerns the caller. Identical consecutive
// values are not repeated. The channel closes when ctx is done or the event
// source shuts down.
func (a *Aggregator) Watch(ctx context.Context) (<-chan domain.NotificationCounts, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, cancel := a.events.Subscribe()

	initial, err := a.CountsFor(ctx, userID)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan domain.NotificationCounts, 1)
	out <- initial

	go func() {
		defer close(out)
		defer cancel()

		last := initial
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if !ev.Concerns(userID) {
					continue
				}

				c, err := a.CountsFor(ctx, userID)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					a.log.WarnContext(ctx, "recompute counts failed",
						slog.String("user_id", userID.String()),
						slog.String("error", err.Error()),
					)
					continue
				}
				if c == last {
					continue
				}
				last = c

				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// PendingActions lists users with outstanding actions. Admin only.
func (a *Aggregator) PendingActions(ctx context.Context) ([]domain.PendingAction, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	actions, err := a.counts.PendingActions(ctx)
	if err != nil {
		return nil, fmt.Errorf("notification.PendingActions: %w", err)
	}
	return actions, nil
}
