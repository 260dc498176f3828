package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/pkg/ctxutil"
)

// CreateTextbook lists a new available textbook owned by the caller in the
// caller's school.
func (s *Service) CreateTextbook(ctx context.Context, input CreateTextbookInput) (*domain.Textbook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateTextbook: %w", err)
	}

	f := input.normalized()
	tb, err := s.textbooks.Create(ctx, &domain.Textbook{
		ID:        uuid.New(),
		OwnerID:   userID,
		SchoolID:  &profile.SchoolID,
		Title:     f.Title,
		Author:    f.Author,
		ISBN:      f.ISBN,
		Edition:   f.Edition,
		Condition: f.Condition,
		PhotoURL:  f.PhotoURL,
		Status:    domain.TextbookStatusAvailable,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateTextbook: %w", err)
	}

	s.log.InfoContext(ctx, "textbook created",
		slog.String("textbook_id", tb.ID.String()),
		slog.String("owner_id", userID.String()),
	)
	return tb, nil
}

// UpdateTextbook overwrites the descriptive fields of a textbook the
// caller owns.
func (s *Service) UpdateTextbook(ctx context.Context, input UpdateTextbookInput) (*domain.Textbook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedTextbook(ctx, userID, input.ID); err != nil {
		return nil, fmt.Errorf("catalog.UpdateTextbook: %w", err)
	}

	f := input.normalized()
	tb, err := s.textbooks.Update(ctx, &domain.Textbook{
		ID:        input.ID,
		OwnerID:   userID,
		Title:     f.Title,
		Author:    f.Author,
		ISBN:      f.ISBN,
		Edition:   f.Edition,
		Condition: f.Condition,
		PhotoURL:  f.PhotoURL,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateTextbook: %w", err)
	}

	s.log.InfoContext(ctx, "textbook updated", slog.String("textbook_id", tb.ID.String()))
	return tb, nil
}

// SetStatus lets the owner mark a textbook available or lent. Reserved is
// managed by the request ledger only.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.TextbookStatus) (*domain.Textbook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if status != domain.TextbookStatusAvailable && status != domain.TextbookStatusLent {
		return nil, domain.NewValidationError("status", "must be available or lent")
	}

	tb, err := s.ownedTextbook(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.SetStatus: %w", err)
	}
	if tb.Status == status {
		return tb, nil
	}

	if err := s.textbooks.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("catalog.SetStatus: %w", err)
	}
	tb.Status = status

	s.log.InfoContext(ctx, "textbook status changed",
		slog.String("textbook_id", id.String()),
		slog.String("status", status.String()),
	)
	return tb, nil
}

// DeleteTextbook removes a textbook the caller owns. Books referenced by
// requests cannot be deleted.
func (s *Service) DeleteTextbook(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.ownedTextbook(ctx, userID, id); err != nil {
		return fmt.Errorf("catalog.DeleteTextbook: %w", err)
	}

	if err := s.textbooks.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("catalog.DeleteTextbook: %w", err)
	}

	s.log.InfoContext(ctx, "textbook deleted", slog.String("textbook_id", id.String()))
	return nil
}

// GetTextbook returns any textbook by id.
func (s *Service) GetTextbook(ctx context.Context, id uuid.UUID) (*domain.Textbook, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	tb, err := s.textbooks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetTextbook: %w", err)
	}
	return tb, nil
}

func (s *Service) ownedTextbook(ctx context.Context, userID, id uuid.UUID) (*domain.Textbook, error) {
	tb, err := s.textbooks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tb.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return tb, nil
}
