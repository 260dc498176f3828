package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/pkg/ctxutil"
)

// ListMine returns every textbook the caller currently owns, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.Textbook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, _, err := s.textbooks.List(ctx, domain.TextbookFilter{OwnerID: &userID})
	if err != nil {
		return nil, fmt.Errorf("catalog.ListMine: %w", err)
	}
	return items, nil
}

// ListLibrary returns a page of textbooks from the caller's school and the
// total number of matches.
func (s *Service) ListLibrary(ctx context.Context, input ListLibraryInput) ([]domain.Textbook, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog.ListLibrary: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}

	items, total, err := s.textbooks.List(ctx, domain.TextbookFilter{
		SchoolID:  &profile.SchoolID,
		Status:    input.Status,
		Condition: input.Condition,
		Query:     strings.TrimSpace(input.Query),
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("catalog.ListLibrary: %w", err)
	}
	return items, total, nil
}

// ListLocations returns the pickup locations of the caller's school.
func (s *Service) ListLocations(ctx context.Context) ([]domain.Location, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListLocations: %w", err)
	}

	locs, err := s.locations.ListBySchool(ctx, profile.SchoolID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListLocations: %w", err)
	}
	return locs, nil
}
