package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/pkg/ctxutil"
)

const defaultListLimit = 50

// SetUserRole changes the role of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if !role.IsValid() {
		return domain.NewValidationError("role", "invalid role: must be 'student', 'moderator' or 'admin'")
	}

	// Prevent admin from demoting themselves.
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID == targetUserID && role != domain.UserRoleAdmin {
		return domain.NewValidationError("role", "cannot demote yourself")
	}

	if _, err := s.users.GetProfile(ctx, targetUserID); err != nil {
		return fmt.Errorf("user.SetUserRole: %w", err)
	}

	if err := s.users.SetRole(ctx, targetUserID, role); err != nil {
		return fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return nil
}

// ListUsers returns a paginated list of profiles with roles (admin only).
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) ([]domain.ProfileWithRole, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	users, total, err := s.users.List(ctx, input.SchoolID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	return users, total, nil
}
