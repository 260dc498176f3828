package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	CreateProfile(ctx context.Context, input user.CreateProfileInput) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.Profile, error)
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) error
	ListUsers(ctx context.Context, input user.ListUsersInput) ([]domain.ProfileWithRole, int, error)
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	svc userService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc userService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type createProfileRequest struct {
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	SchoolID       uuid.UUID `json:"schoolId"`
	GraduationYear *int      `json:"graduationYear"`
}

type updateProfileRequest struct {
	FirstName      *string    `json:"firstName"`
	LastName       *string    `json:"lastName"`
	SchoolID       *uuid.UUID `json:"schoolId"`
	GraduationYear *int       `json:"graduationYear"`
}

// Get handles GET /api/v1/me/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Create handles POST /api/v1/me/profile, completing sign-up for a
// registered student.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.CreateProfile(r.Context(), user.CreateProfileInput{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		SchoolID:       req.SchoolID,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(p))
}

// Update handles PATCH /api/v1/me/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		SchoolID:       req.SchoolID,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
