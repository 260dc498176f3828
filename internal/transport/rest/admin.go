package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/internal/service/registry"
	"github.com/Burns17/book-pass-on/internal/service/user"
)

type registryService interface {
	AddStudent(ctx context.Context, input registry.AddStudentInput) (*domain.RegistryStudent, error)
	ImportStudents(ctx context.Context, input registry.ImportStudentsInput) (int, error)
	ListStudents(ctx context.Context, schoolID uuid.UUID) ([]domain.RegistryStudent, error)
	DeactivateStudent(ctx context.Context, id uuid.UUID) error
	ReactivateStudent(ctx context.Context, id uuid.UUID) error
}

// AdminHandler serves user administration and the student registry.
// Admin checks happen in the services.
type AdminHandler struct {
	users    userService
	registry registryService
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userService, registry registryService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users:    users,
		registry: registry,
		log:      logger.With("handler", "admin"),
	}
}

type roleRequest struct {
	Role string `json:"role"`
}

type registryStudentRequest struct {
	SchoolID     uuid.UUID `json:"schoolId"`
	StudentIDNum string    `json:"studentIdNum"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
}

func (req registryStudentRequest) input() registry.AddStudentInput {
	return registry.AddStudentInput{
		SchoolID:     req.SchoolID,
		StudentIDNum: req.StudentIDNum,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}
}

type importRequest struct {
	Students []registryStudentRequest `json:"students"`
}

type importResponse struct {
	Inserted int `json:"inserted"`
}

// ListUsers handles GET /api/v1/admin/users?schoolId=&limit=&offset=.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	schoolID, err := queryUUID(r, "schoolId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	users, total, err := h.users.ListUsers(r.Context(), user.ListUsersInput{
		SchoolID: schoolID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]profileResponse, len(users))
	for i := range users {
		out[i] = toProfileResponse(&users[i].Profile)
		out[i].Role = users[i].Role.String()
	}
	writeJSON(w, http.StatusOK, listResponse[profileResponse]{Items: out, Total: total})
}

// SetRole handles PUT /api/v1/admin/users/{id}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req roleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.users.SetUserRole(r.Context(), id, domain.UserRole(req.Role)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRegistry handles GET /api/v1/admin/registry?schoolId=.
func (h *AdminHandler) ListRegistry(w http.ResponseWriter, r *http.Request) {
	schoolID, err := queryUUID(r, "schoolId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if schoolID == nil {
		handleError(h.log, w, r, domain.NewValidationError("schoolId", "required"))
		return
	}

	students, err := h.registry.ListStudents(r.Context(), *schoolID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]registryStudentResponse, len(students))
	for i := range students {
		out[i] = toRegistryStudentResponse(&students[i])
	}
	writeJSON(w, http.StatusOK, listResponse[registryStudentResponse]{Items: out, Total: len(out)})
}

// AddStudent handles POST /api/v1/admin/registry.
func (h *AdminHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	var req registryStudentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.registry.AddStudent(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRegistryStudentResponse(s))
}

// ImportStudents handles POST /api/v1/admin/registry/import.
func (h *AdminHandler) ImportStudents(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := registry.ImportStudentsInput{Students: make([]registry.AddStudentInput, len(req.Students))}
	for i, s := range req.Students {
		input.Students[i] = s.input()
	}

	n, err := h.registry.ImportStudents(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Inserted: n})
}

// DeactivateStudent handles DELETE /api/v1/admin/registry/{id}.
func (h *AdminHandler) DeactivateStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.registry.DeactivateStudent(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReactivateStudent handles PUT /api/v1/admin/registry/{id}/active.
func (h *AdminHandler) ReactivateStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.registry.ReactivateStudent(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
