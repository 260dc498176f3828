package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/internal/service/catalog"
)

type catalogService interface {
	CreateTextbook(ctx context.Context, input catalog.CreateTextbookInput) (*domain.Textbook, error)
	UpdateTextbook(ctx context.Context, input catalog.UpdateTextbookInput) (*domain.Textbook, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.TextbookStatus) (*domain.Textbook, error)
	DeleteTextbook(ctx context.Context, id uuid.UUID) error
	GetTextbook(ctx context.Context, id uuid.UUID) (*domain.Textbook, error)
	ListMine(ctx context.Context) ([]domain.Textbook, error)
	ListLibrary(ctx context.Context, input catalog.ListLibraryInput) ([]domain.Textbook, int, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// TextbookHandler serves the catalog endpoints.
type TextbookHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewTextbookHandler creates a TextbookHandler.
func NewTextbookHandler(svc catalogService, logger *slog.Logger) *TextbookHandler {
	return &TextbookHandler{svc: svc, log: logger.With("handler", "textbook")}
}

type textbookRequest struct {
	Title     string  `json:"title"`
	Author    *string `json:"author"`
	ISBN      *string `json:"isbn"`
	Edition   *string `json:"edition"`
	Condition *string `json:"condition"`
	PhotoURL  *string `json:"photoUrl"`
}

func (req textbookRequest) fields() catalog.TextbookFields {
	f := catalog.TextbookFields{
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
		Edition:  req.Edition,
		PhotoURL: req.PhotoURL,
	}
	if req.Condition != nil {
		c := domain.TextbookCondition(*req.Condition)
		f.Condition = &c
	}
	return f
}

type statusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/v1/textbooks?status=&condition=&q=&limit=&offset=.
func (h *TextbookHandler) List(w http.ResponseWriter, r *http.Request) {
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

	books, total, err := h.svc.ListLibrary(r.Context(), catalog.ListLibraryInput{
		Status:    queryEnum[domain.TextbookStatus](r, "status"),
		Condition: queryEnum[domain.TextbookCondition](r, "condition"),
		Query:     r.URL.Query().Get("q"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[textbookResponse]{
		Items: toTextbookResponses(books),
		Total: total,
	})
}

// Mine handles GET /api/v1/textbooks/mine.
func (h *TextbookHandler) Mine(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[textbookResponse]{
		Items: toTextbookResponses(books),
		Total: len(books),
	})
}

// Create handles POST /api/v1/textbooks.
func (h *TextbookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req textbookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	book, err := h.svc.CreateTextbook(r.Context(), catalog.CreateTextbookInput{TextbookFields: req.fields()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTextbookResponse(book))
}

// Get handles GET /api/v1/textbooks/{id}.
func (h *TextbookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	book, err := h.svc.GetTextbook(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTextbookResponse(book))
}

// Update handles PATCH /api/v1/textbooks/{id}.
func (h *TextbookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req textbookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	book, err := h.svc.UpdateTextbook(r.Context(), catalog.UpdateTextbookInput{ID: id, TextbookFields: req.fields()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTextbookResponse(book))
}

// SetStatus handles PUT /api/v1/textbooks/{id}/status.
func (h *TextbookHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	book, err := h.svc.SetStatus(r.Context(), id, domain.TextbookStatus(req.Status))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTextbookResponse(book))
}

// Delete handles DELETE /api/v1/textbooks/{id}.
func (h *TextbookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteTextbook(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Locations handles GET /api/v1/locations.
func (h *TextbookHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.svc.ListLocations(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]locationResponse, len(locs))
	for i := range locs {
		out[i] = toLocationResponse(&locs[i])
	}
	writeJSON(w, http.StatusOK, listResponse[locationResponse]{Items: out, Total: len(out)})
}
