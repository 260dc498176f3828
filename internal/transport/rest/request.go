package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/internal/service/ledger"
	"github.com/Burns17/book-pass-on/internal/transport/rest/loader"
)

type ledgerService interface {
	CreateRequest(ctx context.Context, input ledger.CreateRequestInput) (*domain.Request, error)
	Approve(ctx context.Context, input ledger.ApproveInput) (*domain.Request, error)
	Reject(ctx context.Context, requestID uuid.UUID) (*domain.Request, error)
	ConfirmPickup(ctx context.Context, input ledger.ConfirmPickupInput) (*domain.Request, error)
	Return(ctx context.Context, input ledger.ReturnInput) (*domain.Request, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	ListOutgoing(ctx context.Context, status *domain.RequestStatus) ([]domain.Request, error)
	ListIncoming(ctx context.Context, status *domain.RequestStatus) ([]domain.Request, error)
	ListBorrowed(ctx context.Context) ([]domain.Request, error)
}

// RequestHandler serves the borrow request endpoints. Responses embed the
// textbook, meeting location and both parties, loaded in batches through
// the per-request loaders.
type RequestHandler struct {
	svc ledgerService
	log *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc ledgerService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, log: logger.With("handler", "request")}
}

type createRequestRequest struct {
	TextbookID   uuid.UUID  `json:"textbookId"`
	LocationID   *uuid.UUID `json:"locationId"`
	ProposedTime *time.Time `json:"proposedTime"`
}

type approveRequest struct {
	LocationID uuid.UUID `json:"locationId"`
}

type pickupRequest struct {
	TextbookID uuid.UUID `json:"textbookId"`
	NewOwnerID uuid.UUID `json:"newOwnerId"`
}

type returnRequest struct {
	TextbookID uuid.UUID `json:"textbookId"`
}

// Create handles POST /api/v1/requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateRequest(r.Context(), ledger.CreateRequestInput{
		TextbookID:   req.TextbookID,
		LocationID:   req.LocationID,
		ProposedTime: req.ProposedTime,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusCreated, created)
}

// Get handles GET /api/v1/requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := h.svc.GetRequest(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, req)
}

// Outgoing handles GET /api/v1/requests/outgoing?status=.
func (h *RequestHandler) Outgoing(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListOutgoing(r.Context(), queryEnum[domain.RequestStatus](r, "status"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeList(w, r, reqs)
}

// Incoming handles GET /api/v1/requests/incoming?status=.
func (h *RequestHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListIncoming(r.Context(), queryEnum[domain.RequestStatus](r, "status"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeList(w, r, reqs)
}

// Borrowed handles GET /api/v1/requests/borrowed.
func (h *RequestHandler) Borrowed(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListBorrowed(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeList(w, r, reqs)
}

// Approve handles POST /api/v1/requests/{id}/approve.
func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req approveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	approved, err := h.svc.Approve(r.Context(), ledger.ApproveInput{RequestID: id, LocationID: req.LocationID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, approved)
}

// Reject handles POST /api/v1/requests/{id}/reject.
func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rejected, err := h.svc.Reject(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, rejected)
}

// Pickup handles POST /api/v1/requests/{id}/pickup.
func (h *RequestHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req pickupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	completed, err := h.svc.ConfirmPickup(r.Context(), ledger.ConfirmPickupInput{
		RequestID:  id,
		TextbookID: req.TextbookID,
		NewOwnerID: req.NewOwnerID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, completed)
}

// Return handles POST /api/v1/requests/{id}/return.
func (h *RequestHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req returnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	returned, err := h.svc.Return(r.Context(), ledger.ReturnInput{RequestID: id, TextbookID: req.TextbookID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, returned)
}

func (h *RequestHandler) writeOne(w http.ResponseWriter, r *http.Request, status int, req *domain.Request) {
	out, err := embed(r.Context(), []domain.Request{*req})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, out[0])
}

func (h *RequestHandler) writeList(w http.ResponseWriter, r *http.Request, reqs []domain.Request) {
	out, err := embed(r.Context(), reqs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[requestResponse]{Items: out, Total: len(out)})
}

// embed converts requests and attaches their summaries. All loads are
// issued before any is awaited so that each loader runs one batch.
func embed(ctx context.Context, reqs []domain.Request) ([]requestResponse, error) {
	l := loader.FromContext(ctx)

	type pending struct {
		textbook dataloader.Thunk[*domain.Textbook]
		location dataloader.Thunk[*domain.Location]
		borrower dataloader.Thunk[*domain.Profile]
		lender   dataloader.Thunk[*domain.Profile]
	}

	thunks := make([]pending, len(reqs))
	for i, req := range reqs {
		thunks[i].textbook = l.TextbookByID.Load(ctx, req.TextbookID)
		if req.LocationID != nil {
			thunks[i].location = l.LocationByID.Load(ctx, *req.LocationID)
		}
		thunks[i].borrower = l.ProfileByID.Load(ctx, req.BorrowerID)
		thunks[i].lender = l.ProfileByID.Load(ctx, req.LenderID)
	}

	out := make([]requestResponse, len(reqs))
	for i := range reqs {
		resp := toRequestResponse(&reqs[i])

		book, err := thunks[i].textbook()
		if err != nil {
			return nil, err
		}
		if book != nil {
			resp.Textbook = &textbookSummary{ID: book.ID, Title: book.Title, Author: book.Author, Status: book.Status.String()}
		}

		if thunks[i].location != nil {
			loc, err := thunks[i].location()
			if err != nil {
				return nil, err
			}
			if loc != nil {
				lr := toLocationResponse(loc)
				resp.Location = &lr
			}
		}

		if resp.Borrower, err = person(thunks[i].borrower); err != nil {
			return nil, err
		}
		if resp.Lender, err = person(thunks[i].lender); err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

func person(thunk dataloader.Thunk[*domain.Profile]) (*personSummary, error) {
	p, err := thunk()
	if err != nil || p == nil {
		return nil, err
	}
	return &personSummary{ID: p.ID, Name: p.FullName()}, nil
}
