package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/internal/service/messaging"
)

type messagingService interface {
	PostMessage(ctx context.Context, input messaging.PostMessageInput) (*domain.Message, error)
	ListMessages(ctx context.Context, requestID uuid.UUID) ([]domain.Message, error)
}

// MessageHandler serves the message thread of a request.
type MessageHandler struct {
	svc messagingService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messagingService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "message")}
}

type postMessageRequest struct {
	Body string `json:"body"`
}

// List handles GET /api/v1/requests/{id}/messages.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msgs, err := h.svc.ListMessages(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]messageResponse, len(msgs))
	for i := range msgs {
		out[i] = toMessageResponse(&msgs[i])
	}
	writeJSON(w, http.StatusOK, listResponse[messageResponse]{Items: out, Total: len(out)})
}

// Post handles POST /api/v1/requests/{id}/messages.
func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req postMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg, err := h.svc.PostMessage(r.Context(), messaging.PostMessageInput{RequestID: id, Body: req.Body})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageResponse(msg))
}
