package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Burns17/book-pass-on/internal/domain"
)

type notificationService interface {
	Counts(ctx context.Context) (domain.NotificationCounts, error)
	Watch(ctx context.Context) (<-chan domain.NotificationCounts, error)
	PendingActions(ctx context.Context) ([]domain.PendingAction, error)
}

// NotificationHandler serves badge counts, their live stream and the admin
// pending-actions report.
type NotificationHandler struct {
	svc       notificationService
	heartbeat time.Duration
	log       *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler. The stream writes a
// comment line every heartbeat to keep idle proxies from closing it.
func NewNotificationHandler(svc notificationService, heartbeat time.Duration, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		svc:       svc,
		heartbeat: heartbeat,
		log:       logger.With("handler", "notification"),
	}
}

// Counts handles GET /api/v1/notifications.
func (h *NotificationHandler) Counts(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Counts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountsResponse(c))
}

// Stream handles GET /api/v1/notifications/stream as server-sent events.
// Each "counts" event carries the full current counts.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	updates, err := h.svc.Watch(ctx)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rc := http.NewResponseController(w)
	// The server write timeout would otherwise cut the stream.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		h.log.DebugContext(ctx, "clear write deadline", slog.String("error", err.Error()))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.log.ErrorContext(ctx, "streaming unsupported", slog.String("error", err.Error()))
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-updates:
			if !ok {
				return
			}
			data, err := json.Marshal(toCountsResponse(c))
			if err != nil {
				h.log.ErrorContext(ctx, "encode counts", slog.String("error", err.Error()))
				return
			}
			if _, err := fmt.Fprintf(w, "event: counts\ndata: %s\n\n", data); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

// PendingActions handles GET /api/v1/admin/pending-actions.
func (h *NotificationHandler) PendingActions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.svc.PendingActions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]pendingActionResponse, len(actions))
	for i, a := range actions {
		name := a.FirstName
		if a.LastName != "" {
			name += " " + a.LastName
		}
		out[i] = pendingActionResponse{
			UserID:           a.UserID,
			Name:             name,
			Email:            a.Email,
			IncomingPending:  a.IncomingPending,
			ApprovedOutgoing: a.ApprovedOutgoing,
		}
	}
	writeJSON(w, http.StatusOK, listResponse[pendingActionResponse]{Items: out, Total: len(out)})
}
