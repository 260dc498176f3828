package rest

import (
	"net/http"

	"github.com/Burns17/book-pass-on/internal/transport/rest/loader"
)

//go:generate moq -out mocks_test.go -pkg rest . catalogService ledgerService messagingService notificationService reportService userService registryService

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health       *HealthHandler
	Textbook     *TextbookHandler
	Request      *RequestHandler
	Message      *MessageHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Profile      *ProfileHandler
	Admin        *AdminHandler
}

// NewRouter mounts health checks at the root and the API under /api/v1.
// API handlers get per-request loaders.
func NewRouter(h Handlers, repos *loader.Repos) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/v1/textbooks", h.Textbook.List)
	api.HandleFunc("POST /api/v1/textbooks", h.Textbook.Create)
	api.HandleFunc("GET /api/v1/textbooks/mine", h.Textbook.Mine)
	api.HandleFunc("GET /api/v1/textbooks/{id}", h.Textbook.Get)
	api.HandleFunc("PATCH /api/v1/textbooks/{id}", h.Textbook.Update)
	api.HandleFunc("DELETE /api/v1/textbooks/{id}", h.Textbook.Delete)
	api.HandleFunc("PUT /api/v1/textbooks/{id}/status", h.Textbook.SetStatus)
	api.HandleFunc("GET /api/v1/locations", h.Textbook.Locations)

	api.HandleFunc("POST /api/v1/requests", h.Request.Create)
	api.HandleFunc("GET /api/v1/requests/outgoing", h.Request.Outgoing)
	api.HandleFunc("GET /api/v1/requests/incoming", h.Request.Incoming)
	api.HandleFunc("GET /api/v1/requests/borrowed", h.Request.Borrowed)
	api.HandleFunc("GET /api/v1/requests/{id}", h.Request.Get)
	api.HandleFunc("POST /api/v1/requests/{id}/approve", h.Request.Approve)
	api.HandleFunc("POST /api/v1/requests/{id}/reject", h.Request.Reject)
	api.HandleFunc("POST /api/v1/requests/{id}/pickup", h.Request.Pickup)
	api.HandleFunc("POST /api/v1/requests/{id}/return", h.Request.Return)
	api.HandleFunc("GET /api/v1/requests/{id}/messages", h.Message.List)
	api.HandleFunc("POST /api/v1/requests/{id}/messages", h.Message.Post)

	api.HandleFunc("GET /api/v1/notifications", h.Notification.Counts)
	api.HandleFunc("GET /api/v1/notifications/stream", h.Notification.Stream)

	api.HandleFunc("POST /api/v1/reports", h.Report.Create)

	api.HandleFunc("GET /api/v1/me/profile", h.Profile.Get)
	api.HandleFunc("POST /api/v1/me/profile", h.Profile.Create)
	api.HandleFunc("PATCH /api/v1/me/profile", h.Profile.Update)

	api.HandleFunc("GET /api/v1/admin/reports", h.Report.List)
	api.HandleFunc("PUT /api/v1/admin/reports/{id}", h.Report.Close)
	api.HandleFunc("GET /api/v1/admin/users", h.Admin.ListUsers)
	api.HandleFunc("PUT /api/v1/admin/users/{id}/role", h.Admin.SetRole)
	api.HandleFunc("GET /api/v1/admin/registry", h.Admin.ListRegistry)
	api.HandleFunc("POST /api/v1/admin/registry", h.Admin.AddStudent)
	api.HandleFunc("POST /api/v1/admin/registry/import", h.Admin.ImportStudents)
	api.HandleFunc("DELETE /api/v1/admin/registry/{id}", h.Admin.DeactivateStudent)
	api.HandleFunc("PUT /api/v1/admin/registry/{id}/active", h.Admin.ReactivateStudent)
	api.HandleFunc("GET /api/v1/admin/pending-actions", h.Notification.PendingActions)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("/api/", loader.Middleware(repos)(api))

	return mux
}
