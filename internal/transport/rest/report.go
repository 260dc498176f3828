package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/internal/service/report"
)

type reportService interface {
	CreateReport(ctx context.Context, input report.CreateReportInput) (*domain.Report, error)
	ListReports(ctx context.Context, status *domain.ReportStatus) ([]domain.Report, error)
	CloseReport(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error)
}

// ReportHandler serves abuse reports.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type createReportRequest struct {
	TargetType string    `json:"targetType"`
	TargetID   uuid.UUID `json:"targetId"`
	Reason     string    `json:"reason"`
}

// Create handles POST /api/v1/reports.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rep, err := h.svc.CreateReport(r.Context(), report.CreateReportInput{
		TargetType: domain.ReportTarget(req.TargetType),
		TargetID:   req.TargetID,
		Reason:     req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReportResponse(rep))
}

// List handles GET /api/v1/admin/reports?status=.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reps, err := h.svc.ListReports(r.Context(), queryEnum[domain.ReportStatus](r, "status"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]reportResponse, len(reps))
	for i := range reps {
		out[i] = toReportResponse(&reps[i])
	}
	writeJSON(w, http.StatusOK, listResponse[reportResponse]{Items: out, Total: len(out)})
}

// Close handles PUT /api/v1/admin/reports/{id} with a resolved or
// dismissed status.
func (h *ReportHandler) Close(w http.ResponseWriter, r *http.Request) {
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

	rep, err := h.svc.CloseReport(r.Context(), id, domain.ReportStatus(req.Status))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}
