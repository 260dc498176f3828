// Package report handles abuse reports and their moderation.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go . reportRepo

const maxReasonLength = 1000

type reportRepo interface {
	Create(ctx context.Context, rep *domain.Report) error
	List(ctx context.Context, status *domain.ReportStatus) ([]domain.Report, error)
	Close(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error)
}

// Service files and moderates reports.
type Service struct {
	reports reportRepo
	log     *slog.Logger
}

// NewService creates a new report service.
func NewService(log *slog.Logger, reports reportRepo) *Service {
	return &Service{
		reports: reports,
		log:     log.With("service", "report"),
	}
}

// CreateReportInput holds the parameters for filing a report.
type CreateReportInput struct {
	TargetType domain.ReportTarget
	TargetID   uuid.UUID
	Reason     string
}

// Validate checks all fields and collects all errors.
func (i CreateReportInput) Validate() error {
	var errs []domain.FieldError
	if !i.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Message: "must be textbook, user or message"})
	}
	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	} else if utf8.RuneCountInString(reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateReport files a pending report by the caller.
func (s *Service) CreateReport(ctx context.Context, input CreateReportInput) (*domain.Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rep := &domain.Report{
		ID:         uuid.New(),
		ReporterID: userID,
		TargetType: input.TargetType,
		TargetID:   input.TargetID,
		Reason:     strings.TrimSpace(input.Reason),
		Status:     domain.ReportStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, fmt.Errorf("report.CreateReport: %w", err)
	}

	s.log.InfoContext(ctx, "report filed",
		slog.String("report_id", rep.ID.String()),
		slog.String("target_type", rep.TargetType.String()),
	)
	return rep, nil
}

// ListReports returns reports, optionally filtered by status (admin only).
func (s *Service) ListReports(ctx context.Context, status *domain.ReportStatus) ([]domain.Report, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}

	reps, err := s.reports.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("report.ListReports: %w", err)
	}
	return reps, nil
}

// CloseReport resolves or dismisses a pending report (admin only).
func (s *Service) CloseReport(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if status != domain.ReportStatusResolved && status != domain.ReportStatusDismissed {
		return nil, domain.NewValidationError("status", "must be resolved or dismissed")
	}

	rep, err := s.reports.Close(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("report.CloseReport: %w", err)
	}

	s.log.InfoContext(ctx, "report closed",
		slog.String("report_id", id.String()),
		slog.String("status", status.String()),
	)
	return rep, nil
}
