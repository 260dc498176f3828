// Package messaging implements the per-request message thread between the
// borrower and the textbook owner.
package messaging

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

//go:generate moq -out mocks_test.go . messageRepo requestRepo textbookRepo

// MaxBodyLength is the maximum message length in characters after trimming.
const MaxBodyLength = 2000

type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Message, error)
}

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
}

type textbookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Textbook, error)
}

// Service posts and lists request messages.
type Service struct {
	messages  messageRepo
	requests  requestRepo
	textbooks textbookRepo
	log       *slog.Logger
}

// NewService creates a new messaging service.
func NewService(log *slog.Logger, messages messageRepo, requests requestRepo, textbooks textbookRepo) *Service {
	return &Service{
		messages:  messages,
		requests:  requests,
		textbooks: textbooks,
		log:       log.With("service", "messaging"),
	}
}

// PostMessageInput holds the parameters for posting a message.
type PostMessageInput struct {
	RequestID uuid.UUID
	Body      string
}

// Validate checks all fields and collects all errors.
func (i PostMessageInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	} else if utf8.RuneCountInString(body) > MaxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: fmt.Sprintf("max %d characters", MaxBodyLength)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PostMessage appends a user message to the request thread. The caller
// must take part in the request.
func (s *Service) PostMessage(ctx context.Context, input PostMessageInput) (*domain.Message, error) {
	senderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkParticipant(ctx, input.RequestID, senderID); err != nil {
		return nil, fmt.Errorf("messaging.PostMessage: %w", err)
	}

	msg := &domain.Message{
		ID:        uuid.New(),
		RequestID: input.RequestID,
		FromID:    senderID,
		Kind:      domain.MessageKindUser,
		Body:      strings.TrimSpace(input.Body),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("messaging.PostMessage: %w", err)
	}

	s.log.InfoContext(ctx, "message posted",
		slog.String("request_id", input.RequestID.String()),
		slog.String("message_id", msg.ID.String()),
	)
	return msg, nil
}

// ListMessages returns the full thread of a request, oldest first.
func (s *Service) ListMessages(ctx context.Context, requestID uuid.UUID) ([]domain.Message, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkParticipant(ctx, requestID, userID); err != nil {
		return nil, fmt.Errorf("messaging.ListMessages: %w", err)
	}

	msgs, err := s.messages.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("messaging.ListMessages: %w", err)
	}
	return msgs, nil
}

// checkParticipant allows the borrower, the lender and whoever owns the
// textbook now.
func (s *Service) checkParticipant(ctx context.Context, requestID, userID uuid.UUID) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.IsParticipant(userID) {
		return nil
	}

	tb, err := s.textbooks.GetByID(ctx, req.TextbookID)
	if err != nil {
		return err
	}
	if tb.IsOwnedBy(userID) {
		return nil
	}
	return domain.ErrForbidden
}
