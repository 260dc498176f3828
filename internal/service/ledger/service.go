// Package ledger implements the Request Ledger: the borrow request state
// machine, ownership transfer on pickup and returns.
package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/config"
	"github.com/Burns17/book-pass-on/internal/domain"
)

//go:generate moq -out mocks_test.go . requestRepo textbookRepo locationRepo messageRepo txManager eventPublisher

type requestRepo interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error)
	Transition(ctx context.Context, id uuid.UUID, tr domain.Transition, locationID *uuid.UUID) (*domain.Request, error)
	RejectCompeting(ctx context.Context, textbookID, keepID uuid.UUID) (int, error)
	TransferOwnership(ctx context.Context, requestID, textbookID, newOwnerID uuid.UUID, status domain.TextbookStatus) (*domain.Request, error)
	MarkReturned(ctx context.Context, requestID, textbookID uuid.UUID) (*domain.Request, error)
}

type textbookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Textbook, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TextbookStatus) error
}

type locationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
}

type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// eventPublisher receives a change event after every committed mutation.
type eventPublisher interface {
	Publish(ev domain.ChangeEvent)
}

// Service drives borrow requests through their lifecycle.
type Service struct {
	requests  requestRepo
	textbooks textbookRepo
	locations locationRepo
	messages  messageRepo
	tx        txManager
	events    eventPublisher
	cfg       config.LedgerConfig
	log       *slog.Logger
}

// NewService creates a new ledger service. events may be nil when change
// events reach subscribers through the database change feed instead.
func NewService(
	log *slog.Logger,
	requests requestRepo,
	textbooks textbookRepo,
	locations locationRepo,
	messages messageRepo,
	tx txManager,
	events eventPublisher,
	cfg config.LedgerConfig,
) *Service {
	return &Service{
		requests:  requests,
		textbooks: textbooks,
		locations: locations,
		messages:  messages,
		tx:        tx,
		events:    events,
		cfg:       cfg,
		log:       log.With("service", "ledger"),
	}
}

// publish notifies subscribers that req changed. users lists everyone
// whose counts may have moved besides the request's own participants,
// normally the textbook's current owner.
func (s *Service) publish(op string, req *domain.Request, users ...uuid.UUID) {
	if s.events == nil {
		return
	}

	affected := []uuid.UUID{req.BorrowerID, req.LenderID}
	for _, u := range users {
		if u != req.BorrowerID && u != req.LenderID {
			affected = append(affected, u)
		}
	}

	s.events.Publish(domain.ChangeEvent{
		Table:    domain.ChangeTableRequests,
		Op:       op,
		RowID:    req.ID,
		Users:    affected,
		NewState: req.Status.String(),
	})
}
