// Package changefeed turns PostgreSQL NOTIFY messages emitted by the
// requests and textbooks triggers into domain change events.
package changefeed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"

	"github.com/Burns17/book-pass-on/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Publisher receives decoded change events.
type Publisher interface {
	Publish(ev domain.ChangeEvent)
}

type payload struct {
	Table string      `json:"table"`
	Op    string      `json:"op"`
	ID    uuid.UUID   `json:"id"`
	Users []uuid.UUID `json:"users"`
	State string      `json:"state"`
}

// Decode parses a trigger payload.
func Decode(raw []byte) (domain.ChangeEvent, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("decode change payload: %w", err)
	}

	table := domain.ChangeTable(p.Table)
	if table != domain.ChangeTableRequests && table != domain.ChangeTableTextbooks {
		return domain.ChangeEvent{}, fmt.Errorf("decode change payload: unknown table %q", p.Table)
	}

	return domain.ChangeEvent{
		Table:    table,
		Op:       p.Op,
		RowID:    p.ID,
		Users:    p.Users,
		NewState: p.State,
	}, nil
}

// Listener holds one pooled connection in LISTEN mode and forwards every
// notification to a Publisher. It reconnects after connection failures
// until its context is cancelled.
type Listener struct {
	pool           *pgxpool.Pool
	channel        string
	reconnectDelay time.Duration
	pub            Publisher
	log            *slog.Logger

	readyOnce sync.Once
	ready     chan struct{}
}

// NewListener creates a Listener for channel.
func NewListener(pool *pgxpool.Pool, channel string, reconnectDelay time.Duration, pub Publisher, log *slog.Logger) *Listener {
	return &Listener{
		pool:           pool,
		channel:        channel,
		reconnectDelay: reconnectDelay,
		pub:            pub,
		log:            log.With("component", "changefeed"),
		ready:          make(chan struct{}),
	}
}

// Ready is closed once the first LISTEN succeeded.
func (l *Listener) Ready() <-chan struct{} {
	return l.ready
}

// Run blocks until ctx is cancelled. It only returns a nil error.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}

		l.log.WarnContext(ctx, "change feed interrupted, reconnecting",
			slog.String("error", err.Error()),
			slog.Duration("delay", l.reconnectDelay),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		// Leave the pooled connection clean for its next user.
		_, _ = conn.Exec(context.Background(), "UNLISTEN *")
		conn.Release()
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen %s: %w", l.channel, err)
	}

	l.log.InfoContext(ctx, "listening for changes", slog.String("channel", l.channel))
	l.readyOnce.Do(func() { close(l.ready) })

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		ev, err := Decode([]byte(n.Payload))
		if err != nil {
			l.log.WarnContext(ctx, "dropping change notification", slog.String("error", err.Error()))
			continue
		}

		l.pub.Publish(ev)
	}
}
