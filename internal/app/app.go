// Package app wires configuration, storage, services and transport into a
// running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/Burns17/book-pass-on/internal/adapter/postgres"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/changefeed"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/location"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/message"
	registryrepo "github.com/Burns17/book-pass-on/internal/adapter/postgres/registry"
	reportrepo "github.com/Burns17/book-pass-on/internal/adapter/postgres/report"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/request"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/textbook"
	userrepo "github.com/Burns17/book-pass-on/internal/adapter/postgres/user"
	"github.com/Burns17/book-pass-on/internal/auth"
	"github.com/Burns17/book-pass-on/internal/config"
	"github.com/Burns17/book-pass-on/internal/domain"
	"github.com/Burns17/book-pass-on/internal/service/catalog"
	"github.com/Burns17/book-pass-on/internal/service/ledger"
	"github.com/Burns17/book-pass-on/internal/service/messaging"
	"github.com/Burns17/book-pass-on/internal/service/notification"
	"github.com/Burns17/book-pass-on/internal/service/registry"
	"github.com/Burns17/book-pass-on/internal/service/report"
	"github.com/Burns17/book-pass-on/internal/service/user"
	"github.com/Burns17/book-pass-on/internal/transport/middleware"
	"github.com/Burns17/book-pass-on/internal/transport/rest"
	"github.com/Burns17/book-pass-on/internal/transport/rest/loader"
)

const rateLimitCleanup = 5 * time.Minute

// Run loads configuration, connects to PostgreSQL and serves HTTP until ctx
// is cancelled. The change-feed listener, when enabled, shares the server's
// lifetime: if either fails, both stop.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	hub := notification.NewHub(cfg.Notifications.SubscriberBuffer)
	defer hub.Close()

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler := newHandler(cfg, pool, hub, limiter, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		// Open event streams end with the hub; close it before draining.
		hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if !cfg.Notifications.ListenDisabled {
		listener := changefeed.NewListener(pool, cfg.Notifications.Channel, cfg.Notifications.ReconnectDelay, hub, logger)
		g.Go(func() error {
			return listener.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

func newHandler(
	cfg *config.Config,
	pool *pgxpool.Pool,
	hub *notification.Hub,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	textbooks := textbook.New(pool)
	requests := request.New(pool, txm)
	messages := message.New(pool)
	locations := location.New(pool)
	users := userrepo.New(pool)
	reports := reportrepo.New(pool)
	students := registryrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	userSvc := user.NewService(logger, users, students)
	registrySvc := registry.NewService(logger, students)
	catalogSvc := catalog.NewService(logger, textbooks, users, locations)
	ledgerSvc := ledger.NewService(logger, requests, textbooks, locations, messages, txm,
		inProcessEvents(cfg.Notifications, hub), cfg.Ledger)
	messagingSvc := messaging.NewService(logger, messages, requests, textbooks)
	notificationSvc := notification.NewAggregator(logger, requests, hub)
	reportSvc := report.NewService(logger, reports)

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, hub, BuildVersion()),
		Textbook:     rest.NewTextbookHandler(catalogSvc, logger),
		Request:      rest.NewRequestHandler(ledgerSvc, logger),
		Message:      rest.NewMessageHandler(messagingSvc, logger),
		Notification: rest.NewNotificationHandler(notificationSvc, cfg.Notifications.HeartbeatInterval, logger),
		Report:       rest.NewReportHandler(reportSvc, logger),
		Profile:      rest.NewProfileHandler(userSvc, logger),
		Admin:        rest.NewAdminHandler(userSvc, registrySvc, logger),
	}, &loader.Repos{
		Textbook: textbooks,
		Location: locations,
		Profile:  users,
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Roles(userSvc, logger),
		middleware.Logger(logger),
		limiter.Limit(cfg.Server.RateLimitPerMinute),
	)(router)
}

// inProcessEvents returns the hub as the ledger's publisher when the
// database change feed is off, so that streams still see ledger changes.
// With the feed on, the triggers publish and the ledger stays silent.
func inProcessEvents(cfg config.NotificationsConfig, hub *notification.Hub) interface {
	Publish(ev domain.ChangeEvent)
} {
	if cfg.ListenDisabled {
		return hub
	}
	return nil
}
