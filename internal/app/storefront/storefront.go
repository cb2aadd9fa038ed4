package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/streadway/amqp"

	"github.com/apsaracreations/saree-shop/internal/analytics"
	"github.com/apsaracreations/saree-shop/internal/config"
	"github.com/apsaracreations/saree-shop/internal/http/middlewarectx"
	"github.com/apsaracreations/saree-shop/internal/lib/jwt"
	"github.com/apsaracreations/saree-shop/internal/lib/rabbitmq"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/metrics"
	authservice "github.com/apsaracreations/saree-shop/internal/services/auth"
	catalogservice "github.com/apsaracreations/saree-shop/internal/services/catalog"
	"github.com/apsaracreations/saree-shop/internal/visitor"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 15 * time.Second
)

type App struct {
	server   *http.Server
	logger   *slog.Logger
	registry *visitor.Registry
	backends *backends
	amqpConn *amqp.Connection
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	b := newBackends(cfg, m)
	users, err := b.strategy(ctx, cfg.Storage.Users)
	if err != nil {
		b.Close(logger)
		return nil, err
	}
	sessionStrategy, err := b.strategy(ctx, cfg.Storage.Sessions)
	if err != nil {
		b.Close(logger)
		return nil, err
	}
	cartStrategy, err := b.strategy(ctx, cfg.Storage.Carts)
	if err != nil {
		b.Close(logger)
		return nil, err
	}

	tracker, conn, err := newTracker(cfg.Analytics, logger)
	if err != nil {
		b.Close(logger)
		return nil, err
	}

	dir := authservice.NewDirectory(ctx, logger, users)
	registry := visitor.NewRegistry(logger, dir, sessionStrategy, cartStrategy, visitor.Config{
		BasePath:         cfg.BasePath,
		SessionTimeout:   cfg.Session.Timeout,
		CartMaxAge:       cfg.MaxAge,
		AutosaveInterval: cfg.AutosaveInterval,
		IdleTTL:          cfg.IdleTTL,
	}, m)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Config:    cfg,
		Directory: dir,
		Registry:  registry,
		Catalog:   catalogservice.New(),
		Tokens:    jwt.NewJWTMaker(cfg.JWTSecretKey, 0),
		Cookies:   middlewarectx.NewCookieStore(cfg.CookieSecret, cfg.Env != "local"),
		Tracker:   tracker,
		Metrics:   m,
		Gatherer:  reg,
		Checks:    b.checks,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		registry: registry,
		backends: b,
		amqpConn: conn,
	}, nil
}

// newTracker подключает аналитику к RabbitMQ. Без URL брокера события только логируются.
func newTracker(cfg config.Analytics, logger *slog.Logger) (analytics.Tracker, *amqp.Connection, error) {
	const op = "storefront.newTracker"
	if cfg.AMQPURL == "" {
		return analytics.NewLogTracker(logger), nil, nil
	}

	conn, err := rabbitmq.Connect(cfg.AMQPURL, cfg.Retries, cfg.Delay)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, rabbitmq.GetAnalyticsQueues())
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("analytics publisher ready", slog.String("exchange", cfg.Exchange))
	return analytics.NewPublisher(logger, ch, cfg.Exchange), conn, nil
}

func (a *App) Run(ctx context.Context) error {
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		a.registry.Run(sweepCtx, sweepInterval)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	var err error
	select {
	case err = <-errCh:
		// Сервер упал сам: реестр выгружает посетителей при отмене своего контекста.
		stopSweep()
		<-sweepDone
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err = a.server.Shutdown(timeoutCtx)
		<-sweepDone
	}

	a.backends.Close(a.logger)
	if a.amqpConn != nil {
		if cerr := a.amqpConn.Close(); cerr != nil {
			a.logger.Error("failed to close amqp connection", sl.Err(cerr))
		}
	}
	return err
}
