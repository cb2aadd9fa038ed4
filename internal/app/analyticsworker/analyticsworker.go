// Package analyticsworker собирает приложение, которое читает события подбора из
// RabbitMQ и отдаёт агрегированные счётчики на /metrics.
package analyticsworker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streadway/amqp"

	"github.com/apsaracreations/saree-shop/internal/analytics"
	"github.com/apsaracreations/saree-shop/internal/config"
	"github.com/apsaracreations/saree-shop/internal/lib/rabbitmq"
	"github.com/apsaracreations/saree-shop/internal/metrics"
)

type App struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	aggregator *analytics.Aggregator
	server     *http.Server
	workers    int
	logger     *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "analyticsworker.New"
	if cfg.AMQPURL == "" {
		return nil, fmt.Errorf("%s: analytics.amqp_url is not set", op)
	}

	conn, err := rabbitmq.Connect(cfg.AMQPURL, cfg.Retries, cfg.Delay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, rabbitmq.GetAnalyticsQueues())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	aggregator := analytics.NewAggregator(logger, metrics.NewAnalytics(reg))

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &App{
		conn:       conn,
		ch:         ch,
		aggregator: aggregator,
		server: &http.Server{
			Addr:              cfg.WorkerAddress,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		workers: cfg.Workers,
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	for _, q := range rabbitmq.GetAnalyticsQueues() {
		err := rabbitmq.ConsumerMessage(ctx, a.logger, a.ch, q.QueueName, a.workers, a.aggregator.HandleRecommendation)
		if err != nil {
			a.logger.Error("failed to start consumer", slog.String("queue", q.QueueName), slog.Any("err", err))
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("metrics server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		a.logger.Info("analytics worker shutting down gracefully")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = a.server.Shutdown(timeoutCtx)
	}

	if cerr := a.ch.Close(); cerr != nil {
		a.logger.Error("failed to close channel", slog.Any("err", cerr))
	}
	if cerr := a.conn.Close(); cerr != nil {
		a.logger.Error("failed to close connection", slog.Any("err", cerr))
	}
	return err
}
