package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/apsaracreations/saree-shop/internal/app/analyticsworker"
	"github.com/apsaracreations/saree-shop/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting analytics worker", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := analyticsworker.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize analytics worker", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("analytics worker stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("analytics worker stopped gracefully")
}
