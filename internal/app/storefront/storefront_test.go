package storefront

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apsaracreations/saree-shop/internal/config"
	authservice "github.com/apsaracreations/saree-shop/internal/services/auth"
	"github.com/apsaracreations/saree-shop/internal/storage/memory"
	"github.com/apsaracreations/saree-shop/internal/visitor"
)

func TestApp_RunStopsRegistryWhenServerFails(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := authservice.NewDirectory(context.Background(), logger, memory.New())
	registry := visitor.NewRegistry(logger, dir, memory.New(), memory.New(), visitor.Config{BasePath: "/saree-shop/"}, nil)
	registry.Get(context.Background(), "visitor-1")
	require.Equal(t, 1, registry.Len())

	// Занятый порт: ListenAndServe сразу возвращает ошибку.
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	app := &App{
		server:   &http.Server{Addr: busy.Addr().String(), Handler: http.NotFoundHandler()},
		logger:   logger,
		registry: registry,
		backends: newBackends(&config.Config{}, nil),
	}

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the server failed")
	}
	assert.Zero(t, registry.Len(), "visitors are detached when the sweep loop stops")
}
