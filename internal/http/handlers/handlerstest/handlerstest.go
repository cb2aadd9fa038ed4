// Package handlerstest содержит помощники для тестов HTTP-обработчиков:
// посетителя на хранилищах в памяти и запрос с этим посетителем в контексте.
package handlerstest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/apsaracreations/saree-shop/internal/http/middlewarectx"
	"github.com/apsaracreations/saree-shop/internal/services/auth"
	"github.com/apsaracreations/saree-shop/internal/storage/memory"
	"github.com/apsaracreations/saree-shop/internal/visitor"
)

// BasePath — базовый путь сайта в тестах.
const BasePath = "/saree-shop/"

// NoopLogger возвращает логгер, который ничего не пишет.
func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

// Env — реестр посетителей на хранилищах в памяти.
type Env struct {
	Directory *auth.Directory
	Registry  *visitor.Registry
}

// NewEnv создаёт реестр с пользователями по умолчанию и выгружает его по окончании теста.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	log := NoopLogger()
	dir := auth.NewDirectory(context.Background(), log, memory.New())
	reg := visitor.NewRegistry(log, dir, memory.New(), memory.New(), visitor.Config{BasePath: BasePath}, nil)
	t.Cleanup(func() { reg.Close(context.Background()) })
	return &Env{Directory: dir, Registry: reg}
}

// Visitor возвращает посетителя id.
func (e *Env) Visitor(id string) *visitor.Visitor {
	return e.Registry.Get(context.Background(), id)
}

// LoggedIn возвращает посетителя id, вошедшего под email/password.
func (e *Env) LoggedIn(t *testing.T, id, email, password string) *visitor.Visitor {
	t.Helper()
	v := e.Visitor(id)
	if _, err := v.Auth.Login(context.Background(), email, password); err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	return v
}

// Request собирает запрос с посетителем v, request id и URL-параметрами chi.
// params задаются парами ключ-значение.
func Request(method, target, body string, v *visitor.Visitor, params ...string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
	if v != nil {
		ctx = context.WithValue(ctx, middlewarectx.VisitorKey, v)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for i := 0; i+1 < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}
