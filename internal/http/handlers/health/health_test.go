package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apsaracreations/saree-shop/internal/http/handlers/handlerstest"
)

func TestHandler_ServeHTTP(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name         string
		checks       map[string]Check
		wantStatus   int
		expectedBody []string
	}{
		{
			name:         "no checks",
			wantStatus:   http.StatusOK,
			expectedBody: []string{`"status":"ok"`},
		},
		{
			name:         "all healthy",
			checks:       map[string]Check{"sessions": ok, "carts": ok},
			wantStatus:   http.StatusOK,
			expectedBody: []string{`"sessions":"ok"`, `"carts":"ok"`},
		},
		{
			name:         "one dependency down",
			checks:       map[string]Check{"sessions": ok, "carts": down},
			wantStatus:   http.StatusServiceUnavailable,
			expectedBody: []string{`"carts":"unavailable"`, `"status":"degraded"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			New(handlerstest.NoopLogger(), tt.checks).
				ServeHTTP(rec, handlerstest.Request(http.MethodGet, "/api/v1/health", "", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, s := range tt.expectedBody {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}
