// Package auth реализует HTTP-обработчики регистрации, входа, выхода и
// чтения сессии посетителя.
//
// Обработчики работают с хранилищем сессии посетителя, которого определил
// middlewarectx.VisitorMiddleware. При успешном входе возвращается bearer-токен,
// привязанный к посетителю, и перенаправление на главную страницу.
package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/apsaracreations/saree-shop/internal/http/middlewarectx"
	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
	authservice "github.com/apsaracreations/saree-shop/internal/services/auth"
	"github.com/apsaracreations/saree-shop/internal/visitor"
)

const (
	msgSignupSuccess = "Account created successfully!"
	msgLoginSuccess  = "Login successful!"
	msgLogoutSuccess = "Logged out"
)

// SessionData — данные ответа после входа или регистрации.
type SessionData struct {
	User  models.Profile `json:"user"`
	Token string         `json:"token"`
}

// visitorOrFail достаёт посетителя из контекста или отвечает 500.
func visitorOrFail(w http.ResponseWriter, r *http.Request, log *slog.Logger) (*visitor.Visitor, bool) {
	v, ok := middlewarectx.VisitorFromContext(r.Context())
	if !ok {
		log.Error("visitor is not resolved")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("internal error"))
		return nil, false
	}
	return v, true
}

func decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("invalid request body"))
		return false
	}
	return true
}

// failAuth отвечает на ошибку хранилища сессии. Ошибки форм и учётных данных
// показываются посетителю как есть.
func failAuth(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	msg, ok := authservice.Message(err)
	if !ok {
		log.Error("auth operation failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("internal error"))
		return
	}
	log.Info("auth rejected", slog.String("reason", msg))
	switch {
	case errors.Is(err, authservice.ErrInvalidCredentials):
		render.Status(r, http.StatusUnauthorized)
	case errors.Is(err, authservice.ErrDuplicateUser):
		render.Status(r, http.StatusConflict)
	default:
		render.Status(r, http.StatusBadRequest)
	}
	render.JSON(w, r, response.Fail(msg))
}

func observe(o Observer, event string, ok bool) {
	if o != nil {
		o.AuthEvent(event, ok)
	}
}
