package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/apsaracreations/saree-shop/internal/http/response"
)

// MeHandler возвращает пользователя текущей сессии.
type MeHandler struct {
	log *slog.Logger
}

// NewMe создаёт MeHandler.
func NewMe(log *slog.Logger) *MeHandler {
	return &MeHandler{log: log}
}

// ServeHTTP godoc
// @Summary Текущий пользователь
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Result
// @Failure 401 {object} response.Result
// @Router /me [get]
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	v, ok := visitorOrFail(w, r, log)
	if !ok {
		return
	}

	user, ok := v.Auth.CurrentUser()
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.WithRedirect(response.Fail("not logged in"), v.Inbox))
		return
	}
	render.JSON(w, r, response.WithRedirect(response.OKWithData("", user.Profile()), v.Inbox))
}

// MessageHandler отдаёт и забирает сообщение для страницы входа, оставленное
// при отказе в доступе или по истечении сессии.
type MessageHandler struct {
	log *slog.Logger
}

// NewMessage создаёт MessageHandler.
func NewMessage(log *slog.Logger) *MessageHandler {
	return &MessageHandler{log: log}
}

// ServeHTTP godoc
// @Summary Сообщение страницы входа
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Result
// @Router /auth/message [get]
func (h *MessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.message"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	v, ok := visitorOrFail(w, r, log)
	if !ok {
		return
	}

	render.JSON(w, r, response.OK(v.Inbox.TakeMessage()))
}
