package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
)

// LogoutHandler завершает сессию посетителя. Повторный выход безопасен.
type LogoutHandler struct {
	log      *slog.Logger
	observer Observer
}

// NewLogout создаёт LogoutHandler.
func NewLogout(log *slog.Logger, observer Observer) *LogoutHandler {
	return &LogoutHandler{log: log, observer: observer}
}

// ServeHTTP godoc
// @Summary Выход
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Result
// @Router /logout [post]
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	v, ok := visitorOrFail(w, r, log)
	if !ok {
		return
	}

	v.Auth.Logout(r.Context())
	observe(h.observer, "logout", true)

	log.Info("logged out", sl.Visitor(v.ID))
	render.JSON(w, r, response.WithRedirect(response.OK(msgLogoutSuccess), v.Inbox))
}
