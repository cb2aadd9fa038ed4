package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
)

// LoginRequest — учётные данные для входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler открывает сессию посетителя и выдаёт bearer-токен.
type LoginHandler struct {
	log      *slog.Logger
	tokens   Tokens
	observer Observer
}

// NewLogin создаёт LoginHandler.
func NewLogin(log *slog.Logger, tokens Tokens, observer Observer) *LoginHandler {
	return &LoginHandler{log: log, tokens: tokens, observer: observer}
}

// ServeHTTP godoc
// @Summary Вход
// @Description Проверяет email и пароль, открывает сессию и возвращает токен.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Учётные данные"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.Result
// @Failure 401 {object} response.Result
// @Router /login [post]
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	v, ok := visitorOrFail(w, r, log)
	if !ok {
		return
	}

	var req LoginRequest
	if !decode(w, r, log, &req) {
		return
	}

	user, err := v.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		observe(h.observer, "login", false)
		failAuth(w, r, log, err)
		return
	}
	observe(h.observer, "login", true)

	token, err := h.tokens.GenerateToken(v.ID, user.Email, string(user.Role))
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("internal error"))
		return
	}

	log.Info("login success", sl.Visitor(v.ID), slog.String("email", user.Email))
	v.Inbox.Navigate(models.PageHome, "")
	render.JSON(w, r, response.WithRedirect(response.OKWithData(msgLoginSuccess, SessionData{
		User:  user.Profile(),
		Token: token,
	}), v.Inbox))
}
