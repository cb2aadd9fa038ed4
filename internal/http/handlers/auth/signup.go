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

// SignupRequest — данные формы регистрации. Проверку полей выполняет хранилище сессии.
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SignupHandler регистрирует пользователя и сразу открывает для него сессию.
type SignupHandler struct {
	log      *slog.Logger
	tokens   Tokens
	observer Observer
}

// NewSignup создаёт SignupHandler.
func NewSignup(log *slog.Logger, tokens Tokens, observer Observer) *SignupHandler {
	return &SignupHandler{log: log, tokens: tokens, observer: observer}
}

// ServeHTTP godoc
// @Summary Регистрация
// @Description Создаёт пользователя с ролью user и открывает сессию.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Данные формы регистрации"
// @Success 201 {object} response.Result
// @Failure 400 {object} response.Result
// @Failure 409 {object} response.Result
// @Router /signup [post]
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	v, ok := visitorOrFail(w, r, log)
	if !ok {
		return
	}

	var req SignupRequest
	if !decode(w, r, log, &req) {
		return
	}

	user, err := v.Auth.Signup(r.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		observe(h.observer, "signup", false)
		failAuth(w, r, log, err)
		return
	}
	observe(h.observer, "signup", true)

	token, err := h.tokens.GenerateToken(v.ID, user.Email, string(user.Role))
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("internal error"))
		return
	}

	log.Info("account created", sl.Visitor(v.ID), slog.String("email", user.Email))
	v.Inbox.Navigate(models.PageHome, "")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.WithRedirect(response.OKWithData(msgSignupSuccess, SessionData{
		User:  user.Profile(),
		Token: token,
	}), v.Inbox))
}
