// Package admin реализует обработчики панели администратора: сводку,
// список пользователей и выгрузку пользователей в xlsx. Все маршруты
// закрыты Guard и доступны только администратору.
package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/apsaracreations/saree-shop/internal/http/middlewarectx"
	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/models"
	authservice "github.com/apsaracreations/saree-shop/internal/services/auth"
)

// Summary — сводка для панели администратора.
type Summary struct {
	Users    int `json:"users"`
	Admins   int `json:"admins"`
	Products int `json:"products"`
	Visitors int `json:"visitors"`
}

// Handler обслуживает панель администратора.
type Handler struct {
	log       *slog.Logger
	directory Directory
	products  Counter
	visitors  Counter
}

// New создаёт Handler.
func New(log *slog.Logger, directory Directory, products, visitors Counter) *Handler {
	return &Handler{
		log:       log,
		directory: directory,
		products:  products,
		visitors:  visitors,
	}
}

// Guard пропускает только администратора. Анонимный посетитель получает 401,
// вошедший без прав администратора 403. В обоих случаях клиент
// перенаправляется на страницу входа с сообщением.
func Guard(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "handlers.admin.guard"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			v, ok := middlewarectx.VisitorFromContext(r.Context())
			if !ok {
				log.Error("visitor is not resolved")
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Fail("internal error"))
				return
			}
			if !v.Auth.RequireAuthentication(authservice.MsgAdminPageRequired, true) {
				status := http.StatusUnauthorized
				if v.Auth.IsAuthenticated() {
					status = http.StatusForbidden
				}
				log.Info("admin access denied", slog.Int("status", status))
				render.Status(r, status)
				render.JSON(w, r, response.WithRedirect(response.Fail(""), v.Inbox))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Summary godoc
// @Summary Сводка панели администратора
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Result
// @Failure 401 {object} response.Result
// @Failure 403 {object} response.Result
// @Router /admin/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	users := h.directory.List()
	s := Summary{
		Users:    len(users),
		Products: h.products.Len(),
		Visitors: h.visitors.Len(),
	}
	for _, u := range users {
		if u.IsAdmin() {
			s.Admins++
		}
	}
	render.JSON(w, r, response.OKWithData("", s))
}

// Users godoc
// @Summary Пользователи витрины
// @Description Реестр пользователей без паролей.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Result
// @Router /admin/users [get]
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	users := h.directory.List()
	profiles := make([]models.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	render.JSON(w, r, response.OKWithData("", profiles))
}

