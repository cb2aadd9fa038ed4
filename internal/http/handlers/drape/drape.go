// Package drape реализует HTTP-обработчики виртуальной примерки: список сари
// и накладку с описанием выбранного сари.
package drape

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	drapeservice "github.com/apsaracreations/saree-shop/internal/services/drape"
)

// Handler обслуживает справочник примерки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// List godoc
// @Summary Сари для примерки
// @Tags Drape
// @Produce json
// @Success 200 {object} response.Result
// @Router /drape/sarees [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData("", h.service.List()))
}

// Read godoc
// @Summary Накладка сари
// @Tags Drape
// @Produce json
// @Param id path string true "Идентификатор сари"
// @Success 200 {object} response.Result
// @Failure 404 {object} response.Result
// @Router /drape/sarees/{id} [get]
func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.drape.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	overlay, err := h.service.Overlay(id)
	if errors.Is(err, drapeservice.ErrUnknownSaree) {
		log.Info("unknown saree", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Fail("Saree not found"))
		return
	}
	if err != nil {
		log.Error("failed to read overlay", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("internal error"))
		return
	}
	render.JSON(w, r, response.OKWithData("", overlay))
}
