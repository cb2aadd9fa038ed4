// Package recommend реализует HTTP-обработчики подбора сари: значения полей
// формы и сам подбор. Каждый успешный подбор отправляется в аналитику.
package recommend

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/apsaracreations/saree-shop/internal/analytics"
	"github.com/apsaracreations/saree-shop/internal/http/middlewarectx"
	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	recommendservice "github.com/apsaracreations/saree-shop/internal/services/recommend"
)

const msgIncompleteSelection = "Please fill in all fields to get personalized recommendations"

// Request — выбор посетителя в форме подбора.
type Request struct {
	BodyType string `json:"bodyType"`
	Occasion string `json:"occasion"`
	Fabric   string `json:"fabric"`
}

// Handler обслуживает подбор рекомендаций.
type Handler struct {
	log      *slog.Logger
	service  Service
	tracker  Tracker
	observer Observer
	now      func() time.Time
}

// New создаёт Handler. observer может быть nil.
func New(log *slog.Logger, service Service, tracker Tracker, observer Observer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		tracker:  tracker,
		observer: observer,
		now:      time.Now,
	}
}

// Create godoc
// @Summary Подбор сари
// @Description Возвращает от двух до трёх вариантов по типу фигуры, поводу и ткани.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body Request true "Выбор в форме"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.Result
// @Router /recommendations [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recommend.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("invalid request body"))
		return
	}

	suggestions, err := h.service.Recommend(req.BodyType, req.Occasion, req.Fabric)
	if errors.Is(err, recommendservice.ErrIncompleteSelection) {
		log.Info("incomplete selection")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail(msgIncompleteSelection))
		return
	}
	if err != nil {
		log.Error("failed to build recommendations", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("internal error"))
		return
	}

	var visitorID string
	if v, ok := middlewarectx.VisitorFromContext(r.Context()); ok {
		visitorID = v.ID
	}
	h.tracker.TrackRecommendation(r.Context(), analytics.NewRecommendationEvent(
		visitorID, req.BodyType, req.Occasion, req.Fabric, len(suggestions), h.now(),
	))
	if h.observer != nil {
		h.observer.Recommendation(req.BodyType)
	}

	log.Info("recommendations generated", slog.Int("count", len(suggestions)))
	render.JSON(w, r, response.OKWithData("", map[string]any{
		"suggestions": suggestions,
	}))
}

// Options godoc
// @Summary Значения полей формы подбора
// @Tags Recommendations
// @Produce json
// @Success 200 {object} response.Result
// @Router /recommendations/options [get]
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData("", h.service.Options()))
}

