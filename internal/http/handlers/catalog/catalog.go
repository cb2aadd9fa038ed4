// Package catalog реализует HTTP-обработчики каталога сари: список, карточку
// товара и добавление товара из карточки в корзину.
package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	carthandler "github.com/apsaracreations/saree-shop/internal/http/handlers/cart"
	"github.com/apsaracreations/saree-shop/internal/http/middlewarectx"
	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
	catalogservice "github.com/apsaracreations/saree-shop/internal/services/catalog"
)

// Card — товар со скидкой в процентах.
type Card struct {
	models.Product
	Discount int `json:"discount"`
}

func newCard(p models.Product) Card {
	return Card{Product: p, Discount: catalogservice.Discount(p)}
}

// Handler обслуживает запросы к каталогу.
type Handler struct {
	log      *slog.Logger
	service  Service
	observer carthandler.Observer
}

// New создаёт Handler. observer считает добавления в корзину и может быть nil.
func New(log *slog.Logger, service Service, observer carthandler.Observer) *Handler {
	return &Handler{log: log, service: service, observer: observer}
}

// List godoc
// @Summary Каталог сари
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Result
// @Router /products [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products := h.service.List()
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, newCard(p))
	}
	render.JSON(w, r, response.OKWithData("", cards))
}

// Read godoc
// @Summary Карточка товара
// @Tags Catalog
// @Produce json
// @Param id path int true "Идентификатор товара"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.Result
// @Failure 404 {object} response.Result
// @Router /products/{id} [get]
func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	p, ok := h.product(w, r, log)
	if !ok {
		return
	}
	render.JSON(w, r, response.OKWithData("", newCard(p)))
}

// AddToCart godoc
// @Summary Добавление товара из каталога в корзину
// @Tags Catalog
// @Produce json
// @Param id path int true "Идентификатор товара"
// @Success 200 {object} response.Result
// @Failure 404 {object} response.Result
// @Router /products/{id}/cart [post]
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.addtocart"

	log := h.log.With(
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

	p, ok := h.product(w, r, log)
	if !ok {
		return
	}
	carthandler.AddProduct(w, r, log, v.Cart, catalogservice.CartProduct(p), h.observer)
}

func (h *Handler) product(w http.ResponseWriter, r *http.Request, log *slog.Logger) (models.Product, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("failed to decode id from url"))
		return models.Product{}, false
	}

	p, err := h.service.Get(id)
	if errors.Is(err, catalogservice.ErrProductNotFound) {
		log.Info("product not found", slog.Int("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Fail("Product not found"))
		return models.Product{}, false
	}
	if err != nil {
		log.Error("failed to read product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("could not read product"))
		return models.Product{}, false
	}
	return p, true
}
