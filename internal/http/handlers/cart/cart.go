// Package cart реализует HTTP-обработчики корзины посетителя: просмотр,
// добавление, изменение количества, удаление, очистку и переход к оформлению.
package cart

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/apsaracreations/saree-shop/internal/http/middlewarectx"
	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/price"
	"github.com/apsaracreations/saree-shop/internal/models"
	cartservice "github.com/apsaracreations/saree-shop/internal/services/cart"
	"github.com/apsaracreations/saree-shop/internal/visitor"
)

// View — содержимое корзины в ответе.
type View struct {
	Items        []models.CartItem `json:"items"`
	Count        int               `json:"count"`
	Total        float64           `json:"total"`
	TotalDisplay string            `json:"totalDisplay"`
}

// NewView собирает View из корзины.
func NewView(c *cartservice.Store) View {
	total := c.Total()
	return View{
		Items:        c.Items(),
		Count:        c.Count(),
		Total:        total,
		TotalDisplay: price.Format(total),
	}
}

// AddRequest — товар, добавляемый в корзину.
type AddRequest struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    string `json:"price" validate:"required"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// UpdateRequest — новое количество. Ноль и меньше удаляют строку.
type UpdateRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// Handler обслуживает запросы к корзине.
type Handler struct {
	log      *slog.Logger
	observer Observer
	validate *validator.Validate
}

// New создаёт Handler.
func New(log *slog.Logger, observer Observer) *Handler {
	return &Handler{
		log:      log,
		observer: observer,
		validate: validator.New(),
	}
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request, op string) (*slog.Logger, *visitor.Visitor, bool) {
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	v, ok := middlewarectx.VisitorFromContext(r.Context())
	if !ok {
		log.Error("visitor is not resolved")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("internal error"))
		return log, nil, false
	}
	return log, v, true
}

func (h *Handler) count(op string) {
	if h.observer != nil {
		h.observer.CartOperation(op)
	}
}

// View godoc
// @Summary Содержимое корзины
// @Tags Cart
// @Produce json
// @Success 200 {object} response.Result
// @Router /cart [get]
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	_, v, ok := h.start(w, r, "handlers.cart.view")
	if !ok {
		return
	}
	render.JSON(w, r, response.WithRedirect(response.OKWithData("", NewView(v.Cart)), v.Inbox))
}

// Remove godoc
// @Summary Удаление товара из корзины
// @Tags Cart
// @Produce json
// @Param id path string true "Идентификатор товара"
// @Success 200 {object} response.Result
// @Router /cart/items/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	log, v, ok := h.start(w, r, "handlers.cart.remove")
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	v.Cart.RemoveItem(r.Context(), id)
	h.count("remove")

	log.Info("cart item removed", slog.String("id", id))
	render.JSON(w, r, response.OKWithData("Item removed from cart", NewView(v.Cart)))
}

// Clear godoc
// @Summary Очистка корзины
// @Tags Cart
// @Produce json
// @Success 200 {object} response.Result
// @Router /cart [delete]
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	log, v, ok := h.start(w, r, "handlers.cart.clear")
	if !ok {
		return
	}
	v.Cart.Clear(r.Context())
	h.count("clear")

	log.Info("cart cleared")
	render.JSON(w, r, response.OKWithData("Cart cleared", NewView(v.Cart)))
}
