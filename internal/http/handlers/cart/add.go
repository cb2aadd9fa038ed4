package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
	cartservice "github.com/apsaracreations/saree-shop/internal/services/cart"
)

// Add godoc
// @Summary Добавление товара в корзину
// @Description Повторное добавление того же товара увеличивает количество.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body AddRequest true "Товар"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.Result
// @Failure 422 {object} response.Result
// @Router /cart/items [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log, v, ok := h.start(w, r, "handlers.cart.add")
	if !ok {
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	AddProduct(w, r, log, v.Cart, models.CartProduct(req), h.observer)
}

// AddProduct кладёт товар в корзину и отвечает новым содержимым корзины.
func AddProduct(w http.ResponseWriter, r *http.Request, log *slog.Logger, c *cartservice.Store, p models.CartProduct, observer Observer) {
	line, err := c.AddItem(r.Context(), p)
	if errors.Is(err, cartservice.ErrInvalidProduct) {
		log.Info("invalid product", slog.String("id", p.ID), slog.String("price", p.Price))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("Error adding to cart. Please try again."))
		return
	}
	if err != nil {
		log.Error("failed to add item", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("internal error"))
		return
	}
	if observer != nil {
		observer.CartOperation("add")
	}

	log.Info("cart item added", slog.String("id", line.ID), slog.Int("quantity", line.Quantity))
	render.JSON(w, r, response.OKWithData(fmt.Sprintf("%s added to cart!", line.Name), NewView(c)))
}
