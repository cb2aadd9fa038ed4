package cart

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
)

// Update godoc
// @Summary Изменение количества товара
// @Description Количество 0 и меньше удаляет строку. Неизвестный товар игнорируется.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор товара"
// @Param request body UpdateRequest true "Количество"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.Result
// @Failure 422 {object} response.Result
// @Router /cart/items/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log, v, ok := h.start(w, r, "handlers.cart.update")
	if !ok {
		return
	}

	var req UpdateRequest
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

	id := chi.URLParam(r, "id")
	v.Cart.SetQuantity(r.Context(), id, *req.Quantity)
	h.count("update")

	log.Info("cart quantity updated", slog.String("id", id), slog.Int("quantity", *req.Quantity))
	render.JSON(w, r, response.OKWithData("Cart updated", NewView(v.Cart)))
}
