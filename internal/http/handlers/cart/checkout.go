package cart

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/apsaracreations/saree-shop/internal/http/response"
	authservice "github.com/apsaracreations/saree-shop/internal/services/auth"
)

// Checkout godoc
// @Summary Переход к оформлению заказа
// @Description Требует входа. Оплаты нет: возвращается корзина к оформлению.
// @Tags Cart
// @Produce json
// @Success 200 {object} response.Result
// @Failure 401 {object} response.Result
// @Router /cart/checkout [get]
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	log, v, ok := h.start(w, r, "handlers.cart.checkout")
	if !ok {
		return
	}

	if !v.Auth.RequireAuthentication(authservice.MsgCheckoutRequired, false) {
		log.Info("checkout requires login")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.WithRedirect(response.Fail(""), v.Inbox))
		return
	}
	if v.Cart.Count() == 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("Your cart is empty"))
		return
	}
	h.count("checkout")

	render.JSON(w, r, response.OKWithData("Ready for checkout", NewView(v.Cart)))
}
