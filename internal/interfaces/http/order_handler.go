package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// OrderHandler maneja el checkout y la consulta de órdenes (rol customer).
type OrderHandler struct {
	uc *checkout.CheckoutUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *checkout.CheckoutUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// PlaceOrder godoc
// @Summary      Convertir el carrito en una orden (checkout)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PlaceOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	out, err := h.uc.PlaceOrder(c.Context(), GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		case errors.Is(err, domain.ErrProductUnavailable):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRODUCT_UNAVAILABLE", Message: "un producto del carrito ya no está disponible"})
		default:
			return internalError(c)
		}
	}
	return c.JSON(out)
}

// ListOrders godoc
// @Summary      Listar las órdenes del usuario (productos expandidos)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.OrderResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}
