package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderResponse salida del checkout.
type PlaceOrderResponse struct {
	Msg     string `json:"msg"`
	OrderID string `json:"orderId"`
}

// OrderLineItemResponse línea de una orden con el producto expandido para
// lectura. Product es nil si el producto ya no existe en el catálogo.
type OrderLineItemResponse struct {
	Product  *ProductResponse `json:"product"`
	Quantity int              `json:"quantity"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID         string                  `json:"id"`
	UserID     string                  `json:"userId"`
	Items      []OrderLineItemResponse `json:"items"`
	TotalPrice decimal.Decimal         `json:"totalPrice"`
	CreatedAt  time.Time               `json:"createdAt"`
}
