package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineItem es una copia congelada de una línea del carrito al momento
// del checkout. No guarda precio por línea: solo el total agregado vive en
// la orden, desacoplado de cambios futuros de precio del producto.
type OrderLineItem struct {
	ProductID string
	Quantity  int
}

// Order es el registro inmutable de una compra completada. TotalPrice se
// calcula una sola vez en el checkout y nunca se recalcula; la orden no se
// actualiza ni se elimina.
type Order struct {
	ID         string
	UserID     string
	Items      []OrderLineItem
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}
