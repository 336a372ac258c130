package dto

import "time"

// SetCartItemRequest entrada para agregar/reemplazar una línea del carrito.
type SetCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartItemResponse línea del carrito con el producto expandido. Product es
// nil si el producto fue eliminado después de agregarse al carrito.
type CartItemResponse struct {
	Product  *ProductResponse `json:"product"`
	Quantity int              `json:"quantity"`
}

// CartResponse salida del carrito de un usuario.
type CartResponse struct {
	ID        string             `json:"id,omitempty"`
	UserID    string             `json:"userId"`
	Items     []CartItemResponse `json:"items"`
	UpdatedAt time.Time          `json:"updated_at,omitempty"`
}
