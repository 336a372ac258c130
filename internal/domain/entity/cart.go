package entity

import "time"

// CartItem es una línea del carrito: referencia a producto + cantidad (>= 1).
type CartItem struct {
	ProductID string
	Quantity  int
}

// Cart es la selección pendiente de un usuario (uno por usuario, a lo sumo
// una línea por producto). Se crea de forma perezosa al primer acceso y se
// vacía (no se elimina) después del checkout.
type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item devuelve la línea del producto indicado, o nil si no está en el carrito.
func (c *Cart) Item(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}
