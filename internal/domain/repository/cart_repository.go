package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CartRepository define el puerto de persistencia para Cart (DIP).
// GetByUser devuelve nil (sin error) cuando el usuario aún no tiene carrito:
// el caso de uso decide si materializa uno vacío.
type CartRepository interface {
	GetByUser(ctx context.Context, userID string) (*entity.Cart, error)
	// SetItem reemplaza la cantidad si ya existe una línea para el producto,
	// o agrega una nueva línea; crea el carrito si no existe.
	SetItem(ctx context.Context, userID string, item entity.CartItem) error
	RemoveItem(ctx context.Context, userID, productID string) error
	// Clear deja el carrito con cero líneas sin eliminarlo.
	Clear(ctx context.Context, userID string) error
}
