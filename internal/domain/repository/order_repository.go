package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
// Solo inserción y lectura: las órdenes son inmutables.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}
