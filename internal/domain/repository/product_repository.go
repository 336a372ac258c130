package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs resuelve varios productos de una vez; los IDs que no existen
	// simplemente no aparecen en el mapa resultante.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// Search: substring case-insensitive sobre el nombre, con paginación.
	Search(ctx context.Context, name string, limit, offset int) ([]*entity.Product, error)
}
