package cart

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito: lectura expandida, alta/reemplazo y
// eliminación de líneas. El vaciado post-checkout lo ejecuta el orquestador
// de checkout, no este caso de uso.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// Get devuelve el carrito del usuario con los productos expandidos. Si el
// usuario aún no tiene carrito devuelve uno vacío sin persistirlo: la
// creación perezosa ocurre en la primera mutación, una lectura no escribe.
func (uc *CartUseCase) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	cart, err := uc.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &dto.CartResponse{UserID: userID, Items: []dto.CartItemResponse{}}, nil
	}
	return uc.expand(ctx, cart)
}

// SetItem agrega una línea o reemplaza la cantidad si el producto ya está en
// el carrito (reemplaza, no suma). Cantidad < 1 → ErrInvalidInput; producto
// inexistente → ErrNotFound.
func (uc *CartUseCase) SetItem(ctx context.Context, userID string, in dto.SetCartItemRequest) error {
	if in.ProductID == "" || in.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.cartRepo.SetItem(ctx, userID, entity.CartItem{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	})
}

// RemoveItem quita la línea del producto indicado. Quitar un producto que no
// está en el carrito no es un error (idempotente); un usuario sin carrito
// recibe ErrNotFound.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) error {
	cart, err := uc.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return domain.ErrNotFound
	}
	return uc.cartRepo.RemoveItem(ctx, userID, productID)
}

// expand resuelve los productos referenciados por las líneas del carrito.
// Un producto eliminado del catálogo sale con Product nil: la línea se
// conserva pero sin detalle.
func (uc *CartUseCase) expand(ctx context.Context, cart *entity.Cart) (*dto.CartResponse, error) {
	ids := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, dto.CartItemResponse{
			Product:  productView(products[it.ProductID]),
			Quantity: it.Quantity,
		})
	}
	return &dto.CartResponse{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Items:     items,
		UpdatedAt: cart.UpdatedAt,
	}, nil
}

func productView(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
