package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// CheckoutUseCase orquesta la conversión de un carrito en una orden:
// lee el carrito, valida que no esté vacío, resuelve precios actuales,
// calcula el total con aritmética decimal, persiste la orden y vacía el
// carrito. Las tres escrituras NO van en una transacción multi-documento:
// MongoDB solo garantiza atomicidad por documento, y una orden persistida
// con carrito sin vaciar es un hueco de consistencia conocido que se
// registra en el log y se resuelve administrativamente.
type CheckoutUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	log         *logger.Logger
}

// NewCheckoutUseCase construye el orquestador.
func NewCheckoutUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	log *logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		log:         log,
	}
}

// PlaceOrder ejecuta el flujo completo de checkout para el usuario.
// Carrito inexistente o vacío → ErrEmptyCart sin efectos secundarios.
// Un producto referenciado que ya no existe en el catálogo rechaza el
// checkout completo con ErrProductUnavailable: nunca se descartan líneas
// en silencio.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, userID string) (*dto.PlaceOrderResponse, error) {
	stageLog := uc.log.With().Str("user_id", userID).Logger()

	// Validating: el carrito debe existir y tener líneas.
	stageLog.Debug().Str("stage", StageValidating.String()).Msg("checkout")
	cart, err := uc.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("checkout: cargar carrito: %w", err)
	}
	if cart.IsEmpty() {
		stageLog.Info().Str("stage", StageRejected.String()).Msg("checkout: carrito vacío")
		return nil, domain.ErrEmptyCart
	}

	// Pricing: resolver precios actuales y acumular el total en decimal.
	stageLog.Debug().Str("stage", StagePricing.String()).Int("items", len(cart.Items)).Msg("checkout")
	ids := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("checkout: resolver productos: %w", err)
	}

	total := decimal.Zero
	lines := make([]entity.OrderLineItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		product, ok := products[it.ProductID]
		if !ok {
			stageLog.Warn().
				Str("stage", StageRejected.String()).
				Str("product_id", it.ProductID).
				Msg("checkout: producto del carrito ya no existe en el catálogo")
			return nil, domain.ErrProductUnavailable
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		lines = append(lines, entity.OrderLineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	// Persisting: la orden congela líneas y total; el precio por línea no
	// se copia, solo el agregado.
	stageLog.Debug().Str("stage", StagePersisting.String()).Str("total", total.String()).Msg("checkout")
	order := &entity.Order{
		ID:         uuid.New().String(),
		UserID:     userID,
		Items:      lines,
		TotalPrice: total,
		CreatedAt:  time.Now(),
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("checkout: persistir orden: %w", err)
	}

	// Clearing: vaciar el carrito. Si falla, la orden ya existe y el
	// carrito quedó con líneas; se registra con el id de la orden para
	// reconciliación manual.
	stageLog.Debug().Str("stage", StageClearing.String()).Msg("checkout")
	if err := uc.cartRepo.Clear(ctx, userID); err != nil {
		stageLog.Error().
			Err(err).
			Str("order_id", order.ID).
			Msg("checkout: orden creada pero el carrito no se pudo vaciar")
		return nil, fmt.Errorf("checkout: vaciar carrito: %w", err)
	}

	stageLog.Info().
		Str("stage", StageCompleted.String()).
		Str("order_id", order.ID).
		Str("total", total.String()).
		Msg("checkout completado")
	return &dto.PlaceOrderResponse{Msg: "Order placed", OrderID: order.ID}, nil
}

// ListOrders devuelve las órdenes del usuario con los productos expandidos
// para lectura. A diferencia del checkout, aquí un producto eliminado se
// tolera: la línea sale con Product nil.
func (uc *CheckoutUseCase) ListOrders(ctx context.Context, userID string) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idSet := make(map[string]struct{})
	for _, o := range orders {
		for _, it := range o.Items {
			idSet[it.ProductID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]dto.OrderLineItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, dto.OrderLineItemResponse{
				Product:  productView(products[it.ProductID]),
				Quantity: it.Quantity,
			})
		}
		out = append(out, dto.OrderResponse{
			ID:         o.ID,
			UserID:     o.UserID,
			Items:      items,
			TotalPrice: o.TotalPrice,
			CreatedAt:  o.CreatedAt,
		})
	}
	return out, nil
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
