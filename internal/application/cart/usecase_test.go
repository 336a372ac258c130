package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

const testUser = "user-1"

func widget() *entity.Product {
	return &entity.Product{ID: "p-widget", Name: "Widget", Price: decimal.NewFromInt(10)}
}

func gadget() *entity.Product {
	return &entity.Product{ID: "p-gadget", Name: "Gadget", Price: decimal.NewFromInt(5)}
}

func TestCart_Get_SinCarrito_DevuelveVacio(t *testing.T) {
	repo := newMockCartRepo()
	uc := cart.NewCartUseCase(repo, newMockProductRepo())

	out, err := uc.Get(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, testUser, out.UserID)
	assert.Empty(t, out.Items)
	// Una lectura no materializa el carrito en el store.
	assert.Nil(t, repo.carts[testUser])
}

func TestCart_SetItem_AgregaLinea(t *testing.T) {
	repo := newMockCartRepo()
	uc := cart.NewCartUseCase(repo, newMockProductRepo(widget()))
	ctx := context.Background()

	err := uc.SetItem(ctx, testUser, dto.SetCartItemRequest{ProductID: "p-widget", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, repo.carts[testUser].Items, 1)
	assert.Equal(t, 2, repo.carts[testUser].Items[0].Quantity)
}

// SetItem es idempotente: dos llamadas idénticas dejan
// exactamente una línea con esa cantidad.
func TestCart_SetItem_Idempotente(t *testing.T) {
	repo := newMockCartRepo()
	uc := cart.NewCartUseCase(repo, newMockProductRepo(widget()))
	ctx := context.Background()

	in := dto.SetCartItemRequest{ProductID: "p-widget", Quantity: 3}
	require.NoError(t, uc.SetItem(ctx, testUser, in))
	require.NoError(t, uc.SetItem(ctx, testUser, in))

	require.Len(t, repo.carts[testUser].Items, 1)
	assert.Equal(t, 3, repo.carts[testUser].Items[0].Quantity)
}

// La cantidad se reemplaza, no se suma.
func TestCart_SetItem_ReemplazaCantidad(t *testing.T) {
	repo := newMockCartRepo()
	uc := cart.NewCartUseCase(repo, newMockProductRepo(widget()))
	ctx := context.Background()

	require.NoError(t, uc.SetItem(ctx, testUser, dto.SetCartItemRequest{ProductID: "p-widget", Quantity: 2}))
	require.NoError(t, uc.SetItem(ctx, testUser, dto.SetCartItemRequest{ProductID: "p-widget", Quantity: 5}))

	require.Len(t, repo.carts[testUser].Items, 1)
	assert.Equal(t, 5, repo.carts[testUser].Items[0].Quantity)
}

func TestCart_SetItem_CantidadInvalida(t *testing.T) {
	repo := newMockCartRepo()
	uc := cart.NewCartUseCase(repo, newMockProductRepo(widget()))
	ctx := context.Background()

	for _, qty := range []int{0, -1} {
		err := uc.SetItem(ctx, testUser, dto.SetCartItemRequest{ProductID: "p-widget", Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity %d debe rechazarse", qty)
	}
	assert.Nil(t, repo.carts[testUser], "nada debe persistirse")
}

func TestCart_SetItem_ProductoInexistente(t *testing.T) {
	repo := newMockCartRepo()
	uc := cart.NewCartUseCase(repo, newMockProductRepo())

	err := uc.SetItem(context.Background(), testUser, dto.SetCartItemRequest{ProductID: "p-fantasma", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Quitar un producto que no está deja el carrito igual y
// responde éxito.
func TestCart_RemoveItem_AusenteEsIdempotente(t *testing.T) {
	repo := newMockCartRepo()
	uc := cart.NewCartUseCase(repo, newMockProductRepo(widget(), gadget()))
	ctx := context.Background()

	require.NoError(t, uc.SetItem(ctx, testUser, dto.SetCartItemRequest{ProductID: "p-widget", Quantity: 2}))

	err := uc.RemoveItem(ctx, testUser, "p-gadget")
	require.NoError(t, err)
	require.Len(t, repo.carts[testUser].Items, 1)
	assert.Equal(t, "p-widget", repo.carts[testUser].Items[0].ProductID)
}

func TestCart_RemoveItem_SinCarrito_NotFound(t *testing.T) {
	uc := cart.NewCartUseCase(newMockCartRepo(), newMockProductRepo())

	err := uc.RemoveItem(context.Background(), testUser, "p-widget")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCart_Get_ExpandeProductos(t *testing.T) {
	repo := newMockCartRepo()
	uc := cart.NewCartUseCase(repo, newMockProductRepo(widget(), gadget()))
	ctx := context.Background()

	require.NoError(t, uc.SetItem(ctx, testUser, dto.SetCartItemRequest{ProductID: "p-widget", Quantity: 2}))
	require.NoError(t, uc.SetItem(ctx, testUser, dto.SetCartItemRequest{ProductID: "p-gadget", Quantity: 3}))

	out, err := uc.Get(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	require.NotNil(t, out.Items[0].Product)
	assert.Equal(t, "Widget", out.Items[0].Product.Name)
	assert.True(t, out.Items[0].Product.Price.Equal(decimal.NewFromInt(10)))
}

// Un producto eliminado del catálogo después de agregarse sale con Product
// nil en la lectura; la línea no desaparece del carrito.
func TestCart_Get_ProductoEliminado_SaleNil(t *testing.T) {
	repo := newMockCartRepo()
	products := newMockProductRepo(widget())
	uc := cart.NewCartUseCase(repo, products)
	ctx := context.Background()

	require.NoError(t, uc.SetItem(ctx, testUser, dto.SetCartItemRequest{ProductID: "p-widget", Quantity: 2}))
	require.NoError(t, products.Delete(ctx, "p-widget"))

	out, err := uc.Get(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Nil(t, out.Items[0].Product)
	assert.Equal(t, 2, out.Items[0].Quantity)
}
