package checkout_test

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Mocks en memoria de los puertos del orquestador, con errores inyectables
// por operación para simular fallos del store en cada etapa del flujo.

type mockCartRepo struct {
	carts    map[string]*entity.Cart
	getErr   error
	clearErr error
	cleared  []string
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]*entity.Cart)}
}

func (m *mockCartRepo) withCart(userID string, items ...entity.CartItem) *mockCartRepo {
	m.carts[userID] = &entity.Cart{
		ID:        "cart-" + userID,
		UserID:    userID,
		Items:     items,
		CreatedAt: time.Now(),
	}
	return m
}

func (m *mockCartRepo) GetByUser(_ context.Context, userID string) (*entity.Cart, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.carts[userID], nil
}

func (m *mockCartRepo) SetItem(_ context.Context, userID string, item entity.CartItem) error {
	c, ok := m.carts[userID]
	if !ok {
		m.withCart(userID, item)
		return nil
	}
	c.Items = append(c.Items, item)
	return nil
}

func (m *mockCartRepo) RemoveItem(_ context.Context, _, _ string) error { return nil }

func (m *mockCartRepo) Clear(_ context.Context, userID string) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	if c, ok := m.carts[userID]; ok {
		c.Items = []entity.CartItem{}
	}
	m.cleared = append(m.cleared, userID)
	return nil
}

type mockProductRepo struct {
	products map[string]*entity.Product
	err      error
}

func newMockProductRepo(products ...*entity.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Create(_ context.Context, p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products[id], nil
}

func (m *mockProductRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]*entity.Product)
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *mockProductRepo) Update(_ context.Context, p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id string) error {
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) Search(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

type mockOrderRepo struct {
	orders    []*entity.Order
	createErr error
}

func (m *mockOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
