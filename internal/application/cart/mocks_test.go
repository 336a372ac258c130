package cart_test

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Mocks en memoria de los puertos de persistencia. Reproducen la semántica
// del adaptador Mongo: GetByUser devuelve nil si el usuario no tiene
// carrito, SetItem reemplaza o agrega, RemoveItem es no-op si la línea no
// existe.

type mockCartRepo struct {
	carts map[string]*entity.Cart
	err   error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]*entity.Cart)}
}

func (m *mockCartRepo) GetByUser(_ context.Context, userID string) (*entity.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.carts[userID], nil
}

func (m *mockCartRepo) SetItem(_ context.Context, userID string, item entity.CartItem) error {
	if m.err != nil {
		return m.err
	}
	c, ok := m.carts[userID]
	if !ok {
		c = &entity.Cart{ID: "cart-" + userID, UserID: userID, CreatedAt: time.Now()}
		m.carts[userID] = c
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity = item.Quantity
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

func (m *mockCartRepo) RemoveItem(_ context.Context, userID, productID string) error {
	if m.err != nil {
		return m.err
	}
	c, ok := m.carts[userID]
	if !ok {
		return nil
	}
	items := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	c.Items = items
	return nil
}

func (m *mockCartRepo) Clear(_ context.Context, userID string) error {
	if m.err != nil {
		return m.err
	}
	if c, ok := m.carts[userID]; ok {
		c.Items = []entity.CartItem{}
	}
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
	if m.err != nil {
		return m.err
	}
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
	if m.err != nil {
		return m.err
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) Search(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*entity.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}
