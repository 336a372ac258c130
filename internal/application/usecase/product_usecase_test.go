package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// mockProductRepo reproduce la semántica del adaptador Mongo, incluida la
// búsqueda por substring case-insensitive con limit/offset.
type mockProductRepo struct {
	list []*entity.Product
}

func (m *mockProductRepo) Create(_ context.Context, p *entity.Product) error {
	m.list = append(m.list, p)
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range m.list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Product, error) {
	out := make(map[string]*entity.Product)
	for _, id := range ids {
		for _, p := range m.list {
			if p.ID == id {
				out[id] = p
			}
		}
	}
	return out, nil
}

func (m *mockProductRepo) Update(_ context.Context, p *entity.Product) error {
	for i := range m.list {
		if m.list[i].ID == p.ID {
			m.list[i] = p
		}
	}
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id string) error {
	out := m.list[:0]
	for _, p := range m.list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	m.list = out
	return nil
}

func (m *mockProductRepo) Search(_ context.Context, name string, limit, offset int) ([]*entity.Product, error) {
	var matched []*entity.Product
	for _, p := range m.list {
		if name == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			matched = append(matched, p)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func seedCatalog(t *testing.T, uc *usecase.ProductUseCase, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{
			Name:  name,
			Price: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}
}

func TestProduct_Create_PrecioNegativo_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(&mockProductRepo{})

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Widget",
		Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_Create_SinNombre_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(&mockProductRepo{})

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_Search_SubstringCaseInsensitive(t *testing.T) {
	repo := &mockProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	seedCatalog(t, uc, "Widget Pro", "Gadget", "Mega Widget")

	out, err := uc.Search(context.Background(), dto.SearchProductsRequest{Search: "wiDGet"})
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestProduct_Search_Paginacion(t *testing.T) {
	repo := &mockProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	seedCatalog(t, uc, "A", "B", "C", "D", "E")
	ctx := context.Background()

	page1, err := uc.Search(ctx, dto.SearchProductsRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	page2, err := uc.Search(ctx, dto.SearchProductsRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	page3, err := uc.Search(ctx, dto.SearchProductsRequest{Page: 3, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, page1, 2)
	assert.Len(t, page2, 2)
	assert.Len(t, page3, 1)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)
}

func TestProduct_Update_Parcial(t *testing.T) {
	repo := &mockProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	seedCatalog(t, uc, "Widget")
	id := repo.list[0].ID

	newPrice := decimal.NewFromInt(25)
	out, err := uc.Update(context.Background(), id, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Widget", out.Name, "los campos no enviados no se tocan")
	assert.True(t, out.Price.Equal(newPrice))
}

func TestProduct_Update_Inexistente_DevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(&mockProductRepo{})

	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}
