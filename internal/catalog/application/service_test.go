package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sa9r/storefront/internal/catalog/infrastructure/persistence/file"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
  {
    "id": "tshirt-1",
    "name": "Tee One",
    "category": "tshirt",
    "price": 20,
    "sizes": ["S", "M", "L"],
    "colors": ["black", "white"],
    "images": {"front": "/f.jpg", "back": "/b.jpg"},
    "description": "A tee."
  },
  {
    "id": "hoodie-1",
    "name": "Hoodie One",
    "category": "hoodie",
    "price": 45,
    "sizes": ["M", "L"],
    "colors": ["black"],
    "images": {"front": "/f.jpg", "back": "/b.jpg"},
    "description": "A hoodie."
  }
]`

func newService(t *testing.T) *CatalogApplicationService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(productsJSON), 0644))
	return NewCatalogApplicationService(file.NewProductRepository(path))
}

func TestListProducts(t *testing.T) {
	s := newService(t)

	products := s.ListProducts(context.Background())
	require.Len(t, products, 2)
	require.Equal(t, "tshirt-1", products[0].ID)
	require.True(t, products[0].Price.Equal(decimal.NewFromInt(20)))
}

func TestListProductsByCategory(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	hoodies := s.ListProductsByCategory(ctx, "hoodie")
	require.Len(t, hoodies, 1)
	require.Equal(t, "hoodie-1", hoodies[0].ID)

	// 精确匹配，未知分类返回空列表
	require.Empty(t, s.ListProductsByCategory(ctx, "Hoodie"))
	require.Empty(t, s.ListProductsByCategory(ctx, "socks"))
}

func TestGetProduct(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	product, err := s.GetProduct(ctx, "hoodie-1")
	require.NoError(t, err)
	require.Equal(t, "Hoodie One", product.Name)
	require.Equal(t, []string{"M", "L"}, product.Sizes)

	_, err = s.GetProduct(ctx, "missing")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestMissingCatalogFileBehavesAsEmpty(t *testing.T) {
	s := NewCatalogApplicationService(file.NewProductRepository(filepath.Join(t.TempDir(), "nope.json")))
	ctx := context.Background()

	require.Empty(t, s.ListProducts(ctx))
	_, err := s.GetProduct(ctx, "tshirt-1")
	require.ErrorIs(t, err, ErrProductNotFound)
}
