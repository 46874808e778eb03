// Package application 商品目录应用服务
package application

import (
	"context"
	"errors"

	"github.com/sa9r/storefront/internal/catalog/domain"
)

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

// CatalogApplicationService 商品目录应用服务
type CatalogApplicationService struct {
	repo domain.ProductRepository
}

// NewCatalogApplicationService 创建商品目录应用服务实例
func NewCatalogApplicationService(repo domain.ProductRepository) *CatalogApplicationService {
	return &CatalogApplicationService{repo: repo}
}

// ListProducts 获取全部商品
func (s *CatalogApplicationService) ListProducts(ctx context.Context) []*domain.Product {
	return s.repo.List(ctx)
}

// ListProductsByCategory 按分类过滤商品（精确匹配）
func (s *CatalogApplicationService) ListProductsByCategory(ctx context.Context, category string) []*domain.Product {
	filtered := []*domain.Product{}
	for _, p := range s.repo.List(ctx) {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// GetProduct 按 ID 获取商品
func (s *CatalogApplicationService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	for _, p := range s.repo.List(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}
