// Package file 商品目录的文件仓储实现
package file

import (
	"context"
	"encoding/json"
	"os"

	"github.com/sa9r/storefront/internal/catalog/domain"
	"github.com/sa9r/storefront/pkg/logger"
)

// ProductRepository 只读 JSON 文件仓储
// 每次调用重新读取文件；读取失败按空目录处理
type ProductRepository struct {
	path string
}

// NewProductRepository 创建商品目录仓储实例
func NewProductRepository(path string) *ProductRepository {
	return &ProductRepository{path: path}
}

// List 获取全部商品
func (r *ProductRepository) List(ctx context.Context) []*domain.Product {
	data, err := os.ReadFile(r.path)
	if err != nil {
		logger.Error(ctx, "Failed to read products file", "path", r.path, "error", err)
		return []*domain.Product{}
	}

	var products []*domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		logger.Error(ctx, "Failed to parse products file", "path", r.path, "error", err)
		return []*domain.Product{}
	}

	return products
}
