// Package file 订单与用户的文件仓储实现
// 持久化模型为整文件读改写：无追加日志，无文件锁，并发写入为后写覆盖
package file

import (
	"context"
	"encoding/json"
	"os"

	"github.com/sa9r/storefront/internal/order/domain"
	"github.com/sa9r/storefront/pkg/logger"
)

// OrderRepository 订单 JSON 文件仓储
type OrderRepository struct {
	path string
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(path string) *OrderRepository {
	return &OrderRepository{path: path}
}

// List 获取全部订单
// 读取或解析失败按空列表处理
func (r *OrderRepository) List(ctx context.Context) []*domain.Order {
	data, err := os.ReadFile(r.path)
	if err != nil {
		logger.Error(ctx, "Failed to read orders file", "path", r.path, "error", err)
		return []*domain.Order{}
	}

	var orders []*domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		logger.Error(ctx, "Failed to parse orders file", "path", r.path, "error", err)
		return []*domain.Order{}
	}

	return orders
}

// ReplaceAll 整体重写订单文件
func (r *OrderRepository) ReplaceAll(ctx context.Context, orders []*domain.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}
