package domain

import "context"

// CartRepository 购物车仓储接口
type CartRepository interface {
	// 按 ID 获取购物车
	Get(ctx context.Context, cartID string) (*Cart, bool)
	// 保存购物车
	Save(ctx context.Context, cart *Cart)
}
