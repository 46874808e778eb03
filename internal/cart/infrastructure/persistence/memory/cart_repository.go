// Package memory 购物车的内存仓储实现
package memory

import (
	"context"
	"sync"

	"github.com/sa9r/storefront/internal/cart/domain"
)

// CartRepository 进程内购物车仓储
// 锁只保护 map 本身；对同一购物车的并发操作仍为后写覆盖
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewCartRepository 创建购物车仓储实例
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*domain.Cart)}
}

// Get 按 ID 获取购物车
func (r *CartRepository) Get(ctx context.Context, cartID string) (*domain.Cart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[cartID]
	return cart, ok
}

// Save 保存购物车
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.ID] = cart
}
