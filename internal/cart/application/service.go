// Package application 购物车应用服务
package application

import (
	"context"
	"errors"

	"github.com/sa9r/storefront/internal/cart/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrCartNotFound 购物车不存在
	ErrCartNotFound = errors.New("cart not found")
	// ErrItemNotFound 购物车中无此行项目
	ErrItemNotFound = errors.New("item not found in cart")
)

// CartApplicationService 购物车应用服务
type CartApplicationService struct {
	repo domain.CartRepository
}

// NewCartApplicationService 创建购物车应用服务实例
func NewCartApplicationService(repo domain.CartRepository) *CartApplicationService {
	return &CartApplicationService{repo: repo}
}

// GetCart 获取购物车，不存在则惰性创建空购物车
func (s *CartApplicationService) GetCart(ctx context.Context, cartID string) *domain.Cart {
	cart, ok := s.repo.Get(ctx, cartID)
	if !ok {
		cart = domain.NewCart(cartID)
		s.repo.Save(ctx, cart)
	}
	return cart
}

// AddItem 向购物车加入行项目
// 购物车不存在视为空购物车；总价按本次调用的单价重算
func (s *CartApplicationService) AddItem(ctx context.Context, cartID, productID, size, color string, quantity int, price decimal.Decimal) *domain.Cart {
	cart, ok := s.repo.Get(ctx, cartID)
	if !ok {
		cart = domain.NewCart(cartID)
	}

	cart.AddItem(productID, size, color, quantity)
	cart.RecalculateTotal(price)

	s.repo.Save(ctx, cart)
	return cart
}

// UpdateItem 更新购物车行项目数量
// 数量 <= 0 时删除该行；总价按本次调用的单价重算
func (s *CartApplicationService) UpdateItem(ctx context.Context, cartID, productID, size, color string, quantity int, price decimal.Decimal) (*domain.Cart, error) {
	cart, ok := s.repo.Get(ctx, cartID)
	if !ok {
		return nil, ErrCartNotFound
	}

	if !cart.UpdateItem(productID, size, color, quantity) {
		return nil, ErrItemNotFound
	}
	cart.RecalculateTotal(price)

	s.repo.Save(ctx, cart)
	return cart, nil
}

// ClearCart 清空购物车
// 以全新空购物车整体替换
func (s *CartApplicationService) ClearCart(ctx context.Context, cartID string) *domain.Cart {
	cart := domain.NewCart(cartID)
	s.repo.Save(ctx, cart)
	return cart
}
