package application

import (
	"context"
	"testing"

	"github.com/sa9r/storefront/internal/cart/infrastructure/persistence/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newService() *CartApplicationService {
	return NewCartApplicationService(memory.NewCartRepository())
}

func TestGetCartLazilyCreates(t *testing.T) {
	s := newService()
	ctx := context.Background()

	cart := s.GetCart(ctx, "c1")
	require.Equal(t, "c1", cart.ID)
	require.Empty(t, cart.Items)
	require.True(t, cart.Total.IsZero())

	// 再次获取返回同一购物车
	s.AddItem(ctx, "c1", "p1", "M", "black", 1, decimal.NewFromInt(20))
	again := s.GetCart(ctx, "c1")
	require.Len(t, again.Items, 1)
}

func TestAddItemMergesSameKey(t *testing.T) {
	s := newService()
	ctx := context.Background()
	price := decimal.NewFromInt(20)

	cart := s.AddItem(ctx, "c1", "p1", "M", "black", 1, price)
	require.Len(t, cart.Items, 1)
	require.True(t, cart.Total.Equal(decimal.NewFromInt(20)), "total = %s", cart.Total)

	// 同键累加数量，总价按本次单价对全部行重算
	cart = s.AddItem(ctx, "c1", "p1", "M", "black", 2, price)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 3, cart.Items[0].Quantity)
	require.True(t, cart.Total.Equal(decimal.NewFromInt(60)), "total = %s", cart.Total)
}

func TestAddItemDistinctKeys(t *testing.T) {
	s := newService()
	ctx := context.Background()
	price := decimal.NewFromInt(10)

	s.AddItem(ctx, "c1", "p1", "M", "black", 1, price)
	s.AddItem(ctx, "c1", "p1", "M", "white", 1, price)
	s.AddItem(ctx, "c1", "p1", "L", "black", 1, price)
	cart := s.AddItem(ctx, "c1", "p2", "M", "black", 1, price)

	// 不同键各成一行
	require.Len(t, cart.Items, 4)
}

func TestAddItemOnMissingCart(t *testing.T) {
	s := newService()
	ctx := context.Background()

	// 购物车不存在视为空购物车，不报错
	cart := s.AddItem(ctx, "nope", "p1", "M", "black", 1, decimal.NewFromInt(5))
	require.Equal(t, "nope", cart.ID)
	require.Len(t, cart.Items, 1)
}

func TestUpdateItemToZeroRemovesLine(t *testing.T) {
	s := newService()
	ctx := context.Background()
	price := decimal.NewFromInt(20)

	s.AddItem(ctx, "c1", "p1", "M", "black", 1, price)
	cart, err := s.UpdateItem(ctx, "c1", "p1", "M", "black", 0, price)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.True(t, cart.Total.IsZero())
}

func TestUpdateItemErrors(t *testing.T) {
	s := newService()
	ctx := context.Background()
	price := decimal.NewFromInt(20)

	_, err := s.UpdateItem(ctx, "missing", "p1", "M", "black", 1, price)
	require.ErrorIs(t, err, ErrCartNotFound)

	s.AddItem(ctx, "c1", "p1", "M", "black", 1, price)
	_, err = s.UpdateItem(ctx, "c1", "p9", "M", "black", 1, price)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestClearCart(t *testing.T) {
	s := newService()
	ctx := context.Background()

	s.AddItem(ctx, "c1", "p1", "M", "black", 3, decimal.NewFromInt(20))
	cart := s.ClearCart(ctx, "c1")

	require.Empty(t, cart.Items)
	require.True(t, cart.Total.IsZero())

	// 清空后再获取仍为空
	cart = s.GetCart(ctx, "c1")
	require.Empty(t, cart.Items)
	require.True(t, cart.Total.IsZero())
}
