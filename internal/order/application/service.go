// Package application 订单应用服务
package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sa9r/storefront/internal/order/domain"
	"github.com/sa9r/storefront/pkg/logger"
	"github.com/sa9r/storefront/pkg/utils"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingFields 缺少必填字段
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidStatus 非法订单状态
	ErrInvalidStatus = errors.New("invalid status")
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
)

// OrderApplicationService 订单应用服务
// 订单与用户写入为两次独立的整文件重写，用户侧为尽力而为；写入失败记录日志后继续
type OrderApplicationService struct {
	orders domain.OrderRepository
	users  domain.UserRepository
}

// NewOrderApplicationService 创建订单应用服务实例
func NewOrderApplicationService(orders domain.OrderRepository, users domain.UserRepository) *OrderApplicationService {
	return &OrderApplicationService{orders: orders, users: users}
}

// newID 生成形如 <prefix>-<毫秒时间戳>-<9 位随机后缀> 的标识
// 非加密唯一，冲突概率可忽略
func newID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, utils.TimeNow(), utils.RandString(9))
}

// CreateOrder 创建订单
// 四个字段均为必填；订单状态置为 pending；随后按邮箱新建或更新用户记录
func (s *OrderApplicationService) CreateOrder(ctx context.Context, email, phone string, items []domain.OrderItem, total decimal.Decimal) (*domain.Order, error) {
	if email == "" || phone == "" || items == nil || total.IsZero() {
		return nil, ErrMissingFields
	}

	orderID := newID("order")
	userID := newID("user")

	order := domain.NewOrder(orderID, userID, email, phone, items, total)

	// 追加订单并整体重写订单文件
	orders := s.orders.List(ctx)
	orders = append(orders, order)
	if err := s.orders.ReplaceAll(ctx, orders); err != nil {
		logger.Error(ctx, "Failed to save orders", "order_id", orderID, "error", err)
	}

	// 按邮箱新建或更新用户记录并整体重写用户文件
	users := s.users.List(ctx)
	var user *domain.User
	for _, u := range users {
		if u.Email == email {
			user = u
			break
		}
	}
	if user != nil {
		user.Orders = append(user.Orders, orderID)
	} else {
		users = append(users, &domain.User{
			ID:     userID,
			Email:  email,
			Phone:  phone,
			Orders: []string{orderID},
		})
	}
	if err := s.users.ReplaceAll(ctx, users); err != nil {
		logger.Error(ctx, "Failed to save users", "order_id", orderID, "email", email, "error", err)
	}

	logger.Info(ctx, "Order created", "order_id", orderID, "email", email, "total", total)
	return order, nil
}

// GetOrdersByEmail 按邮箱查询订单（精确匹配，区分大小写）
func (s *OrderApplicationService) GetOrdersByEmail(ctx context.Context, email string) []*domain.Order {
	matched := []*domain.Order{}
	for _, o := range s.orders.List(ctx) {
		if o.Email == email {
			matched = append(matched, o)
		}
	}
	return matched
}

// GetAllOrders 获取全部订单
// 不排序，由调用方自行处理顺序
func (s *OrderApplicationService) GetAllOrders(ctx context.Context) []*domain.Order {
	return s.orders.List(ctx)
}

// UpdateStatus 更新订单状态
// 状态必须为允许的四个取值之一；订单不存在返回 ErrOrderNotFound
func (s *OrderApplicationService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	orders := s.orders.List(ctx)
	var order *domain.Order
	for _, o := range orders {
		if o.ID == orderID {
			order = o
			break
		}
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	order.Status = status
	if err := s.orders.ReplaceAll(ctx, orders); err != nil {
		logger.Error(ctx, "Failed to save orders", "order_id", orderID, "error", err)
	}

	logger.Info(ctx, "Order status updated", "order_id", orderID, "status", status)
	return order, nil
}
