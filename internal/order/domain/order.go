// Package domain 包含订单服务的领域模型
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid 判断状态是否为允许的取值
// 状态按 pending → confirmed → shipped → delivered 线性推进，但不强制转移顺序
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderItem 订单行项目
// 在下单时刻快照商品名称与单价
type OrderItem struct {
	// 商品 ID
	ProductID string `json:"productId"`
	// 尺码
	Size string `json:"size"`
	// 颜色
	Color string `json:"color"`
	// 数量
	Quantity int `json:"quantity"`
	// 商品名称（下单时快照）
	ProductName string `json:"productName"`
	// 商品单价（下单时快照）
	ProductPrice decimal.Decimal `json:"productPrice"`
}

// Order 订单实体
// 创建后除状态外不可变，永久保存
type Order struct {
	// 订单 ID
	ID string `json:"id"`
	// 用户 ID（下单时生成）
	UserID string `json:"userId"`
	// 邮箱
	Email string `json:"email"`
	// 电话
	Phone string `json:"phone"`
	// 行项目
	Items []OrderItem `json:"items"`
	// 总价
	Total decimal.Decimal `json:"total"`
	// 状态
	Status OrderStatus `json:"status"`
	// 创建时间
	CreatedAt time.Time `json:"createdAt"`
}

// NewOrder 创建订单，初始状态为 pending
func NewOrder(orderID, userID, email, phone string, items []OrderItem, total decimal.Decimal) *Order {
	return &Order{
		ID:        orderID,
		UserID:    userID,
		Email:     email,
		Phone:     phone,
		Items:     items,
		Total:     total,
		Status:    OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// User 用户记录
// 以邮箱为自然键，订单列表只增不减
type User struct {
	// 用户 ID
	ID string `json:"id"`
	// 邮箱
	Email string `json:"email"`
	// 电话
	Phone string `json:"phone"`
	// 订单 ID 列表
	Orders []string `json:"orders"`
}
