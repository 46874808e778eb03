// Package domain 包含购物车的领域模型
package domain

import "github.com/shopspring/decimal"

// CartItem 购物车行项目
// 唯一键为 (productId, size, color)；数量始终为正，减到零时整行删除
type CartItem struct {
	// 商品 ID
	ProductID string `json:"productId"`
	// 尺码
	Size string `json:"size"`
	// 颜色
	Color string `json:"color"`
	// 数量
	Quantity int `json:"quantity"`
}

// Matches 判断行项目是否匹配给定键
func (i CartItem) Matches(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// Cart 购物车实体
// 进程生命周期内存活，不持久化，不过期
type Cart struct {
	// 购物车 ID
	ID string `json:"id"`
	// 行项目（保持加入顺序）
	Items []CartItem `json:"items"`
	// 总价
	Total decimal.Decimal `json:"total"`
}

// NewCart 创建空购物车
func NewCart(id string) *Cart {
	return &Cart{
		ID:    id,
		Items: []CartItem{},
		Total: decimal.Zero,
	}
}

// AddItem 加入行项目
// 已存在相同键的行则累加数量，否则追加新行
func (c *Cart) AddItem(productID, size, color string, quantity int) {
	for i := range c.Items {
		if c.Items[i].Matches(productID, size, color) {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	})
}

// UpdateItem 更新行项目数量
// 数量 <= 0 时删除该行；行不存在返回 false
func (c *Cart) UpdateItem(productID, size, color string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].Matches(productID, size, color) {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// RecalculateTotal 重算总价
// 总价 = 本次传入的单价 × 各行数量之和；行项目本身不保留单价
func (c *Cart) RecalculateTotal(unitPrice decimal.Decimal) {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.Total = total
}
