// Package domain 包含商品目录的领域模型
package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductImages 商品图片（正面/背面）
type ProductImages struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Product 商品实体
// 目录加载后不可变，仅由目录仓储持有
type Product struct {
	// 商品 ID
	ID string `json:"id"`
	// 展示名称
	Name string `json:"name"`
	// 分类：tshirt 或 hoodie
	Category string `json:"category"`
	// 价格
	Price decimal.Decimal `json:"price"`
	// 可选尺码（S/M/L 的子集）
	Sizes []string `json:"sizes"`
	// 可选颜色（black/white 的子集）
	Colors []string `json:"colors"`
	// 图片
	Images ProductImages `json:"images"`
	// 描述
	Description string `json:"description"`
}

// ProductRepository 商品目录仓储接口
// 目录为只读，每次请求重新加载
type ProductRepository interface {
	// 获取全部商品
	List(ctx context.Context) []*Product
}
