package domain

import "context"

// OrderRepository 订单仓储接口
// 整文件读改写：读取失败按空列表处理，由实现记录日志
type OrderRepository interface {
	// 获取全部订单
	List(ctx context.Context) []*Order
	// 以给定列表整体重写存储
	ReplaceAll(ctx context.Context, orders []*Order) error
}

// UserRepository 用户仓储接口
type UserRepository interface {
	// 获取全部用户
	List(ctx context.Context) []*User
	// 以给定列表整体重写存储
	ReplaceAll(ctx context.Context, users []*User) error
}
