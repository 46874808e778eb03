package file

import (
	"context"
	"encoding/json"
	"os"

	"github.com/sa9r/storefront/internal/order/domain"
	"github.com/sa9r/storefront/pkg/logger"
)

// UserRepository 用户 JSON 文件仓储
type UserRepository struct {
	path string
}

// NewUserRepository 创建用户仓储实例
func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

// List 获取全部用户
// 读取或解析失败按空列表处理
func (r *UserRepository) List(ctx context.Context) []*domain.User {
	data, err := os.ReadFile(r.path)
	if err != nil {
		logger.Error(ctx, "Failed to read users file", "path", r.path, "error", err)
		return []*domain.User{}
	}

	var users []*domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		logger.Error(ctx, "Failed to parse users file", "path", r.path, "error", err)
		return []*domain.User{}
	}

	return users
}

// ReplaceAll 整体重写用户文件
func (r *UserRepository) ReplaceAll(ctx context.Context, users []*domain.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}
