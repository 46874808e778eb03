// Package application 管理后台应用服务
package application

import (
	"context"
	"errors"
)

// 管理后台固定凭证
// 占位用途，不构成安全边界：无口令散列，无会话或令牌签发
const (
	adminUsername = "sa9r"
	adminPassword = "sa9r2024"
)

// ErrInvalidCredentials 凭证不匹配
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminApplicationService 管理后台应用服务
type AdminApplicationService struct{}

// NewAdminApplicationService 创建管理后台应用服务实例
func NewAdminApplicationService() *AdminApplicationService {
	return &AdminApplicationService{}
}

// Login 校验管理员凭证
func (s *AdminApplicationService) Login(ctx context.Context, username, password string) error {
	if username != adminUsername || password != adminPassword {
		return ErrInvalidCredentials
	}
	return nil
}

// Verify 校验管理员访问
// 无会话状态可查，恒定通过
func (s *AdminApplicationService) Verify(ctx context.Context) error {
	return nil
}
