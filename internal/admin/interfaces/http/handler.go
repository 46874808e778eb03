// Package http 管理后台 HTTP 处理器
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sa9r/storefront/internal/admin/application"
	"github.com/sa9r/storefront/pkg/response"
)

// AdminHandler HTTP 处理器
// 负责处理管理后台登录与校验请求
type AdminHandler struct {
	app *application.AdminApplicationService
}

// NewAdminHandler 创建 HTTP 处理器实例
func NewAdminHandler(app *application.AdminApplicationService) *AdminHandler {
	return &AdminHandler{app: app}
}

// RegisterRoutes 注册路由
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/admin")
	{
		api.POST("/login", h.Login)
		api.GET("/verify", h.Verify)
	}
}

// LoginRequest 登录请求
// 字段缺失与凭证错误同样按无效凭证处理
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 管理员登录
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.app.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	response.Success(c, gin.H{
		"success": true,
		"message": "Login successful",
	})
}

// Verify 校验管理员访问
func (h *AdminHandler) Verify(c *gin.Context) {
	if err := h.app.Verify(c.Request.Context()); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	response.Success(c, gin.H{
		"success": true,
		"message": "Admin access verified",
	})
}
