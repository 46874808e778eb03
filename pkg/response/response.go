// Package response 提供统一的 HTTP 响应辅助函数
// 响应体保持与客户端约定的原始格式：成功时直接返回数据对象，失败时返回 {"error": message}
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 返回 200 成功响应
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created 返回 201 创建成功响应
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error 返回错误响应
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
