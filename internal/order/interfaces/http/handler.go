// Package http 订单 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sa9r/storefront/internal/order/application"
	"github.com/sa9r/storefront/internal/order/domain"
	"github.com/sa9r/storefront/pkg/logger"
	"github.com/sa9r/storefront/pkg/response"
	"github.com/shopspring/decimal"
)

// OrderHandler HTTP 处理器
// 负责处理与订单相关的 HTTP 请求
type OrderHandler struct {
	app *application.OrderApplicationService
}

// NewOrderHandler 创建 HTTP 处理器实例
func NewOrderHandler(app *application.OrderApplicationService) *OrderHandler {
	return &OrderHandler{app: app}
}

// RegisterRoutes 注册路由
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/orders")
	{
		api.POST("", h.CreateOrder)
		api.GET("", h.GetAllOrders)
		api.GET("/user/:email", h.GetUserOrders)
		api.PUT("/:orderId/status", h.UpdateOrderStatus)
	}
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	Email string             `json:"email"`
	Phone string             `json:"phone"`
	Items []domain.OrderItem `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder 创建订单
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.app.CreateOrder(c.Request.Context(), req.Email, req.Phone, req.Items, req.Total)
	if err != nil {
		if errors.Is(err, application.ErrMissingFields) {
			response.Error(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		logger.Error(c.Request.Context(), "Failed to create order", "error", err)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Created(c, gin.H{"order": order})
}

// GetUserOrders 按邮箱查询订单
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.Error(c, http.StatusBadRequest, "Email is required")
		return
	}

	orders := h.app.GetOrdersByEmail(c.Request.Context(), email)
	response.Success(c, gin.H{"orders": orders})
}

// GetAllOrders 获取全部订单
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	orders := h.app.GetAllOrders(c.Request.Context())
	response.Success(c, gin.H{"orders": orders})
}

// UpdateOrderStatus 更新订单状态
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.app.UpdateStatus(c.Request.Context(), orderID, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, application.ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, "Order not found")
		default:
			logger.Error(c.Request.Context(), "Failed to update order status", "order_id", orderID, "error", err)
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Success(c, gin.H{"order": order})
}
