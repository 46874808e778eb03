// Package http 购物车 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sa9r/storefront/internal/cart/application"
	"github.com/sa9r/storefront/pkg/response"
	"github.com/shopspring/decimal"
)

// 未携带 cartId 的请求落到默认购物车
const defaultCartID = "default"

// CartHandler HTTP 处理器
// 负责处理与购物车相关的 HTTP 请求
type CartHandler struct {
	app *application.CartApplicationService
}

// NewCartHandler 创建 HTTP 处理器实例
func NewCartHandler(app *application.CartApplicationService) *CartHandler {
	return &CartHandler{app: app}
}

// RegisterRoutes 注册路由
// cartId 为可选路径参数，每个操作注册带参与不带参两条路由
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/cart")
	{
		api.GET("", h.GetCart)
		api.GET("/:cartId", h.GetCart)
		api.POST("/add", h.AddItem)
		api.POST("/:cartId/add", h.AddItem)
		api.PUT("/update", h.UpdateItem)
		api.PUT("/:cartId/update", h.UpdateItem)
		api.DELETE("/clear", h.ClearCart)
		api.DELETE("/:cartId/clear", h.ClearCart)
	}
}

// CartItemRequest 购物车行项目请求
type CartItemRequest struct {
	ProductID string          `json:"productId"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// cartID 提取路径中的 cartId，缺省为 default
func cartID(c *gin.Context) string {
	if id := c.Param("cartId"); id != "" {
		return id
	}
	return defaultCartID
}

// GetCart 获取购物车
func (h *CartHandler) GetCart(c *gin.Context) {
	cart := h.app.GetCart(c.Request.Context(), cartID(c))
	response.Success(c, gin.H{"cart": cart})
}

// AddItem 加入行项目
func (h *CartHandler) AddItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cart := h.app.AddItem(c.Request.Context(), cartID(c), req.ProductID, req.Size, req.Color, req.Quantity, req.Price)
	response.Success(c, gin.H{"cart": cart})
}

// UpdateItem 更新行项目数量
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.app.UpdateItem(c.Request.Context(), cartID(c), req.ProductID, req.Size, req.Color, req.Quantity, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrCartNotFound):
			response.Error(c, http.StatusNotFound, "Cart not found")
		case errors.Is(err, application.ErrItemNotFound):
			response.Error(c, http.StatusNotFound, "Item not found in cart")
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Success(c, gin.H{"cart": cart})
}

// ClearCart 清空购物车
func (h *CartHandler) ClearCart(c *gin.Context) {
	cart := h.app.ClearCart(c.Request.Context(), cartID(c))
	response.Success(c, gin.H{"cart": cart})
}
