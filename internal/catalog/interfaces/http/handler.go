// Package http 商品目录 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sa9r/storefront/internal/catalog/application"
	"github.com/sa9r/storefront/pkg/response"
)

// CatalogHandler HTTP 处理器
// 负责处理与商品目录相关的 HTTP 请求
type CatalogHandler struct {
	app *application.CatalogApplicationService
}

// NewCatalogHandler 创建 HTTP 处理器实例
func NewCatalogHandler(app *application.CatalogApplicationService) *CatalogHandler {
	return &CatalogHandler{app: app}
}

// RegisterRoutes 注册路由
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/products")
	{
		api.GET("", h.ListProducts)
		api.GET("/category/:category", h.ListProductsByCategory)
		api.GET("/:id", h.GetProduct)
	}
}

// ListProducts 获取全部商品
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.app.ListProducts(c.Request.Context())
	response.Success(c, gin.H{"products": products})
}

// ListProductsByCategory 按分类获取商品
func (h *CatalogHandler) ListProductsByCategory(c *gin.Context) {
	category := c.Param("category")
	products := h.app.ListProductsByCategory(c.Request.Context(), category)
	response.Success(c, gin.H{"products": products})
}

// GetProduct 获取商品详情
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.app.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, product)
}
