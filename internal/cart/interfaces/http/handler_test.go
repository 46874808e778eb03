package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sa9r/storefront/internal/cart/application"
	"github.com/sa9r/storefront/internal/cart/domain"
	"github.com/sa9r/storefront/internal/cart/infrastructure/persistence/memory"
	"github.com/stretchr/testify/require"
)

type cartResponse struct {
	Cart domain.Cart `json:"cart"`
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	app := application.NewCartApplicationService(memory.NewCartRepository())
	NewCartHandler(app).RegisterRoutes(router.Group("/api"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetCartCreatesDefault(t *testing.T) {
	router := newRouter()

	w := doJSON(t, router, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "default", resp.Cart.ID)
	require.Empty(t, resp.Cart.Items)
}

func TestAddItemWithCartID(t *testing.T) {
	router := newRouter()

	body := `{"productId":"p1","size":"M","color":"black","quantity":1,"price":20}`
	w := doJSON(t, router, http.MethodPost, "/api/cart/c1/add", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "c1", resp.Cart.ID)
	require.Len(t, resp.Cart.Items, 1)
	require.Equal(t, "20", resp.Cart.Total.String())

	// 同键再次加入，总价按本次单价对全部行重算
	body = `{"productId":"p1","size":"M","color":"black","quantity":2,"price":20}`
	w = doJSON(t, router, http.MethodPost, "/api/cart/c1/add", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cart.Items, 1)
	require.Equal(t, 3, resp.Cart.Items[0].Quantity)
	require.Equal(t, "60", resp.Cart.Total.String())
}

func TestAddItemWithoutCartIDUsesDefault(t *testing.T) {
	router := newRouter()

	body := `{"productId":"p1","size":"M","color":"black","quantity":1,"price":20}`
	w := doJSON(t, router, http.MethodPost, "/api/cart/add", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "default", resp.Cart.ID)
}

func TestUpdateItemNotFound(t *testing.T) {
	router := newRouter()

	// 购物车不存在
	body := `{"productId":"p1","size":"M","color":"black","quantity":1,"price":20}`
	w := doJSON(t, router, http.MethodPut, "/api/cart/missing/update", body)
	require.Equal(t, http.StatusNotFound, w.Code)

	// 行项目不存在
	doJSON(t, router, http.MethodPost, "/api/cart/c1/add", body)
	other := `{"productId":"p9","size":"M","color":"black","quantity":1,"price":20}`
	w = doJSON(t, router, http.MethodPut, "/api/cart/c1/update", other)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateItemToZero(t *testing.T) {
	router := newRouter()

	body := `{"productId":"p1","size":"M","color":"black","quantity":1,"price":20}`
	doJSON(t, router, http.MethodPost, "/api/cart/c1/add", body)

	zero := `{"productId":"p1","size":"M","color":"black","quantity":0,"price":20}`
	w := doJSON(t, router, http.MethodPut, "/api/cart/c1/update", zero)
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Cart.Items)
}

func TestClearCart(t *testing.T) {
	router := newRouter()

	body := `{"productId":"p1","size":"M","color":"black","quantity":3,"price":20}`
	doJSON(t, router, http.MethodPost, "/api/cart/c1/add", body)

	w := doJSON(t, router, http.MethodDelete, "/api/cart/c1/clear", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Cart.Items)
	require.True(t, resp.Cart.Total.IsZero())
}
