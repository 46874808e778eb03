// Storefront 主程序
// 功能：提供商品目录浏览、购物车、下单、订单查询与管理后台接口
// 架构：单进程 REST-over-JSON 服务，目录/订单/用户为 JSON 文件，购物车驻留内存
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	adminapp "github.com/sa9r/storefront/internal/admin/application"
	adminhttp "github.com/sa9r/storefront/internal/admin/interfaces/http"
	cartapp "github.com/sa9r/storefront/internal/cart/application"
	cartmemory "github.com/sa9r/storefront/internal/cart/infrastructure/persistence/memory"
	carthttp "github.com/sa9r/storefront/internal/cart/interfaces/http"
	catalogapp "github.com/sa9r/storefront/internal/catalog/application"
	catalogfile "github.com/sa9r/storefront/internal/catalog/infrastructure/persistence/file"
	cataloghttp "github.com/sa9r/storefront/internal/catalog/interfaces/http"
	orderapp "github.com/sa9r/storefront/internal/order/application"
	orderfile "github.com/sa9r/storefront/internal/order/infrastructure/persistence/file"
	orderhttp "github.com/sa9r/storefront/internal/order/interfaces/http"
	"github.com/sa9r/storefront/pkg/config"
	"github.com/sa9r/storefront/pkg/logger"
	"github.com/sa9r/storefront/pkg/middleware"
)

func main() {
	// 1. 加载配置
	var configPath string
	flag.StringVar(&configPath, "config", "configs/storefront/config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	loggerCfg := logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}
	if err := logger.Init(loggerCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting Storefront",
		"service", cfg.ServiceName,
		"version", cfg.Version,
		"environment", cfg.Environment,
	)

	// 3. 金额字段按 JSON 数字输出
	decimal.MarshalJSONWithoutQuotes = true

	// 4. 初始化仓储
	productRepo := catalogfile.NewProductRepository(cfg.Data.ProductsPath)
	cartRepo := cartmemory.NewCartRepository()
	orderRepo := orderfile.NewOrderRepository(cfg.Data.OrdersPath)
	userRepo := orderfile.NewUserRepository(cfg.Data.UsersPath)

	// 5. 初始化应用服务
	catalogService := catalogapp.NewCatalogApplicationService(productRepo)
	cartService := cartapp.NewCartApplicationService(cartRepo)
	orderService := orderapp.NewOrderApplicationService(orderRepo, userRepo)
	adminService := adminapp.NewAdminApplicationService()

	// 6. 创建 HTTP 服务器
	httpServer := createHTTPServer(cfg, catalogService, cartService, orderService, adminService)

	// 7. 启动 HTTP 服务器
	go func() {
		logger.Info(ctx, "Starting HTTP server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "HTTP server error", "error", err)
		}
	}()

	// 8. 优雅关停
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info(ctx, "Shutting down Storefront")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown error", "error", err)
	}

	logger.Info(ctx, "Storefront stopped")
}

// createHTTPServer 创建 HTTP 服务器
func createHTTPServer(
	cfg *config.Config,
	catalogService *catalogapp.CatalogApplicationService,
	cartService *cartapp.CartApplicationService,
	orderService *orderapp.OrderApplicationService,
	adminService *adminapp.AdminApplicationService,
) *http.Server {
	router := gin.New()

	// 添加中间件
	router.Use(middleware.GinLoggingMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.MaxTokens, cfg.RateLimit.RefillRate)
		router.Use(middleware.GinRateLimitMiddleware(limiter))
	}

	// 注册路由
	api := router.Group("/api")
	cataloghttp.NewCatalogHandler(catalogService).RegisterRoutes(api)
	carthttp.NewCartHandler(cartService).RegisterRoutes(api)
	orderhttp.NewOrderHandler(orderService).RegisterRoutes(api)
	adminhttp.NewAdminHandler(adminService).RegisterRoutes(api)

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from SA9R API server!"})
	})

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServiceName,
			"timestamp": time.Now().Unix(),
		})
	})

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}
}
