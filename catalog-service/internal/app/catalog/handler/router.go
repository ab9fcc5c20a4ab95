package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trustmarket/pkg/logger"
	"trustmarket/pkg/metrics"
)

// SetupRoutes настраивает маршруты Catalog Service
// Вся витрина каталога публичная, аутентификация не требуется
func SetupRoutes(catalogHandler *CatalogHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(logger.GinLoggerMiddleware())

	router.Use(metrics.GinPrometheusMiddleware("catalog-service"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "catalog-service",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	categories := router.Group("/categories")
	{
		categories.GET("", catalogHandler.GetAllCategories) // Список категорий (кеш Redis)
		categories.GET("/:category_id/products", catalogHandler.GetProductsByCategory)
	}

	products := router.Group("/products")
	{
		products.GET("", catalogHandler.GetAllProducts)
		products.GET("/:product_id", catalogHandler.GetProductDetail) // Карточка с предложениями продавцов
	}

	merchants := router.Group("/merchants")
	{
		merchants.GET("", catalogHandler.GetAllMerchants)
		merchants.GET("/:merchant_id", catalogHandler.GetMerchant)
	}

	router.GET("/customers/:customer_id", catalogHandler.GetCustomerProfile)

	return router
}
