package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trustmarket/pkg/logger"
	"trustmarket/pkg/metrics"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
// Пайплайны скоринга открыты для вызова из фронтенда (открытый CORS,
// preflight OPTIONS обрабатывается автоматически), админ-панели - за JWT
func SetupRoutes(scoringHandler *ScoringHandler, adminHandler *AdminHandler, authMiddleware *AuthMiddleware) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(logger.GinLoggerMiddleware())

	router.Use(metrics.GinPrometheusMiddleware("scoring-service"))

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Client-Info", "ApiKey"},
		MaxAge:       300,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "scoring-service",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	scoring := router.Group("/scoring")
	{
		scoring.POST("/customer-credibility", scoringHandler.RecomputeCredibility)
		scoring.POST("/merchant-grade", scoringHandler.RecomputeGrade)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware.Authenticate())
	{
		admin.GET("/customers/:customer_id", adminHandler.GetCustomer)
		admin.PUT("/customers/:customer_id", adminHandler.UpdateCustomerParameters)
		admin.GET("/merchants/:merchant_id", adminHandler.GetMerchant)
		admin.PUT("/merchants/:merchant_id", adminHandler.UpdateMerchantMetrics)
	}

	return router
}
