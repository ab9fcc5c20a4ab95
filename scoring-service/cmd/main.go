package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trustmarket/pkg/logger"
	"trustmarket/scoring-service/internal/app/scoring/config"
	"trustmarket/scoring-service/internal/app/scoring/handler"
	"trustmarket/scoring-service/internal/app/scoring/repository"
	"trustmarket/scoring-service/internal/app/scoring/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Init("scoring-service", logLevel)

	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	logger.Info().
		Str("database", cfg.Database.DBName).
		Msg("Connected to PostgreSQL")

	customerRepo := repository.NewCustomerRepository(db)
	merchantRepo := repository.NewMerchantRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	mlClient := service.NewMLClient(cfg.ML.CredibilityURL, cfg.ML.MerchantURL, cfg.ML.TimeoutSec)
	logger.Info().
		Str("credibility_url", cfg.ML.CredibilityURL).
		Str("merchant_url", cfg.ML.MerchantURL).
		Msg("Initialized ML client")

	credibilityService := service.NewCredibilityService(customerRepo, reviewRepo, mlClient)
	gradingService := service.NewGradingService(merchantRepo, mlClient)
	adminService := service.NewAdminService(customerRepo, merchantRepo)

	authMiddleware := handler.NewAuthMiddleware(cfg.JWT.Secret)
	scoringHandler := handler.NewScoringHandler(credibilityService, gradingService)
	adminHandler := handler.NewAdminHandler(adminService)
	router := handler.SetupRoutes(scoringHandler, adminHandler, authMiddleware)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // Запрос держит соединение на время вызова внешней модели
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("Starting Scoring Service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Scoring Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Scoring Service stopped gracefully")
}

// connectDB устанавливает соединение с PostgreSQL через GORM
// Retry с 10 попытками для устойчивости при запуске в Docker
func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			return db, nil
		}

		logger.Warn().
			Int("attempt", i+1).
			Err(err).
			Msg("Failed to connect to PostgreSQL, retrying...")
		time.Sleep(3 * time.Second)
	}

	return nil, err
}
