package service

import (
	"context"

	"trustmarket/background-worker-service/internal/app/background-worker/entity"
)

// ScoringAPIClient определяет интерфейс HTTP клиента scoring-service
type ScoringAPIClient interface {
	// RecomputeCredibility запускает пересчёт кредибилити покупателя по отзыву
	RecomputeCredibility(ctx context.Context, customerID, reviewID string, productPrice float64) (*entity.CredibilityResult, error)

	// RecomputeGrade запускает пересчёт грейда продавца
	RecomputeGrade(ctx context.Context, merchantID string) (*entity.GradeResult, error)
}

// ReviewEventServiceInterface определяет интерфейс обработки событий отзывов
type ReviewEventServiceInterface interface {
	// ProcessReviewEvent обрабатывает одно событие из Kafka
	ProcessReviewEvent(ctx context.Context, event *entity.ReviewEvent) error
}

// RegradeServiceInterface определяет интерфейс ночного пересчёта грейдов
type RegradeServiceInterface interface {
	// RegradeAllMerchants пересчитывает грейды всех продавцов
	RegradeAllMerchants(ctx context.Context) (*entity.RegradeSummary, error)
}
