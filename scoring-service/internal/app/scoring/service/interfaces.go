package service

import (
	"context"

	"trustmarket/scoring-service/internal/app/scoring/entity"

	"github.com/google/uuid"
)

// MLClient определяет интерфейс для вызова внешних ML endpoint'ов скоринга
// Модели хостятся отдельно и для пайплайна полностью непрозрачны
type MLClient interface {
	// ScoreCustomer отправляет вектор признаков модели кредибилити покупателя
	ScoreCustomer(ctx context.Context, features *entity.CredibilityFeatures) (*entity.CredibilityPrediction, error)
	// GradeMerchant отправляет 16 метрик качества модели грейдинга продавца
	GradeMerchant(ctx context.Context, features *entity.MerchantFeatures) (*entity.GradePrediction, error)
}

// CredibilityServiceInterface определяет пайплайн пересчёта кредибилити покупателя
type CredibilityServiceInterface interface {
	// RecomputeFromReview - обычный режим: признаки берутся из отзыва,
	// результат и снапшот персистятся
	RecomputeFromReview(ctx context.Context, customerID, reviewID uuid.UUID, productPrice float64) (*entity.CredibilityResult, error)
	// RecomputeManual - тестовый режим админ-панели: признаки заданы вручную,
	// в базу ничего не пишется
	RecomputeManual(ctx context.Context, customerID uuid.UUID, manual *entity.ManualFeatureData, productPrice float64) (*entity.CredibilityResult, error)
}

// GradingServiceInterface определяет пайплайн пересчёта грейда продавца
type GradingServiceInterface interface {
	RecomputeGrade(ctx context.Context, merchantID uuid.UUID) (*entity.GradeResult, error)
}

// AdminServiceInterface определяет операции админ-панелей параметров
type AdminServiceInterface interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	UpdateCustomerParameters(ctx context.Context, id uuid.UUID, params *entity.CustomerParameters) error
	GetMerchant(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)
	UpdateMerchantMetrics(ctx context.Context, id uuid.UUID, metrics *entity.MerchantMetrics) error
}
