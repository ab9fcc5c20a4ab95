package service

import (
	"context"
	"errors"
	"fmt"

	"trustmarket/pkg/logger"
	"trustmarket/pkg/metrics"
	"trustmarket/scoring-service/internal/app/scoring/entity"
	"trustmarket/scoring-service/internal/app/scoring/repository"

	"github.com/google/uuid"
)

// GradingService реализует пайплайн пересчёта грейда продавца
// Категориальный credit_tag целиком определяется внешней моделью
type GradingService struct {
	merchantRepo repository.MerchantRepository
	mlClient     MLClient
}

// NewGradingService создает новый сервис грейдинга с внедрением зависимостей
func NewGradingService(merchantRepo repository.MerchantRepository, mlClient MLClient) *GradingService {
	return &GradingService{
		merchantRepo: merchantRepo,
		mlClient:     mlClient,
	}
}

// RecomputeGrade пересчитывает грейд продавца по его 16 метрикам качества
// Один продавец за вызов, синхронно, без ретраев и батчинга
func (s *GradingService) RecomputeGrade(ctx context.Context, merchantID uuid.UUID) (*entity.GradeResult, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		metrics.MerchantRegrades.WithLabelValues("failed").Inc()
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to fetch merchant: %w", err)
	}

	features := buildMerchantFeatures(merchant)

	prediction, err := s.mlClient.GradeMerchant(ctx, features)
	if err != nil {
		metrics.MerchantRegrades.WithLabelValues("failed").Inc()
		return nil, err
	}

	if prediction.Grade == "" {
		metrics.MerchantRegrades.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: grade field is missing", ErrInvalidMLResponse)
	}

	if err := s.merchantRepo.UpdateCreditTag(ctx, merchantID, prediction.Grade); err != nil {
		metrics.MerchantRegrades.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("failed to persist credit tag: %w", err)
	}

	logger.Info().
		Str("merchant_id", merchantID.String()).
		Str("grade", prediction.Grade).
		Float64("trust_score", prediction.TrustScore).
		Msg("Merchant grade recomputed")

	metrics.MerchantRegrades.WithLabelValues("success").Inc()

	return &entity.GradeResult{
		Success:    true,
		MerchantID: merchantID.String(),
		NewGrade:   prediction.Grade,
		TrustScore: prediction.TrustScore,
	}, nil
}

// buildMerchantFeatures собирает вектор признаков из строки продавца
// NULL-метрики заменяются нулями - модель требует все 16 полей
func buildMerchantFeatures(m *entity.Merchant) *entity.MerchantFeatures {
	return &entity.MerchantFeatures{
		QualityReturnRate:      floatOrZero(m.QualityReturnRate),
		DefectRate:             floatOrZero(m.DefectRate),
		AuthenticityScore:      floatOrZero(m.AuthenticityScore),
		QualitySentiment:       floatOrZero(m.QualitySentiment),
		OnTimeDeliveryRate:     floatOrZero(m.OnTimeDeliveryRate),
		ShippingAccuracy:       floatOrZero(m.ShippingAccuracy),
		OrderFulfillmentRate:   floatOrZero(m.OrderFulfillmentRate),
		InventoryAccuracy:      floatOrZero(m.InventoryAccuracy),
		AvgRatingNormalized:    floatOrZero(m.AvgRatingNormalized),
		ReviewSentiment:        floatOrZero(m.ReviewSentiment),
		PositiveReviewRatio:    floatOrZero(m.PositiveReviewRatio),
		ReviewAuthenticity:     floatOrZero(m.ReviewAuthenticity),
		ResponseTimeScore:      floatOrZero(m.ResponseTimeScore),
		QueryResolutionRate:    floatOrZero(m.QueryResolutionRate),
		ServiceSatisfaction:    floatOrZero(m.ServiceSatisfaction),
		ProactiveCommunication: floatOrZero(m.ProactiveCommunication),
	}
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
