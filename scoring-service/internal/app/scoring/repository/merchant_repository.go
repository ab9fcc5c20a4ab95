package repository

import (
	"context"
	"errors"

	"trustmarket/scoring-service/internal/app/scoring/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository создает новый репозиторий продавцов
func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{db: db}
}

// GetByID получает продавца со всеми 16 метриками качества
func (r *merchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchant entity.Merchant
	result := r.db.WithContext(ctx).First(&merchant, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, result.Error
	}

	return &merchant, nil
}

// UpdateCreditTag записывает грейд, возвращённый внешней моделью
func (r *merchantRepository) UpdateCreditTag(ctx context.Context, id uuid.UUID, tag string) error {
	result := r.db.WithContext(ctx).Model(&entity.Merchant{}).
		Where("id = ?", id).
		Update("credit_tag", tag)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMerchantNotFound
	}

	return nil
}

// UpdateMetrics обновляет 16 входных метрик модели (админ-панель)
func (r *merchantRepository) UpdateMetrics(ctx context.Context, id uuid.UUID, metrics *entity.MerchantMetrics) error {
	result := r.db.WithContext(ctx).Model(&entity.Merchant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quality_return_rate":     metrics.QualityReturnRate,
			"defect_rate":             metrics.DefectRate,
			"authenticity_score":      metrics.AuthenticityScore,
			"quality_sentiment":       metrics.QualitySentiment,
			"on_time_delivery_rate":   metrics.OnTimeDeliveryRate,
			"shipping_accuracy":       metrics.ShippingAccuracy,
			"order_fulfillment_rate":  metrics.OrderFulfillmentRate,
			"inventory_accuracy":      metrics.InventoryAccuracy,
			"avg_rating_normalized":   metrics.AvgRatingNormalized,
			"review_sentiment":        metrics.ReviewSentiment,
			"positive_review_ratio":   metrics.PositiveReviewRatio,
			"review_authenticity":     metrics.ReviewAuthenticity,
			"response_time_score":     metrics.ResponseTimeScore,
			"query_resolution_rate":   metrics.QueryResolutionRate,
			"service_satisfaction":    metrics.ServiceSatisfaction,
			"proactive_communication": metrics.ProactiveCommunication,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMerchantNotFound
	}

	return nil
}
