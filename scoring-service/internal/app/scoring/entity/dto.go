package entity

import (
	"encoding/json"
	"fmt"
)

// BoolFlag нормализует флаг verified_purchase к 0/1
// Клиенты присылают его то как bool, то как число - принимаем оба варианта
type BoolFlag int

// UnmarshalJSON принимает true/false, 0/1 и любые другие числа (ненулевое = 1)
func (f *BoolFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*f = 1
		} else {
			*f = 0
		}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		if n != 0 {
			*f = 1
		} else {
			*f = 0
		}
		return nil
	}

	return fmt.Errorf("invalid boolean flag value: %s", string(data))
}

// Int возвращает нормализованное значение 0 или 1
func (f BoolFlag) Int() int {
	if f != 0 {
		return 1
	}
	return 0
}

// CredibilityRequest - запрос на пересчёт кредибилити покупателя
// Обычный режим: review_id обязателен; тестовый режим: manual_data обязателен
type CredibilityRequest struct {
	CustomerID   string             `json:"customer_id" validate:"required,uuid"`
	ReviewID     string             `json:"review_id" validate:"omitempty,uuid"`
	ProductPrice float64            `json:"product_price" validate:"min=0"`
	TestMode     bool               `json:"test_mode"`
	ManualData   *ManualFeatureData `json:"manual_data"`
}

// ManualFeatureData - признаки, заданные вручную в админ-панели
// Повторяет форму снапшота последнего отзыва покупателя
type ManualFeatureData struct {
	CustomerTenureMonths int      `json:"customer_tenure_months" validate:"min=0"`
	PurchaseValueRupees  float64  `json:"purchase_value_rupees" validate:"min=0"`
	LastReviewText       string   `json:"last_review_text"`
	LastStarRating       int      `json:"last_star_rating" validate:"min=0,max=5"`
	LastVerifiedPurchase BoolFlag `json:"last_verified_purchase"`
}

// GradeRequest - запрос на пересчёт грейда продавца
type GradeRequest struct {
	MerchantID string `json:"merchant_id" validate:"required,uuid"`
}

// CredibilityFeatures - плоский вектор признаков для модели кредибилити
// verified_purchase всегда строго 0 или 1 независимо от формата источника
type CredibilityFeatures struct {
	ReviewText           string  `json:"review_text"`
	StarRating           int     `json:"star_rating"`
	VerifiedPurchase     int     `json:"verified_purchase"`
	CustomerTenureMonths int     `json:"customer_tenure_months"`
	PurchaseValueRupees  float64 `json:"purchase_value_rupees"`
}

// MerchantFeatures - 16 метрик качества для модели грейдинга
// NULL-метрики заменяются нулями при сборке
type MerchantFeatures struct {
	QualityReturnRate      float64 `json:"quality_return_rate"`
	DefectRate             float64 `json:"defect_rate"`
	AuthenticityScore      float64 `json:"authenticity_score"`
	QualitySentiment       float64 `json:"quality_sentiment"`
	OnTimeDeliveryRate     float64 `json:"on_time_delivery_rate"`
	ShippingAccuracy       float64 `json:"shipping_accuracy"`
	OrderFulfillmentRate   float64 `json:"order_fulfillment_rate"`
	InventoryAccuracy      float64 `json:"inventory_accuracy"`
	AvgRatingNormalized    float64 `json:"avg_rating_normalized"`
	ReviewSentiment        float64 `json:"review_sentiment"`
	PositiveReviewRatio    float64 `json:"positive_review_ratio"`
	ReviewAuthenticity     float64 `json:"review_authenticity"`
	ResponseTimeScore      float64 `json:"response_time_score"`
	QueryResolutionRate    float64 `json:"query_resolution_rate"`
	ServiceSatisfaction    float64 `json:"service_satisfaction"`
	ProactiveCommunication float64 `json:"proactive_communication"`
}

// CredibilityPrediction - ответ модели кредибилити
// Указатель различает отсутствующий скор и честный ноль
type CredibilityPrediction struct {
	CredibilityScore *float64 `json:"credibility_score"`

	// Полное тело ответа модели - возвращается клиенту в тестовом режиме
	Raw json.RawMessage `json:"-"`
}

// GradePrediction - ответ модели грейдинга продавца
type GradePrediction struct {
	Grade      string  `json:"grade"`
	TrustScore float64 `json:"trust_score"`
}

// CredibilityResult - итог прогона пайплайна кредибилити
type CredibilityResult struct {
	Success              bool            `json:"success"`
	CredibilityScore     float64         `json:"credibility_score"`
	UpdatedPurchaseValue float64         `json:"updated_purchase_value"`
	MLResponse           json.RawMessage `json:"ml_response,omitempty"` // Только в тестовом режиме
}

// GradeResult - итог прогона пайплайна грейдинга
type GradeResult struct {
	Success    bool    `json:"success"`
	MerchantID string  `json:"merchant_id"`
	NewGrade   string  `json:"new_grade"`
	TrustScore float64 `json:"trust_score"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}
