package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer представляет покупателя маркетплейса
// Пайплайн кредибилити читает и обновляет поля скоринга
type Customer struct {
	ID                   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name                 string    `json:"name" gorm:"type:varchar(255);not null"`
	Email                string    `json:"email" gorm:"type:varchar(255);not null"`
	CredibilityScore     float64   `json:"credibility_score" gorm:"type:decimal(5,2);not null;default:0"` // 0-100, пишется только пайплайном
	CustomerTenureMonths int       `json:"customer_tenure_months" gorm:"not null;default:0"`              // Месяцев с момента регистрации
	PurchaseValueRupees  float64   `json:"purchase_value_rupees" gorm:"type:decimal(12,2);not null;default:0"`
	LastReviewText       string    `json:"last_review_text" gorm:"type:text"` // Снапшот последнего отзыва для ручного тестирования модели
	LastStarRating       int       `json:"last_star_rating" gorm:"not null;default:0"`
	LastVerifiedPurchase int       `json:"last_verified_purchase" gorm:"not null;default:0"` // 0/1
	JoinDate             time.Time `json:"join_date"`
	TotalOrders          int       `json:"total_orders" gorm:"not null;default:0"`
	TotalReviews         int       `json:"total_reviews" gorm:"not null;default:0"`
	CreatedAt            time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (Customer) TableName() string {
	return "customers"
}

// ReviewSnapshot денормализованный снапшот последнего отзыва покупателя
// Сохраняется в строку customers после каждого прогона пайплайна в обычном режиме
type ReviewSnapshot struct {
	LastReviewText       string
	LastStarRating       int
	LastVerifiedPurchase int // 0/1
}

// CustomerParameters редактируемые параметры покупателя (админ-панель)
type CustomerParameters struct {
	CustomerTenureMonths int      `json:"customer_tenure_months" validate:"min=0"`
	PurchaseValueRupees  float64  `json:"purchase_value_rupees" validate:"min=0"`
	LastReviewText       string   `json:"last_review_text"`
	LastStarRating       int      `json:"last_star_rating" validate:"min=0,max=5"`
	LastVerifiedPurchase BoolFlag `json:"last_verified_purchase"`
}

// Merchant представляет продавца маркетплейса
// 16 метрик качества - входы внешней модели грейдинга; NULL трактуется как 0
type Merchant struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	CreditTag    string    `json:"credit_tag" gorm:"type:varchar(50)"` // Excellent/Good/Moderate, пишется только пайплайном
	Rating       float64   `json:"rating" gorm:"type:decimal(3,2);not null;default:0"`
	TotalReviews int       `json:"total_reviews" gorm:"not null;default:0"`

	QualityReturnRate      *float64 `json:"quality_return_rate" gorm:"type:decimal(6,4)"`
	DefectRate             *float64 `json:"defect_rate" gorm:"type:decimal(6,4)"`
	AuthenticityScore      *float64 `json:"authenticity_score" gorm:"type:decimal(6,4)"`
	QualitySentiment       *float64 `json:"quality_sentiment" gorm:"type:decimal(6,4)"`
	OnTimeDeliveryRate     *float64 `json:"on_time_delivery_rate" gorm:"type:decimal(6,4)"`
	ShippingAccuracy       *float64 `json:"shipping_accuracy" gorm:"type:decimal(6,4)"`
	OrderFulfillmentRate   *float64 `json:"order_fulfillment_rate" gorm:"type:decimal(6,4)"`
	InventoryAccuracy      *float64 `json:"inventory_accuracy" gorm:"type:decimal(6,4)"`
	AvgRatingNormalized    *float64 `json:"avg_rating_normalized" gorm:"type:decimal(6,4)"` // Шкала 0-5, остальные метрики 0-1
	ReviewSentiment        *float64 `json:"review_sentiment" gorm:"type:decimal(6,4)"`
	PositiveReviewRatio    *float64 `json:"positive_review_ratio" gorm:"type:decimal(6,4)"`
	ReviewAuthenticity     *float64 `json:"review_authenticity" gorm:"type:decimal(6,4)"`
	ResponseTimeScore      *float64 `json:"response_time_score" gorm:"type:decimal(6,4)"`
	QueryResolutionRate    *float64 `json:"query_resolution_rate" gorm:"type:decimal(6,4)"`
	ServiceSatisfaction    *float64 `json:"service_satisfaction" gorm:"type:decimal(6,4)"`
	ProactiveCommunication *float64 `json:"proactive_communication" gorm:"type:decimal(6,4)"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (Merchant) TableName() string {
	return "merchants"
}

// MerchantMetrics редактируемый набор из 16 метрик качества (админ-панель)
type MerchantMetrics struct {
	QualityReturnRate      float64 `json:"quality_return_rate" validate:"min=0,max=1"`
	DefectRate             float64 `json:"defect_rate" validate:"min=0,max=1"`
	AuthenticityScore      float64 `json:"authenticity_score" validate:"min=0,max=1"`
	QualitySentiment       float64 `json:"quality_sentiment" validate:"min=0,max=1"`
	OnTimeDeliveryRate     float64 `json:"on_time_delivery_rate" validate:"min=0,max=1"`
	ShippingAccuracy       float64 `json:"shipping_accuracy" validate:"min=0,max=1"`
	OrderFulfillmentRate   float64 `json:"order_fulfillment_rate" validate:"min=0,max=1"`
	InventoryAccuracy      float64 `json:"inventory_accuracy" validate:"min=0,max=1"`
	AvgRatingNormalized    float64 `json:"avg_rating_normalized" validate:"min=0,max=5"`
	ReviewSentiment        float64 `json:"review_sentiment" validate:"min=0,max=1"`
	PositiveReviewRatio    float64 `json:"positive_review_ratio" validate:"min=0,max=1"`
	ReviewAuthenticity     float64 `json:"review_authenticity" validate:"min=0,max=1"`
	ResponseTimeScore      float64 `json:"response_time_score" validate:"min=0,max=1"`
	QueryResolutionRate    float64 `json:"query_resolution_rate" validate:"min=0,max=1"`
	ServiceSatisfaction    float64 `json:"service_satisfaction" validate:"min=0,max=1"`
	ProactiveCommunication float64 `json:"proactive_communication" validate:"min=0,max=1"`
}

// Review представляет отзыв о товаре
// Пайплайн читает отзыв как источник признаков для модели кредибилити
type Review struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	MerchantID       uuid.UUID `json:"merchant_id" gorm:"type:uuid;not null"`
	CustomerID       uuid.UUID `json:"customer_id" gorm:"type:uuid;not null"`
	Rating           int       `json:"rating" gorm:"not null"` // Оценка от 1 до 5
	Comment          string    `json:"comment" gorm:"type:text"`
	CredibilityScore float64   `json:"credibility_score" gorm:"type:decimal(5,2);not null;default:0"` // Скор покупателя на момент написания
	VerifiedPurchase bool      `json:"verified_purchase" gorm:"not null;default:false"`
	ReviewDate       time.Time `json:"review_date"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (Review) TableName() string {
	return "reviews"
}
