package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewEvent - событие из топика review_events
// Несет все данные отзыва, чтобы worker не ходил за ними обратно в reviews-service
type ReviewEvent struct {
	EventType        string    `json:"event_type"` // REVIEW_CREATED
	ReviewID         string    `json:"review_id"`
	CustomerID       string    `json:"customer_id"`
	ProductID        string    `json:"product_id"`
	MerchantID       string    `json:"merchant_id"`
	Rating           int       `json:"rating"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	ProductPrice     float64   `json:"product_price"`
	Timestamp        time.Time `json:"timestamp"`
}

const (
	EventTypeReviewCreated = "REVIEW_CREATED"
)

// Merchant - продавец для ночного пересчёта грейдов
// Worker читает только идентификаторы, сам пересчёт делает scoring-service
type Merchant struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name string    `json:"name" gorm:"type:varchar(255);not null"`
}

func (Merchant) TableName() string {
	return "merchants"
}

// CredibilityResult - ответ scoring-service на пересчёт кредибилити
type CredibilityResult struct {
	Success              bool    `json:"success"`
	CredibilityScore     float64 `json:"credibility_score"`
	UpdatedPurchaseValue float64 `json:"updated_purchase_value"`
}

// GradeResult - ответ scoring-service на пересчёт грейда
type GradeResult struct {
	Success    bool    `json:"success"`
	Grade      string  `json:"grade"`
	TrustScore float64 `json:"trust_score"`
}

// RegradeSummary - итог ночного прогона по всем продавцам
type RegradeSummary struct {
	Total     int       `json:"total"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
}

const (
	// Префикс для ключей дедупликации обработанных событий: review_events:processed:<review_id>
	RedisKeyPrefixProcessed = "review_events:processed:"
)

func GetRedisKeyForProcessedEvent(reviewID string) string {
	return RedisKeyPrefixProcessed + reviewID
}
