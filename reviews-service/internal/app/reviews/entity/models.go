package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review - отзыв покупателя о товаре
// credibility_score снимается с покупателя в момент записи и больше не меняется
type Review struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID        uuid.UUID `json:"product_id" gorm:"type:uuid;index"`
	MerchantID       uuid.UUID `json:"merchant_id" gorm:"type:uuid"`
	CustomerID       uuid.UUID `json:"customer_id" gorm:"type:uuid;index"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	CredibilityScore float64   `json:"credibility_score"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// Customer - строка покупателя, читается только для снапшота кредибилити
type Customer struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string    `json:"name"`
	CredibilityScore float64   `json:"credibility_score"`
}

func (Customer) TableName() string {
	return "customers"
}

// ReviewEvent - событие REVIEW_CREATED для Kafka
// Несёт всё необходимое для запуска пайплайна кредибилити без обратных запросов
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
