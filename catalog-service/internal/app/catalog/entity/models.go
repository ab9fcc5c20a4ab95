package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category - категория товаров
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Product - товар витрины
type Product struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductOffer - предложение продавца по товару (строка product_merchants)
// Один товар могут продавать несколько продавцов с разными ценами
type ProductOffer struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	MerchantID   uuid.UUID `json:"merchant_id"`
	MerchantName string    `json:"merchant_name"`
	CreditTag    string    `json:"credit_tag"`
	Price        float64   `json:"price"`
	ShippingCost float64   `json:"shipping_cost"`
	StockCount   int       `json:"stock_count"`
}

// ProductDetail - карточка товара: категория и все предложения продавцов
type ProductDetail struct {
	Product
	Category *Category      `json:"category,omitempty"`
	Offers   []ProductOffer `json:"offers"`
}

// Merchant - продавец с текущим грейдом
type Merchant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreditTag string    `json:"credit_tag"`
	CreatedAt time.Time `json:"created_at"`
}

// Customer - покупатель
type Customer struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	JoinDate             time.Time `json:"join_date"`
	CredibilityScore     float64   `json:"credibility_score"`
	CustomerTenureMonths int       `json:"customer_tenure_months"`
	PurchaseValueRupees  float64   `json:"purchase_value_rupees"`
	TotalOrders          int       `json:"total_orders"`
	TotalReviews         int       `json:"total_reviews"`
}

// Order - заказ покупателя
type Order struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Status      string    `json:"status"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// CustomerProfile - профиль покупателя с историей заказов
type CustomerProfile struct {
	Customer Customer `json:"customer"`
	Orders   []Order  `json:"orders"`
}
