package entity

// CreateReviewRequest - запрос на создание отзыва
// product_price нужна пайплайну кредибилити и уходит в событие как есть
type CreateReviewRequest struct {
	ProductID        string  `json:"product_id" validate:"required,uuid"`
	MerchantID       string  `json:"merchant_id" validate:"required,uuid"`
	Rating           int     `json:"rating" validate:"required,min=1,max=5"`
	Comment          string  `json:"comment" validate:"required,min=10,max=1000"`
	VerifiedPurchase bool    `json:"verified_purchase"`
	ProductPrice     float64 `json:"product_price" validate:"min=0"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ReviewListResponse - ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
}
