package service

import (
	"errors"
	"fmt"
)

var (
	// Ошибки валидации - возвращаются до любого сетевого вызова
	ErrCustomerIDRequired = errors.New("customer_id is required")
	ErrReviewIDRequired   = errors.New("review_id is required")
	ErrManualDataRequired = errors.New("manual_data is required in test mode")
	ErrMerchantIDRequired = errors.New("merchant_id is required")

	// Ошибки бизнес-логики для обработки в handlers
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrReviewNotFound   = errors.New("review not found")

	// ErrInvalidMLResponse - модель ответила 2xx, но тело не содержит ожидаемого поля
	// или скор вне допустимого диапазона
	ErrInvalidMLResponse = errors.New("invalid response from ML API")
)

// MLAPIError - ответ ML endpoint'а со статусом вне 2xx
// Тело ответа сохраняется и отдаётся вызывающему без изменений
type MLAPIError struct {
	StatusCode int
	Body       string
}

func (e *MLAPIError) Error() string {
	return fmt.Sprintf("ML API returned status %d: %s", e.StatusCode, e.Body)
}
