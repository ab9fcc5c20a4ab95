package repository

import (
	"context"
	"errors"

	"trustmarket/scoring-service/internal/app/scoring/entity"

	"github.com/google/uuid"
)

var (
	// Стандартные ошибки репозиториев для обработки в service layer
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrReviewNotFound   = errors.New("review not found")
)

// CustomerRepository доступ к строкам покупателей в PostgreSQL
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// IncrementPurchaseValue атомарно прибавляет delta к purchase_value_rupees
	// и возвращает новое значение (защита от потерянных обновлений при гонке)
	IncrementPurchaseValue(ctx context.Context, id uuid.UUID, delta float64) (float64, error)
	UpdateReviewSnapshot(ctx context.Context, id uuid.UUID, snapshot *entity.ReviewSnapshot) error
	UpdateCredibilityScore(ctx context.Context, id uuid.UUID, score float64) error
	UpdateParameters(ctx context.Context, id uuid.UUID, params *entity.CustomerParameters) error
}

// MerchantRepository доступ к строкам продавцов в PostgreSQL
type MerchantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)
	UpdateCreditTag(ctx context.Context, id uuid.UUID, tag string) error
	UpdateMetrics(ctx context.Context, id uuid.UUID, metrics *entity.MerchantMetrics) error
}

// ReviewRepository доступ к строкам отзывов в PostgreSQL (только чтение)
// Отзывы создаёт Reviews Service, пайплайн их никогда не пишет
type ReviewRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
}
