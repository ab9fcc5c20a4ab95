package repository

import (
	"context"
	"errors"

	"trustmarket/scoring-service/internal/app/scoring/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository создает новый репозиторий покупателей
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// GetByID получает покупателя по ID
func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	result := r.db.WithContext(ctx).First(&customer, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, result.Error
	}

	return &customer, nil
}

// IncrementPurchaseValue атомарно увеличивает накопленную сумму покупок
// RETURNING исключает потерю обновлений при конкурентных прогонах пайплайна
func (r *customerRepository) IncrementPurchaseValue(ctx context.Context, id uuid.UUID, delta float64) (float64, error) {
	var newValue float64
	result := r.db.WithContext(ctx).Raw(
		`UPDATE customers SET purchase_value_rupees = purchase_value_rupees + ? WHERE id = ? RETURNING purchase_value_rupees`,
		delta, id,
	).Scan(&newValue)

	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		return 0, ErrCustomerNotFound
	}

	return newValue, nil
}

// UpdateReviewSnapshot сохраняет снапшот последнего отзыва в строку покупателя
func (r *customerRepository) UpdateReviewSnapshot(ctx context.Context, id uuid.UUID, snapshot *entity.ReviewSnapshot) error {
	result := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_review_text":       snapshot.LastReviewText,
			"last_star_rating":       snapshot.LastStarRating,
			"last_verified_purchase": snapshot.LastVerifiedPurchase,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// UpdateCredibilityScore записывает скор, возвращённый внешней моделью
// Скор никогда не вычисляется локально - пайплайн только персистит ответ модели
func (r *customerRepository) UpdateCredibilityScore(ctx context.Context, id uuid.UUID, score float64) error {
	result := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).
		Update("credibility_score", score)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// UpdateParameters обновляет редактируемые параметры покупателя (админ-панель)
func (r *customerRepository) UpdateParameters(ctx context.Context, id uuid.UUID, params *entity.CustomerParameters) error {
	result := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_tenure_months": params.CustomerTenureMonths,
			"purchase_value_rupees":  params.PurchaseValueRupees,
			"last_review_text":       params.LastReviewText,
			"last_star_rating":       params.LastStarRating,
			"last_verified_purchase": params.LastVerifiedPurchase.Int(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
