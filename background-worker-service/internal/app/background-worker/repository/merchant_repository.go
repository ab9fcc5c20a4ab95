package repository

import (
	"context"
	"fmt"

	"trustmarket/background-worker-service/internal/app/background-worker/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// merchantRepository реализует MerchantRepository на marketplace базе
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository создает новый репозиторий продавцов
func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{db: db}
}

// GetAllIDs возвращает идентификаторы всех продавцов
func (r *merchantRepository) GetAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entity.Merchant{}).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get merchant ids: %w", err)
	}

	return ids, nil
}
