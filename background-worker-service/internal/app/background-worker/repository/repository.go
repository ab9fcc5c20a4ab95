package repository

import (
	"context"

	"github.com/google/uuid"
)

// MerchantRepository интерфейс для чтения продавцов из PostgreSQL
type MerchantRepository interface {
	// GetAllIDs возвращает идентификаторы всех продавцов для ночного пересчёта
	GetAllIDs(ctx context.Context) ([]uuid.UUID, error)
}

// ProcessedEventRepository интерфейс дедупликации событий в Redis
// Kafka дает at-least-once доставку, поэтому повторы отсеиваются по review_id
type ProcessedEventRepository interface {
	// TryMark атомарно помечает событие обработанным
	// Возвращает false, если событие уже было помечено ранее
	TryMark(ctx context.Context, reviewID string) (bool, error)

	// Release снимает отметку, чтобы событие можно было обработать повторно
	Release(ctx context.Context, reviewID string) error
}
