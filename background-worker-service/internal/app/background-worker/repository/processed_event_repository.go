package repository

import (
	"context"
	"fmt"
	"time"

	"trustmarket/background-worker-service/internal/app/background-worker/entity"
	"trustmarket/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// processedEventRepository реализует ProcessedEventRepository поверх Redis
type processedEventRepository struct {
	client *redis.Client
	ttl    time.Duration // Срок хранения отметки об обработке
}

// NewProcessedEventRepository создает новый репозиторий дедупликации
func NewProcessedEventRepository(client *redis.Client, ttl time.Duration) ProcessedEventRepository {
	return &processedEventRepository{
		client: client,
		ttl:    ttl,
	}
}

// TryMark атомарно помечает событие обработанным через SETNX
// Возвращает false, если ключ уже существует - событие дубликат
func (r *processedEventRepository) TryMark(ctx context.Context, reviewID string) (bool, error) {
	key := entity.GetRedisKeyForProcessedEvent(reviewID)

	timer := metrics.NewRedisTimer("background-worker-service", metrics.RedisOpSetNX)
	ok, err := r.client.SetNX(ctx, key, time.Now().Format(time.RFC3339), r.ttl).Result()
	timer.ObserveDuration()

	if err != nil {
		metrics.RecordRedisError("background-worker-service", metrics.RedisOpSetNX)
		return false, fmt.Errorf("failed to mark event as processed: %w", err)
	}

	return ok, nil
}

// Release снимает отметку после неудачной обработки
// Иначе ретрай того же события был бы отброшен как дубликат
func (r *processedEventRepository) Release(ctx context.Context, reviewID string) error {
	key := entity.GetRedisKeyForProcessedEvent(reviewID)

	timer := metrics.NewRedisTimer("background-worker-service", metrics.RedisOpDel)
	err := r.client.Del(ctx, key).Err()
	timer.ObserveDuration()

	if err != nil {
		metrics.RecordRedisError("background-worker-service", metrics.RedisOpDel)
		return fmt.Errorf("failed to release processed mark: %w", err)
	}

	return nil
}
