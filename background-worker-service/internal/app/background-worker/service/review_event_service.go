package service

import (
	"context"
	"fmt"

	"trustmarket/background-worker-service/internal/app/background-worker/entity"
	"trustmarket/background-worker-service/internal/app/background-worker/repository"
	"trustmarket/pkg/logger"
)

// ReviewEventService обрабатывает события отзывов из Kafka
// На каждый REVIEW_CREATED дергает пересчёт кредибилити в scoring-service
type ReviewEventService struct {
	processedRepo repository.ProcessedEventRepository
	scoringClient ScoringAPIClient
}

// NewReviewEventService создает новый сервис обработки событий отзывов
func NewReviewEventService(
	processedRepo repository.ProcessedEventRepository,
	scoringClient ScoringAPIClient,
) *ReviewEventService {
	return &ReviewEventService{
		processedRepo: processedRepo,
		scoringClient: scoringClient,
	}
}

// ProcessReviewEvent обрабатывает событие отзыва из Kafka
func (s *ReviewEventService) ProcessReviewEvent(ctx context.Context, event *entity.ReviewEvent) error {
	switch event.EventType {
	case entity.EventTypeReviewCreated:
		return s.processReviewCreated(ctx, event)
	default:
		logger.Warn().
			Str("event_type", event.EventType).
			Str("review_id", event.ReviewID).
			Msg("Unknown event type, skipping")
		return nil
	}
}

// processReviewCreated обрабатывает событие REVIEW_CREATED
// Kafka дает at-least-once доставку, поэтому сначала дедупликация по review_id
func (s *ReviewEventService) processReviewCreated(ctx context.Context, event *entity.ReviewEvent) error {
	if event.ReviewID == "" || event.CustomerID == "" {
		return fmt.Errorf("malformed review event: review_id=%q customer_id=%q", event.ReviewID, event.CustomerID)
	}

	firstSeen, err := s.processedRepo.TryMark(ctx, event.ReviewID)
	if err != nil {
		return fmt.Errorf("failed to check event deduplication: %w", err)
	}
	if !firstSeen {
		logger.Info().
			Str("review_id", event.ReviewID).
			Msg("Duplicate review event, skipping")
		return nil
	}

	result, err := s.scoringClient.RecomputeCredibility(ctx, event.CustomerID, event.ReviewID, event.ProductPrice)
	if err != nil {
		// Снимаем отметку, иначе ретрай будет отброшен как дубликат
		if releaseErr := s.processedRepo.Release(ctx, event.ReviewID); releaseErr != nil {
			logger.Error().
				Err(releaseErr).
				Str("review_id", event.ReviewID).
				Msg("Failed to release processed mark after scoring error")
		}
		return fmt.Errorf("failed to recompute credibility: %w", err)
	}

	logger.Info().
		Str("review_id", event.ReviewID).
		Str("customer_id", event.CustomerID).
		Float64("credibility_score", result.CredibilityScore).
		Float64("purchase_value", result.UpdatedPurchaseValue).
		Msg("Credibility recomputed for review")

	return nil
}
