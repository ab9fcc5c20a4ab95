package service

import (
	"context"
	"fmt"
	"time"

	"trustmarket/background-worker-service/internal/app/background-worker/entity"
	"trustmarket/background-worker-service/internal/app/background-worker/repository"
	"trustmarket/pkg/logger"
)

// RegradeService выполняет ночной пересчёт грейдов всех продавцов
type RegradeService struct {
	merchantRepo  repository.MerchantRepository
	scoringClient ScoringAPIClient
}

// NewRegradeService создает новый сервис пересчёта грейдов
func NewRegradeService(
	merchantRepo repository.MerchantRepository,
	scoringClient ScoringAPIClient,
) *RegradeService {
	return &RegradeService{
		merchantRepo:  merchantRepo,
		scoringClient: scoringClient,
	}
}

// RegradeAllMerchants пересчитывает грейды всех продавцов по очереди
// Ошибка по одному продавцу не прерывает прогон - логируем и идем дальше
func (s *RegradeService) RegradeAllMerchants(ctx context.Context) (*entity.RegradeSummary, error) {
	startedAt := time.Now()

	ids, err := s.merchantRepo.GetAllIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}

	summary := &entity.RegradeSummary{
		Total:     len(ids),
		StartedAt: startedAt,
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return summary, fmt.Errorf("regrade interrupted: %w", ctx.Err())
		}

		result, err := s.scoringClient.RecomputeGrade(ctx, id.String())
		if err != nil {
			summary.Failed++
			logger.Error().
				Err(err).
				Str("merchant_id", id.String()).
				Msg("Failed to regrade merchant")
			continue
		}

		summary.Succeeded++
		logger.Info().
			Str("merchant_id", id.String()).
			Str("grade", result.Grade).
			Float64("trust_score", result.TrustScore).
			Msg("Merchant regraded")
	}

	summary.Duration = time.Since(startedAt).String()

	logger.Info().
		Int("total", summary.Total).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Str("duration", summary.Duration).
		Msg("Nightly merchant regrade completed")

	return summary, nil
}
