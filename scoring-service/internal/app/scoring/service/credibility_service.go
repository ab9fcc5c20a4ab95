package service

import (
	"context"
	"errors"
	"fmt"

	"trustmarket/pkg/logger"
	"trustmarket/pkg/metrics"
	"trustmarket/scoring-service/internal/app/scoring/entity"
	"trustmarket/scoring-service/internal/app/scoring/repository"

	"github.com/google/uuid"
)

// CredibilityService реализует пайплайн пересчёта кредибилити покупателя:
// чтение состояния -> сборка признаков -> вызов внешней модели -> запись скора.
// Скор нигде не вычисляется локально - сервис персистит ровно то, что вернула модель
type CredibilityService struct {
	customerRepo repository.CustomerRepository
	reviewRepo   repository.ReviewRepository
	mlClient     MLClient
}

// NewCredibilityService создает новый сервис кредибилити с внедрением зависимостей
func NewCredibilityService(
	customerRepo repository.CustomerRepository,
	reviewRepo repository.ReviewRepository,
	mlClient MLClient,
) *CredibilityService {
	return &CredibilityService{
		customerRepo: customerRepo,
		reviewRepo:   reviewRepo,
		mlClient:     mlClient,
	}
}

// RecomputeFromReview пересчитывает кредибилити по свежему отзыву (обычный режим)
// 1. Читает отзыв и покупателя
// 2. При подтверждённой покупке с ценой атомарно увеличивает purchase_value_rupees
// 3. Сохраняет снапшот отзыва в строку покупателя
// 4. Вызывает внешнюю модель и персистит возвращённый скор
func (s *CredibilityService) RecomputeFromReview(ctx context.Context, customerID, reviewID uuid.UUID, productPrice float64) (*entity.CredibilityResult, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		metrics.CredibilityRecomputations.WithLabelValues("normal", "failed").Inc()
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		metrics.CredibilityRecomputations.WithLabelValues("normal", "failed").Inc()
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	verified := 0
	if review.VerifiedPurchase {
		verified = 1
	}

	// Сумма покупок растёт только при подтверждённой покупке с известной ценой
	updatedPurchaseValue := customer.PurchaseValueRupees
	if verified == 1 && productPrice > 0 {
		updatedPurchaseValue, err = s.customerRepo.IncrementPurchaseValue(ctx, customerID, productPrice)
		if err != nil {
			metrics.CredibilityRecomputations.WithLabelValues("normal", "failed").Inc()
			return nil, fmt.Errorf("failed to update purchase value: %w", err)
		}
	}

	snapshot := &entity.ReviewSnapshot{
		LastReviewText:       review.Comment,
		LastStarRating:       review.Rating,
		LastVerifiedPurchase: verified,
	}
	if err := s.customerRepo.UpdateReviewSnapshot(ctx, customerID, snapshot); err != nil {
		metrics.CredibilityRecomputations.WithLabelValues("normal", "failed").Inc()
		return nil, fmt.Errorf("failed to persist review snapshot: %w", err)
	}

	features := &entity.CredibilityFeatures{
		ReviewText:           review.Comment,
		StarRating:           review.Rating,
		VerifiedPurchase:     verified,
		CustomerTenureMonths: customer.CustomerTenureMonths,
		PurchaseValueRupees:  updatedPurchaseValue,
	}

	score, _, err := s.score(ctx, features)
	if err != nil {
		metrics.CredibilityRecomputations.WithLabelValues("normal", "failed").Inc()
		return nil, err
	}

	if err := s.customerRepo.UpdateCredibilityScore(ctx, customerID, score); err != nil {
		// Скор уже вычислен моделью, но без записи результат теряется -
		// это жёсткая ошибка, отката и ретраев нет
		metrics.CredibilityRecomputations.WithLabelValues("normal", "failed").Inc()
		return nil, fmt.Errorf("failed to persist credibility score: %w", err)
	}

	logger.Info().
		Str("customer_id", customerID.String()).
		Str("review_id", reviewID.String()).
		Float64("credibility_score", score).
		Float64("purchase_value", updatedPurchaseValue).
		Msg("Customer credibility recomputed")

	metrics.CredibilityRecomputations.WithLabelValues("normal", "success").Inc()

	return &entity.CredibilityResult{
		Success:              true,
		CredibilityScore:     score,
		UpdatedPurchaseValue: updatedPurchaseValue,
	}, nil
}

// RecomputeManual прогоняет модель на признаках из админ-панели (тестовый режим)
// Строка покупателя читается как база для недостающих значений, но НЕ изменяется:
// тестовый вызов не имеет побочных эффектов
func (s *CredibilityService) RecomputeManual(ctx context.Context, customerID uuid.UUID, manual *entity.ManualFeatureData, productPrice float64) (*entity.CredibilityResult, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		metrics.CredibilityRecomputations.WithLabelValues("test", "failed").Inc()
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	verified := manual.LastVerifiedPurchase.Int()

	// Если сумма покупок не задана вручную, берём текущее значение из базы
	purchaseValue := manual.PurchaseValueRupees
	if purchaseValue == 0 {
		purchaseValue = customer.PurchaseValueRupees
	}
	if verified == 1 && productPrice > 0 {
		purchaseValue += productPrice
	}

	tenure := manual.CustomerTenureMonths
	if tenure == 0 {
		tenure = customer.CustomerTenureMonths
	}

	features := &entity.CredibilityFeatures{
		ReviewText:           manual.LastReviewText,
		StarRating:           manual.LastStarRating,
		VerifiedPurchase:     verified,
		CustomerTenureMonths: tenure,
		PurchaseValueRupees:  purchaseValue,
	}

	score, raw, err := s.score(ctx, features)
	if err != nil {
		metrics.CredibilityRecomputations.WithLabelValues("test", "failed").Inc()
		return nil, err
	}

	logger.Info().
		Str("customer_id", customerID.String()).
		Float64("credibility_score", score).
		Msg("Customer credibility test run completed (no writes)")

	metrics.CredibilityRecomputations.WithLabelValues("test", "success").Inc()

	return &entity.CredibilityResult{
		Success:              true,
		CredibilityScore:     score,
		UpdatedPurchaseValue: purchaseValue,
		MLResponse:           raw,
	}, nil
}

// score вызывает модель и валидирует ответ
// Отсутствующий скор или значение вне 0-100 - жёсткая ошибка, запись не выполняется
func (s *CredibilityService) score(ctx context.Context, features *entity.CredibilityFeatures) (float64, []byte, error) {
	prediction, err := s.mlClient.ScoreCustomer(ctx, features)
	if err != nil {
		return 0, nil, err
	}

	if prediction.CredibilityScore == nil {
		return 0, nil, fmt.Errorf("%w: credibility_score field is missing", ErrInvalidMLResponse)
	}

	// Шкала модели принята как 0-100; значения вне диапазона отклоняем,
	// а не перемасштабируем молча
	score := *prediction.CredibilityScore
	if score < 0 || score > 100 {
		return 0, nil, fmt.Errorf("%w: credibility_score %v is out of range [0,100]", ErrInvalidMLResponse, score)
	}

	return score, prediction.Raw, nil
}
