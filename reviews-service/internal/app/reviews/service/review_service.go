package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trustmarket/pkg/logger"
	"trustmarket/pkg/metrics"
	"trustmarket/reviews-service/internal/app/reviews/entity"
	"trustmarket/reviews-service/internal/app/reviews/infrastructure"
	"trustmarket/reviews-service/internal/app/reviews/repository"

	"github.com/google/uuid"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrReviewNotFound   = errors.New("review not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// ReviewService обрабатывает бизнес-логику отзывов
// Координирует работу репозиториев и Kafka
type ReviewService struct {
	reviewRepo    repository.ReviewRepository
	customerRepo  repository.CustomerRepository
	kafkaProducer infrastructure.MessagePublisher
}

// NewReviewService создает новый сервис отзывов с внедрением зависимостей
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	customerRepo repository.CustomerRepository,
	kafkaProducer infrastructure.MessagePublisher,
) *ReviewService {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		customerRepo:  customerRepo,
		kafkaProducer: kafkaProducer,
	}
}

// CreateReview создает новый отзыв
// 1. Снимает текущий credibility_score покупателя в строку отзыва
// 2. Сохраняет отзыв в PostgreSQL
// 3. Отправляет событие REVIEW_CREATED в Kafka
func (s *ReviewService) CreateReview(ctx context.Context, customerID uuid.UUID, req *entity.CreateReviewRequest) (*entity.Review, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}
	merchantID, err := uuid.Parse(req.MerchantID)
	if err != nil {
		return nil, fmt.Errorf("invalid merchant id: %w", err)
	}

	// Скор фиксируется на момент написания отзыва и дальше не пересчитывается
	review := &entity.Review{
		ProductID:        productID,
		MerchantID:       merchantID,
		CustomerID:       customerID,
		Rating:           req.Rating,
		Comment:          req.Comment,
		CredibilityScore: customer.CredibilityScore,
		VerifiedPurchase: req.VerifiedPurchase,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	metrics.ReviewsCreated.Inc()
	metrics.ReviewsRating.Observe(float64(review.Rating))

	// Отправляем событие REVIEW_CREATED в Kafka
	event := entity.ReviewEvent{
		EventType:        "REVIEW_CREATED",
		ReviewID:         review.ID.String(),
		CustomerID:       review.CustomerID.String(),
		ProductID:        review.ProductID.String(),
		MerchantID:       review.MerchantID.String(),
		Rating:           review.Rating,
		VerifiedPurchase: review.VerifiedPurchase,
		ProductPrice:     req.ProductPrice,
		Timestamp:        time.Now(),
	}

	if err := s.publishReviewEvent(ctx, event); err != nil {
		// Отзыв уже сохранён - проблемы с Kafka логируем, но не прерываем выполнение
		logger.Error().Err(err).
			Str("review_id", review.ID.String()).
			Msg("Failed to publish review created event")
	}

	return review, nil
}

// GetReview получает отзыв по ID
func (s *ReviewService) GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// GetReviewsByProduct получает все отзывы по ID товара
func (s *ReviewService) GetReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return reviews, nil
}

// GetReviewsByCustomer получает все отзывы покупателя
func (s *ReviewService) GetReviewsByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer reviews: %w", err)
	}

	return reviews, nil
}

// publishReviewEvent отправляет событие об отзыве в Kafka
func (s *ReviewService) publishReviewEvent(ctx context.Context, event entity.ReviewEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal review event: %w", err)
	}

	// Ключ = ReviewID для партиционирования
	if err := s.kafkaProducer.PublishMessage(ctx, event.ReviewID, eventData); err != nil {
		return fmt.Errorf("failed to publish to kafka: %w", err)
	}

	return nil
}
