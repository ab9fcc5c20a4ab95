package service

import (
	"context"

	"trustmarket/reviews-service/internal/app/reviews/entity"

	"github.com/google/uuid"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, customerID uuid.UUID, req *entity.CreateReviewRequest) (*entity.Review, error)
	GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)
	GetReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]entity.Review, error)
	GetReviewsByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Review, error)
}
