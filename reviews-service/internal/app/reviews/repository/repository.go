package repository

import (
	"context"
	"errors"

	"trustmarket/reviews-service/internal/app/reviews/entity"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// ReviewRepository определяет операции с отзывами в PostgreSQL
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	GetByProductID(ctx context.Context, productID uuid.UUID) ([]entity.Review, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entity.Review, error)
}

// CustomerRepository читает строку покупателя для снапшота кредибилити
// Запись покупателя - зона ответственности scoring-service
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}
