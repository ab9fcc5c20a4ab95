package repository

import (
	"context"
	"errors"

	"trustmarket/catalog-service/internal/app/catalog/entity"

	"github.com/google/uuid"
)

var (
	// Стандартные ошибки репозиториев для обработки в service layer
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// CategoryRepository определяет операции с категориями
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}

// ProductRepository определяет операции с товарами и предложениями продавцов
type ProductRepository interface {
	GetAll(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]entity.Product, error)
	GetOffers(ctx context.Context, productID uuid.UUID) ([]entity.ProductOffer, error)
}

// MerchantRepository определяет операции с продавцами
type MerchantRepository interface {
	GetAll(ctx context.Context) ([]entity.Merchant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)
}

// CustomerRepository определяет операции с покупателями и их заказами
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetOrders(ctx context.Context, customerID uuid.UUID) ([]entity.Order, error)
}
