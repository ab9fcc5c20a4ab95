package service

import (
	"context"

	"trustmarket/catalog-service/internal/app/catalog/entity"

	"github.com/google/uuid"
)

type CatalogServiceInterface interface {
	GetAllCategories(ctx context.Context) ([]entity.Category, error)
	GetProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Product, error)

	GetAllProducts(ctx context.Context) ([]entity.Product, error)
	GetProductDetail(ctx context.Context, id uuid.UUID) (*entity.ProductDetail, error)

	GetAllMerchants(ctx context.Context) ([]entity.Merchant, error)
	GetMerchant(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	GetCustomerProfile(ctx context.Context, id uuid.UUID) (*entity.CustomerProfile, error)
}
