package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trustmarket/catalog-service/internal/app/catalog/entity"
	"trustmarket/catalog-service/internal/app/catalog/repository"
	"trustmarket/catalog-service/internal/app/catalog/util"
	"trustmarket/pkg/logger"

	"github.com/google/uuid"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// Срок жизни кеша категорий. Список категорий меняется редко,
// час устаревания для витрины приемлем.
const categoriesCacheTTL = time.Hour

// CatalogService обрабатывает бизнес-логику витрины каталога
// Координирует работу репозиториев и Redis кеша
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	merchantRepo repository.MerchantRepository
	customerRepo repository.CustomerRepository
	cache        util.RedisCache
}

// NewCatalogService создает новый сервис каталога с внедрением зависимостей
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	merchantRepo repository.MerchantRepository,
	customerRepo repository.CustomerRepository,
	cache util.RedisCache,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		customerRepo: customerRepo,
		cache:        cache,
	}
}

// === CATEGORIES ===

// GetAllCategories получает все категории с кешированием в Redis
// Сначала проверяет кеш, если нет - загружает из БД и кеширует
func (s *CatalogService) GetAllCategories(ctx context.Context) ([]entity.Category, error) {
	// Пытаемся получить из кеша Redis
	categories, err := s.cache.GetCategories(ctx)
	if err == nil && len(categories) > 0 {
		// Cache hit - возвращаем данные из кеша
		return categories, nil
	}
	if err != nil {
		// Проблемы с кешем не критичны, идем в БД
		logger.Error().Err(err).Msg("failed to read categories cache")
	}

	// Cache miss - загружаем из PostgreSQL
	categories, err = s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	// Сохраняем в кеш для последующих запросов
	if err := s.cache.SetCategories(ctx, categories, categoriesCacheTTL); err != nil {
		// Данные получены из БД, проблемы с кешем не критичны
		logger.Error().Err(err).Msg("failed to cache categories")
	}

	return categories, nil
}

// GetProductsByCategory получает товары категории
// Сначала проверяет существование категории, чтобы отличать
// пустую категорию от несуществующей
func (s *CatalogService) GetProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Product, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	products, err := s.productRepo.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}

	return products, nil
}

// === PRODUCTS ===

// GetAllProducts получает все товары каталога
func (s *CatalogService) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return products, nil
}

// GetProductDetail получает карточку товара: сам товар, его категорию
// и предложения продавцов с грейдами, отсортированные по цене
func (s *CatalogService) GetProductDetail(ctx context.Context, id uuid.UUID) (*entity.ProductDetail, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	detail := &entity.ProductDetail{Product: *product}

	category, err := s.categoryRepo.GetByID(ctx, product.CategoryID)
	if err != nil {
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, fmt.Errorf("failed to get product category: %w", err)
		}
		// Категория могла быть удалена, карточка товара все равно отдается
	} else {
		detail.Category = category
	}

	offers, err := s.productRepo.GetOffers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product offers: %w", err)
	}
	detail.Offers = offers

	return detail, nil
}

// === MERCHANTS ===

// GetAllMerchants получает всех продавцов с их грейдами
func (s *CatalogService) GetAllMerchants(ctx context.Context) ([]entity.Merchant, error) {
	merchants, err := s.merchantRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchants: %w", err)
	}

	return merchants, nil
}

// GetMerchant получает продавца по ID
func (s *CatalogService) GetMerchant(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}

	return merchant, nil
}

// === CUSTOMERS ===

// GetCustomerProfile получает профиль покупателя вместе с историей заказов
// Профиль включает credibility score и агрегаты, которые обновляет scoring pipeline
func (s *CatalogService) GetCustomerProfile(ctx context.Context, id uuid.UUID) (*entity.CustomerProfile, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	orders, err := s.customerRepo.GetOrders(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer orders: %w", err)
	}

	return &entity.CustomerProfile{
		Customer: *customer,
		Orders:   orders,
	}, nil
}
