package service

import (
	"context"
	"errors"
	"fmt"

	"trustmarket/scoring-service/internal/app/scoring/entity"
	"trustmarket/scoring-service/internal/app/scoring/repository"

	"github.com/google/uuid"
)

// AdminService обслуживает панели редактирования параметров модели
// Параметры покупателя и метрики продавца правятся вручную перед тестовыми прогонами
type AdminService struct {
	customerRepo repository.CustomerRepository
	merchantRepo repository.MerchantRepository
}

// NewAdminService создает новый админ-сервис с внедрением зависимостей
func NewAdminService(customerRepo repository.CustomerRepository, merchantRepo repository.MerchantRepository) *AdminService {
	return &AdminService{
		customerRepo: customerRepo,
		merchantRepo: merchantRepo,
	}
}

// GetCustomer возвращает покупателя с текущими параметрами скоринга
func (s *AdminService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// UpdateCustomerParameters обновляет редактируемые параметры покупателя
func (s *AdminService) UpdateCustomerParameters(ctx context.Context, id uuid.UUID, params *entity.CustomerParameters) error {
	if err := s.customerRepo.UpdateParameters(ctx, id, params); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to update customer parameters: %w", err)
	}

	return nil
}

// GetMerchant возвращает продавца с текущими метриками качества
func (s *AdminService) GetMerchant(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}

	return merchant, nil
}

// UpdateMerchantMetrics обновляет 16 входных метрик модели грейдинга
func (s *AdminService) UpdateMerchantMetrics(ctx context.Context, id uuid.UUID, metrics *entity.MerchantMetrics) error {
	if err := s.merchantRepo.UpdateMetrics(ctx, id, metrics); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return ErrMerchantNotFound
		}
		return fmt.Errorf("failed to update merchant metrics: %w", err)
	}

	return nil
}
