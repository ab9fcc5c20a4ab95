package mocks

import (
	"context"

	"trustmarket/scoring-service/internal/app/scoring/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository мок для CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) IncrementPurchaseValue(ctx context.Context, id uuid.UUID, delta float64) (float64, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCustomerRepository) UpdateReviewSnapshot(ctx context.Context, id uuid.UUID, snapshot *entity.ReviewSnapshot) error {
	args := m.Called(ctx, id, snapshot)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCredibilityScore(ctx context.Context, id uuid.UUID, score float64) error {
	args := m.Called(ctx, id, score)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateParameters(ctx context.Context, id uuid.UUID, params *entity.CustomerParameters) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

// MockMerchantRepository мок для MerchantRepository
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) UpdateCreditTag(ctx context.Context, id uuid.UUID, tag string) error {
	args := m.Called(ctx, id, tag)
	return args.Error(0)
}

func (m *MockMerchantRepository) UpdateMetrics(ctx context.Context, id uuid.UUID, metrics *entity.MerchantMetrics) error {
	args := m.Called(ctx, id, metrics)
	return args.Error(0)
}

// MockReviewRepository мок для ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

// MockMLClient мок для клиента внешних ML endpoint'ов
type MockMLClient struct {
	mock.Mock
}

func (m *MockMLClient) ScoreCustomer(ctx context.Context, features *entity.CredibilityFeatures) (*entity.CredibilityPrediction, error) {
	args := m.Called(ctx, features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CredibilityPrediction), args.Error(1)
}

func (m *MockMLClient) GradeMerchant(ctx context.Context, features *entity.MerchantFeatures) (*entity.GradePrediction, error) {
	args := m.Called(ctx, features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GradePrediction), args.Error(1)
}
