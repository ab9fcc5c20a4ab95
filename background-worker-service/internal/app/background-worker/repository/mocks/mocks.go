package mocks

import (
	"context"

	"trustmarket/background-worker-service/internal/app/background-worker/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMerchantRepository мок для MerchantRepository
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) GetAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockProcessedEventRepository мок для ProcessedEventRepository
type MockProcessedEventRepository struct {
	mock.Mock
}

func (m *MockProcessedEventRepository) TryMark(ctx context.Context, reviewID string) (bool, error) {
	args := m.Called(ctx, reviewID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProcessedEventRepository) Release(ctx context.Context, reviewID string) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

// MockScoringAPIClient мок для service.ScoringAPIClient
type MockScoringAPIClient struct {
	mock.Mock
}

func (m *MockScoringAPIClient) RecomputeCredibility(ctx context.Context, customerID, reviewID string, productPrice float64) (*entity.CredibilityResult, error) {
	args := m.Called(ctx, customerID, reviewID, productPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CredibilityResult), args.Error(1)
}

func (m *MockScoringAPIClient) RecomputeGrade(ctx context.Context, merchantID string) (*entity.GradeResult, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GradeResult), args.Error(1)
}
