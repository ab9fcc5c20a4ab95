package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"trustmarket/scoring-service/internal/app/scoring/entity"
	"trustmarket/scoring-service/internal/app/scoring/repository"
	"trustmarket/scoring-service/internal/app/scoring/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func newCredibilityService() (*CredibilityService, *mocks.MockCustomerRepository, *mocks.MockReviewRepository, *mocks.MockMLClient) {
	customerRepo := new(mocks.MockCustomerRepository)
	reviewRepo := new(mocks.MockReviewRepository)
	mlClient := new(mocks.MockMLClient)
	svc := NewCredibilityService(customerRepo, reviewRepo, mlClient)
	return svc, customerRepo, reviewRepo, mlClient
}

// ===================== RecomputeFromReview Tests =====================

func TestRecomputeFromReview_VerifiedPurchase_EndToEnd(t *testing.T) {
	// Сценарий: tenure=12, purchase_value=500, verified отзыв rating=5 "Great!"
	// за товар ценой 99.99 -> сумма становится 599.99, модель возвращает 82
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(&entity.Review{
		ID:               reviewID,
		CustomerID:       customerID,
		Rating:           5,
		Comment:          "Great!",
		VerifiedPurchase: true,
	}, nil)
	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{
		ID:                   customerID,
		CustomerTenureMonths: 12,
		PurchaseValueRupees:  500,
	}, nil)
	customerRepo.On("IncrementPurchaseValue", ctx, customerID, 99.99).Return(599.99, nil)
	customerRepo.On("UpdateReviewSnapshot", ctx, customerID, &entity.ReviewSnapshot{
		LastReviewText:       "Great!",
		LastStarRating:       5,
		LastVerifiedPurchase: 1,
	}).Return(nil)
	mlClient.On("ScoreCustomer", ctx, &entity.CredibilityFeatures{
		ReviewText:           "Great!",
		StarRating:           5,
		VerifiedPurchase:     1,
		CustomerTenureMonths: 12,
		PurchaseValueRupees:  599.99,
	}).Return(&entity.CredibilityPrediction{CredibilityScore: floatPtr(82)}, nil)
	customerRepo.On("UpdateCredibilityScore", ctx, customerID, 82.0).Return(nil)

	result, err := svc.RecomputeFromReview(ctx, customerID, reviewID, 99.99)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 82.0, result.CredibilityScore)
	assert.Equal(t, 599.99, result.UpdatedPurchaseValue)
	customerRepo.AssertExpectations(t)
	mlClient.AssertExpectations(t)
}

func TestRecomputeFromReview_UnverifiedPurchase_ValueUnchanged(t *testing.T) {
	// Неподтверждённая покупка не изменяет purchase_value_rupees
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(&entity.Review{
		ID:               reviewID,
		Rating:           3,
		Comment:          "Average",
		VerifiedPurchase: false,
	}, nil)
	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{
		ID:                   customerID,
		CustomerTenureMonths: 6,
		PurchaseValueRupees:  1000,
	}, nil)
	customerRepo.On("UpdateReviewSnapshot", ctx, customerID, mock.Anything).Return(nil)
	mlClient.On("ScoreCustomer", ctx, mock.MatchedBy(func(f *entity.CredibilityFeatures) bool {
		return f.VerifiedPurchase == 0 && f.PurchaseValueRupees == 1000
	})).Return(&entity.CredibilityPrediction{CredibilityScore: floatPtr(40)}, nil)
	customerRepo.On("UpdateCredibilityScore", ctx, customerID, 40.0).Return(nil)

	result, err := svc.RecomputeFromReview(ctx, customerID, reviewID, 250)

	assert.NoError(t, err)
	assert.Equal(t, 1000.0, result.UpdatedPurchaseValue)
	customerRepo.AssertNotCalled(t, "IncrementPurchaseValue", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeFromReview_VerifiedWithoutPrice_ValueUnchanged(t *testing.T) {
	// Подтверждённая покупка без цены товара также не изменяет сумму
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(&entity.Review{
		ID:               reviewID,
		Rating:           4,
		Comment:          "Good",
		VerifiedPurchase: true,
	}, nil)
	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{
		ID:                  customerID,
		PurchaseValueRupees: 750,
	}, nil)
	customerRepo.On("UpdateReviewSnapshot", ctx, customerID, mock.Anything).Return(nil)
	mlClient.On("ScoreCustomer", ctx, mock.Anything).
		Return(&entity.CredibilityPrediction{CredibilityScore: floatPtr(55)}, nil)
	customerRepo.On("UpdateCredibilityScore", ctx, customerID, 55.0).Return(nil)

	result, err := svc.RecomputeFromReview(ctx, customerID, reviewID, 0)

	assert.NoError(t, err)
	assert.Equal(t, 750.0, result.UpdatedPurchaseValue)
	customerRepo.AssertNotCalled(t, "IncrementPurchaseValue", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeFromReview_ReviewNotFound(t *testing.T) {
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(nil, repository.ErrReviewNotFound)

	result, err := svc.RecomputeFromReview(ctx, uuid.New(), reviewID, 0)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrReviewNotFound)
	customerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	mlClient.AssertNotCalled(t, "ScoreCustomer", mock.Anything, mock.Anything)
}

func TestRecomputeFromReview_CustomerNotFound(t *testing.T) {
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(&entity.Review{ID: reviewID, Rating: 5}, nil)
	customerRepo.On("GetByID", ctx, customerID).Return(nil, repository.ErrCustomerNotFound)

	result, err := svc.RecomputeFromReview(ctx, customerID, reviewID, 0)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	mlClient.AssertNotCalled(t, "ScoreCustomer", mock.Anything, mock.Anything)
}

func TestRecomputeFromReview_SnapshotWriteFailure_Aborts(t *testing.T) {
	// Ошибка записи снапшота прерывает пайплайн до вызова модели
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(&entity.Review{ID: reviewID, Rating: 2, Comment: "Bad"}, nil)
	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
	customerRepo.On("UpdateReviewSnapshot", ctx, customerID, mock.Anything).Return(errors.New("db error"))

	result, err := svc.RecomputeFromReview(ctx, customerID, reviewID, 0)

	assert.Nil(t, result)
	assert.Error(t, err)
	mlClient.AssertNotCalled(t, "ScoreCustomer", mock.Anything, mock.Anything)
}

func TestRecomputeFromReview_MLFailure_NoScoreWritten(t *testing.T) {
	// HTTP 500 от модели: структурированная ошибка, скор в базу не пишется
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(&entity.Review{ID: reviewID, Rating: 5, Comment: "Nice"}, nil)
	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
	customerRepo.On("UpdateReviewSnapshot", ctx, customerID, mock.Anything).Return(nil)
	mlClient.On("ScoreCustomer", ctx, mock.Anything).
		Return(nil, &MLAPIError{StatusCode: 500, Body: "Internal Server Error"})

	result, err := svc.RecomputeFromReview(ctx, customerID, reviewID, 0)

	assert.Nil(t, result)
	var mlErr *MLAPIError
	assert.ErrorAs(t, err, &mlErr)
	assert.Equal(t, 500, mlErr.StatusCode)
	customerRepo.AssertNotCalled(t, "UpdateCredibilityScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeFromReview_MissingScoreField_NoScoreWritten(t *testing.T) {
	// 200 без поля credibility_score: ошибка invalid response, записи нет
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(&entity.Review{ID: reviewID, Rating: 5, Comment: "Nice"}, nil)
	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
	customerRepo.On("UpdateReviewSnapshot", ctx, customerID, mock.Anything).Return(nil)
	mlClient.On("ScoreCustomer", ctx, mock.Anything).
		Return(&entity.CredibilityPrediction{CredibilityScore: nil}, nil)

	result, err := svc.RecomputeFromReview(ctx, customerID, reviewID, 0)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidMLResponse)
	customerRepo.AssertNotCalled(t, "UpdateCredibilityScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeFromReview_ScoreOutOfRange_Rejected(t *testing.T) {
	// Шкала принята как 0-100: значение 820 отклоняется, а не масштабируется
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(&entity.Review{ID: reviewID, Rating: 5}, nil)
	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
	customerRepo.On("UpdateReviewSnapshot", ctx, customerID, mock.Anything).Return(nil)
	mlClient.On("ScoreCustomer", ctx, mock.Anything).
		Return(&entity.CredibilityPrediction{CredibilityScore: floatPtr(820)}, nil)

	result, err := svc.RecomputeFromReview(ctx, customerID, reviewID, 0)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidMLResponse)
	customerRepo.AssertNotCalled(t, "UpdateCredibilityScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeFromReview_ScoreWriteFailure(t *testing.T) {
	// Модель ответила, но запись скора упала - операция завершается ошибкой
	svc, customerRepo, reviewRepo, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.On("GetByID", ctx, reviewID).Return(&entity.Review{ID: reviewID, Rating: 5}, nil)
	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
	customerRepo.On("UpdateReviewSnapshot", ctx, customerID, mock.Anything).Return(nil)
	mlClient.On("ScoreCustomer", ctx, mock.Anything).
		Return(&entity.CredibilityPrediction{CredibilityScore: floatPtr(70)}, nil)
	customerRepo.On("UpdateCredibilityScore", ctx, customerID, 70.0).Return(errors.New("db error"))

	result, err := svc.RecomputeFromReview(ctx, customerID, reviewID, 0)

	assert.Nil(t, result)
	assert.Error(t, err)
}

// ===================== RecomputeManual Tests =====================

func TestRecomputeManual_NoWrites(t *testing.T) {
	// Тестовый режим не имеет побочных эффектов: ни снапшота, ни скора, ни суммы
	svc, customerRepo, _, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()

	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{
		ID:                   customerID,
		CustomerTenureMonths: 24,
		PurchaseValueRupees:  2000,
	}, nil)

	raw := json.RawMessage(`{"credibility_score":91,"model_version":"v3"}`)
	mlClient.On("ScoreCustomer", ctx, &entity.CredibilityFeatures{
		ReviewText:           "Manual test",
		StarRating:           4,
		VerifiedPurchase:     1,
		CustomerTenureMonths: 24,
		PurchaseValueRupees:  2000,
	}).Return(&entity.CredibilityPrediction{CredibilityScore: floatPtr(91), Raw: raw}, nil)

	manual := &entity.ManualFeatureData{
		LastReviewText:       "Manual test",
		LastStarRating:       4,
		LastVerifiedPurchase: 1,
	}

	result, err := svc.RecomputeManual(ctx, customerID, manual, 0)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 91.0, result.CredibilityScore)
	assert.Equal(t, raw, result.MLResponse)
	customerRepo.AssertNotCalled(t, "UpdateReviewSnapshot", mock.Anything, mock.Anything, mock.Anything)
	customerRepo.AssertNotCalled(t, "UpdateCredibilityScore", mock.Anything, mock.Anything, mock.Anything)
	customerRepo.AssertNotCalled(t, "IncrementPurchaseValue", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeManual_VerifiedFlagNormalized(t *testing.T) {
	// Флаг, пришедший числом 1, уходит в модель строго как 1
	svc, customerRepo, _, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()

	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
	mlClient.On("ScoreCustomer", ctx, mock.MatchedBy(func(f *entity.CredibilityFeatures) bool {
		return f.VerifiedPurchase == 1
	})).Return(&entity.CredibilityPrediction{CredibilityScore: floatPtr(60)}, nil)

	var manual entity.ManualFeatureData
	err := json.Unmarshal([]byte(`{"last_review_text":"x","last_star_rating":3,"last_verified_purchase":1}`), &manual)
	assert.NoError(t, err)

	_, err = svc.RecomputeManual(ctx, customerID, &manual, 0)
	assert.NoError(t, err)
	mlClient.AssertExpectations(t)
}

func TestRecomputeManual_FallbackToStoredPurchaseValue(t *testing.T) {
	// Незаданная вручную сумма покупок берётся из строки покупателя
	svc, customerRepo, _, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()

	customerRepo.On("GetByID", ctx, customerID).Return(&entity.Customer{
		ID:                   customerID,
		CustomerTenureMonths: 8,
		PurchaseValueRupees:  1234.5,
	}, nil)
	mlClient.On("ScoreCustomer", ctx, mock.MatchedBy(func(f *entity.CredibilityFeatures) bool {
		return f.PurchaseValueRupees == 1234.5 && f.CustomerTenureMonths == 8
	})).Return(&entity.CredibilityPrediction{CredibilityScore: floatPtr(77)}, nil)

	result, err := svc.RecomputeManual(ctx, customerID, &entity.ManualFeatureData{LastReviewText: "t"}, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1234.5, result.UpdatedPurchaseValue)
}

func TestRecomputeManual_CustomerNotFound(t *testing.T) {
	svc, customerRepo, _, mlClient := newCredibilityService()

	ctx := context.Background()
	customerID := uuid.New()

	customerRepo.On("GetByID", ctx, customerID).Return(nil, repository.ErrCustomerNotFound)

	result, err := svc.RecomputeManual(ctx, customerID, &entity.ManualFeatureData{}, 0)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	mlClient.AssertNotCalled(t, "ScoreCustomer", mock.Anything, mock.Anything)
}

// ===================== BoolFlag Tests =====================

func TestBoolFlag_Normalization(t *testing.T) {
	// true/false/1/0/7 во входном JSON всегда дают строго 0 или 1
	cases := []struct {
		raw      string
		expected int
	}{
		{`true`, 1},
		{`false`, 0},
		{`1`, 1},
		{`0`, 0},
		{`7`, 1},
	}

	for _, tc := range cases {
		var flag entity.BoolFlag
		err := json.Unmarshal([]byte(tc.raw), &flag)
		assert.NoError(t, err, "raw=%s", tc.raw)
		assert.Equal(t, tc.expected, flag.Int(), "raw=%s", tc.raw)
	}

	var flag entity.BoolFlag
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &flag))
}
