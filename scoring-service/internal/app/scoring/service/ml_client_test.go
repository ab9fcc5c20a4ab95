package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"trustmarket/scoring-service/internal/app/scoring/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMLClient_ScoreCustomer_Success(t *testing.T) {
	var received map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"credibility_score": 82, "model_version": "v3"}`))
	}))
	defer server.Close()

	client := NewMLClient(server.URL, server.URL, 5)

	prediction, err := client.ScoreCustomer(context.Background(), &entity.CredibilityFeatures{
		ReviewText:           "Great!",
		StarRating:           5,
		VerifiedPurchase:     1,
		CustomerTenureMonths: 12,
		PurchaseValueRupees:  599.99,
	})

	require.NoError(t, err)
	require.NotNil(t, prediction.CredibilityScore)
	assert.Equal(t, 82.0, *prediction.CredibilityScore)
	assert.Contains(t, string(prediction.Raw), "model_version")

	// Контракт payload'а: плоский JSON со всеми пятью признаками
	assert.Equal(t, "Great!", received["review_text"])
	assert.Equal(t, float64(5), received["star_rating"])
	assert.Equal(t, float64(1), received["verified_purchase"])
	assert.Equal(t, float64(12), received["customer_tenure_months"])
	assert.Equal(t, 599.99, received["purchase_value_rupees"])
}

func TestMLClient_ScoreCustomer_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model crashed"))
	}))
	defer server.Close()

	client := NewMLClient(server.URL, server.URL, 5)

	prediction, err := client.ScoreCustomer(context.Background(), &entity.CredibilityFeatures{})

	assert.Nil(t, prediction)
	var mlErr *MLAPIError
	require.ErrorAs(t, err, &mlErr)
	assert.Equal(t, http.StatusInternalServerError, mlErr.StatusCode)
	assert.Equal(t, "model crashed", mlErr.Body)
}

func TestMLClient_ScoreCustomer_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not a json`))
	}))
	defer server.Close()

	client := NewMLClient(server.URL, server.URL, 5)

	prediction, err := client.ScoreCustomer(context.Background(), &entity.CredibilityFeatures{})

	assert.Nil(t, prediction)
	assert.Error(t, err)
}

func TestMLClient_ScoreCustomer_MissingScoreField(t *testing.T) {
	// Валидный JSON без credibility_score: указатель остаётся nil,
	// решение об отказе принимает сервис
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer server.Close()

	client := NewMLClient(server.URL, server.URL, 5)

	prediction, err := client.ScoreCustomer(context.Background(), &entity.CredibilityFeatures{})

	require.NoError(t, err)
	assert.Nil(t, prediction.CredibilityScore)
}

func TestMLClient_GradeMerchant_Success(t *testing.T) {
	var received map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Write([]byte(`{"grade": "gold", "trust_score": 87.5}`))
	}))
	defer server.Close()

	client := NewMLClient(server.URL, server.URL, 5)

	prediction, err := client.GradeMerchant(context.Background(), &entity.MerchantFeatures{
		QualityReturnRate: 0.95,
		DefectRate:        0.02,
	})

	require.NoError(t, err)
	assert.Equal(t, "gold", prediction.Grade)
	assert.Equal(t, 87.5, prediction.TrustScore)

	// Все 16 метрик присутствуют в payload'е, незаполненные как нули
	assert.Len(t, received, 16)
	assert.Equal(t, 0.95, received["quality_return_rate"])
	assert.Equal(t, float64(0), received["review_sentiment"])
}

func TestMLClient_GradeMerchant_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream timeout"))
	}))
	defer server.Close()

	client := NewMLClient(server.URL, server.URL, 5)

	prediction, err := client.GradeMerchant(context.Background(), &entity.MerchantFeatures{})

	assert.Nil(t, prediction)
	var mlErr *MLAPIError
	require.ErrorAs(t, err, &mlErr)
	assert.Equal(t, http.StatusBadGateway, mlErr.StatusCode)
}

func TestMLClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewMLClient(server.URL, server.URL, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ScoreCustomer(ctx, &entity.CredibilityFeatures{})
	assert.Error(t, err)
}
