package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===================== RecomputeCredibility Tests =====================

func TestScoringAPIClient_RecomputeCredibility_Success(t *testing.T) {
	// Arrange
	customerID := uuid.New().String()
	reviewID := uuid.New().String()

	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/scoring/customer-credibility", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "credibility_score": 82, "updated_purchase_value": 599.99}`))
	}))
	defer server.Close()

	client := NewScoringAPIClient(server.URL, 5)

	// Act
	result, err := client.RecomputeCredibility(context.Background(), customerID, reviewID, 99.99)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 82.0, result.CredibilityScore)
	assert.Equal(t, 599.99, result.UpdatedPurchaseValue)

	assert.Equal(t, customerID, received["customer_id"])
	assert.Equal(t, reviewID, received["review_id"])
	assert.Equal(t, 99.99, received["product_price"])
}

func TestScoringAPIClient_RecomputeCredibility_HTTPError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "ML model request failed"}`))
	}))
	defer server.Close()

	client := NewScoringAPIClient(server.URL, 5)

	// Act
	result, err := client.RecomputeCredibility(context.Background(), uuid.New().String(), uuid.New().String(), 0)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "status 502")
}

func TestScoringAPIClient_RecomputeCredibility_MalformedJSON(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not valid json`))
	}))
	defer server.Close()

	client := NewScoringAPIClient(server.URL, 5)

	// Act
	result, err := client.RecomputeCredibility(context.Background(), uuid.New().String(), uuid.New().String(), 0)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, result)
}

// ===================== RecomputeGrade Tests =====================

func TestScoringAPIClient_RecomputeGrade_Success(t *testing.T) {
	// Arrange
	merchantID := uuid.New().String()

	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scoring/merchant-grade", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "grade": "gold", "trust_score": 88.5}`))
	}))
	defer server.Close()

	client := NewScoringAPIClient(server.URL, 5)

	// Act
	result, err := client.RecomputeGrade(context.Background(), merchantID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "gold", result.Grade)
	assert.Equal(t, 88.5, result.TrustScore)
	assert.Equal(t, merchantID, received["merchant_id"])
}

func TestScoringAPIClient_RecomputeGrade_ContextCancelled(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewScoringAPIClient(server.URL, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	result, err := client.RecomputeGrade(ctx, uuid.New().String())

	// Assert
	assert.Error(t, err)
	assert.Nil(t, result)
}
