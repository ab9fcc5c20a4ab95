package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"trustmarket/background-worker-service/internal/app/background-worker/entity"
)

// ScoringAPIClientImpl реализует интерфейс ScoringAPIClient
// Отвечает только за HTTP запросы к scoring-service
type ScoringAPIClientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewScoringAPIClient создает новый HTTP клиент scoring-service
func NewScoringAPIClient(baseURL string, timeoutSec int) *ScoringAPIClientImpl {
	return &ScoringAPIClientImpl{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

// RecomputeCredibility запускает пересчёт кредибилити покупателя
// POST /scoring/customer-credibility
func (c *ScoringAPIClientImpl) RecomputeCredibility(
	ctx context.Context,
	customerID, reviewID string,
	productPrice float64,
) (*entity.CredibilityResult, error) {
	payload := map[string]interface{}{
		"customer_id":   customerID,
		"review_id":     reviewID,
		"product_price": productPrice,
	}

	var result entity.CredibilityResult
	if err := c.post(ctx, "/scoring/customer-credibility", payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// RecomputeGrade запускает пересчёт грейда продавца
// POST /scoring/merchant-grade
func (c *ScoringAPIClientImpl) RecomputeGrade(ctx context.Context, merchantID string) (*entity.GradeResult, error) {
	payload := map[string]interface{}{
		"merchant_id": merchantID,
	}

	var result entity.GradeResult
	if err := c.post(ctx, "/scoring/merchant-grade", payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// post выполняет POST запрос и декодирует JSON ответ
func (c *ScoringAPIClientImpl) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scoring API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal scoring API response: %w", err)
	}

	return nil
}
