package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"trustmarket/pkg/metrics"
	"trustmarket/scoring-service/internal/app/scoring/entity"
)

// MLClientImpl реализует интерфейс MLClient
// Отвечает только за HTTP запросы к внешним ML endpoint'ам
type MLClientImpl struct {
	credibilityURL string
	merchantURL    string
	httpClient     *http.Client
}

// NewMLClient создает новый HTTP клиент для внешних моделей скоринга
func NewMLClient(credibilityURL, merchantURL string, timeoutSec int) *MLClientImpl {
	return &MLClientImpl{
		credibilityURL: credibilityURL,
		merchantURL:    merchantURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

// ScoreCustomer вызывает модель кредибилити покупателя
// Ответ вне 2xx возвращается как MLAPIError с телом ответа
func (c *MLClientImpl) ScoreCustomer(ctx context.Context, features *entity.CredibilityFeatures) (*entity.CredibilityPrediction, error) {
	timer := metrics.NewMLTimer("scoring-service", metrics.MLModelCredibility)

	body, err := c.post(ctx, c.credibilityURL, features)
	if err != nil {
		timer.Observe("http_error")
		return nil, err
	}

	var prediction entity.CredibilityPrediction
	if err := json.Unmarshal(body, &prediction); err != nil {
		timer.Observe("invalid_response")
		return nil, fmt.Errorf("failed to unmarshal credibility response: %w", err)
	}
	prediction.Raw = body

	timer.Observe("success")
	return &prediction, nil
}

// GradeMerchant вызывает модель грейдинга продавца
func (c *MLClientImpl) GradeMerchant(ctx context.Context, features *entity.MerchantFeatures) (*entity.GradePrediction, error) {
	timer := metrics.NewMLTimer("scoring-service", metrics.MLModelMerchantGrade)

	body, err := c.post(ctx, c.merchantURL, features)
	if err != nil {
		timer.Observe("http_error")
		return nil, err
	}

	var prediction entity.GradePrediction
	if err := json.Unmarshal(body, &prediction); err != nil {
		timer.Observe("invalid_response")
		return nil, fmt.Errorf("failed to unmarshal grade response: %w", err)
	}

	timer.Observe("success")
	return &prediction, nil
}

// post выполняет HTTP POST с JSON телом и возвращает тело ответа
func (c *MLClientImpl) post(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &MLAPIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
