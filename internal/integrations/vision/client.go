package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Analysis - результат анализа одного изображения сервисом распознавания
type Analysis struct {
	IsFlood          bool    `json:"is_flood"`
	Confidence       float64 `json:"confidence"`
	Severity         int     `json:"severity"`
	EstimatedDepthCm float64 `json:"estimated_depth_cm"`
}

// Client - клиент сервиса инференса модели распознавания затоплений
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: cfg.VisionURL,
		httpClient: &http.Client{
			Timeout: cfg.VisionTimeout,
		},
		logger: logger,
	}
}

// Analyze отправляет URL изображения на анализ и возвращает уверенность модели
func (c *Client) Analyze(ctx context.Context, imageURL string) (*Analysis, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("vision service is not configured")
	}

	payload, err := json.Marshal(map[string]string{"image_url": imageURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vision request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision service returned status %d", resp.StatusCode)
	}

	analysis := &Analysis{}
	if err := json.NewDecoder(resp.Body).Decode(analysis); err != nil {
		return nil, fmt.Errorf("failed to decode vision response: %w", err)
	}
	return analysis, nil
}
