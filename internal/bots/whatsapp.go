package bots

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// WhatsAppChannel отправляет сообщения через WhatsApp Cloud API
type WhatsAppChannel struct {
	token      string
	phoneID    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewWhatsAppChannel(cfg *config.Config, logger *logrus.Logger) *WhatsAppChannel {
	return &WhatsAppChannel{
		token:   cfg.WhatsAppToken,
		phoneID: cfg.WhatsAppPhoneID,
		httpClient: &http.Client{
			Timeout: cfg.BotSendTimeout,
		},
		logger: logger,
	}
}

// Send отправляет текстовое сообщение пользователю WhatsApp
func (w *WhatsAppChannel) Send(ctx context.Context, recipientID, message string) error {
	if w.token == "" || w.phoneID == "" {
		return fmt.Errorf("whatsapp credentials are not configured")
	}

	payload, err := json.Marshal(map[string]any{
		"messaging_product": "whatsapp",
		"to":                recipientID,
		"type":              "text",
		"text":              map[string]string{"body": message},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp payload: %w", err)
	}

	url := fmt.Sprintf("https://graph.facebook.com/v17.0/%s/messages", w.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.token)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp API returned status %d", resp.StatusCode)
	}
	return nil
}
