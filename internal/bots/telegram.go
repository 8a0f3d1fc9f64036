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

// TelegramChannel отправляет сообщения через Telegram Bot API
type TelegramChannel struct {
	botToken   string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewTelegramChannel(cfg *config.Config, logger *logrus.Logger) *TelegramChannel {
	return &TelegramChannel{
		botToken: cfg.TelegramBotToken,
		httpClient: &http.Client{
			Timeout: cfg.BotSendTimeout,
		},
		logger: logger,
	}
}

// Send отправляет текстовое сообщение в чат Telegram
func (t *TelegramChannel) Send(ctx context.Context, chatID, message string) error {
	if t.botToken == "" {
		return fmt.Errorf("telegram bot token is not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    chatID,
		"text":       message,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}
	return nil
}
