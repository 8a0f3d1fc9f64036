package bots

import (
	"context"

	"github.com/shenikar/flood_watch_system/internal/models"
)

// Channel - исходящий канал доставки сообщений одной платформы
type Channel interface {
	Send(ctx context.Context, recipientID, message string) error
}

// Registry сопоставляет платформу пользователя с каналом доставки.
// Платформы без канала (sms, web) не получают исходящих сообщений.
type Registry map[models.PlatformType]Channel
