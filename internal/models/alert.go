package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert - одно исходящее оповещение, сгенерированное из инцидента
type Alert struct {
	ID               uuid.UUID           `json:"id"`
	IncidentID       uuid.UUID           `json:"incident_id"`
	Level            AlertLevel          `json:"level"`
	Message          string              `json:"message"`
	AffectedRadiusKm float64             `json:"affected_radius_km"`
	RecipientsCount  int                 `json:"recipients_count"`
	DeliveryStatus   AlertDeliveryStatus `json:"delivery_status"`
	CreatedAt        time.Time           `json:"created_at"`
	SentAt           *time.Time          `json:"sent_at,omitempty"`
}

// AlertRecipient - запись о доставке оповещения конкретному пользователю
type AlertRecipient struct {
	AlertID     uuid.UUID  `json:"alert_id"`
	UserID      uuid.UUID  `json:"user_id"`
	Delivered   bool       `json:"delivered"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	Read        bool       `json:"read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}

// DeliveryStats - итоги рассылки оповещения по каналам
type DeliveryStats struct {
	Total     int `json:"total"`
	WhatsApp  int `json:"whatsapp"`
	Telegram  int `json:"telegram"`
	Failed    int `json:"failed"`
	Delivered int `json:"delivered"`
}
