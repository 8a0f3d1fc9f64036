package models

import (
	"time"

	"github.com/google/uuid"
)

// User - подписчик, зарегистрированный через одного из ботов
type User struct {
	ID               uuid.UUID    `json:"id"`
	PhoneNumber      string       `json:"phone_number"`
	Platform         PlatformType `json:"platform"`
	PlatformID       string       `json:"platform_id"`
	LanguageCode     string       `json:"language_code"`
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	AlertSubscribed  bool         `json:"alert_subscribed"`
	AlertRadiusKm    int          `json:"alert_radius_km"`
	CredibilityScore int          `json:"credibility_score"`
	CreatedAt        time.Time    `json:"created_at"`
	LastActive       time.Time    `json:"last_active"`
}
