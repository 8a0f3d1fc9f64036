package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest DTO для подачи репорта о затоплении
// @Description DTO для подачи репорта о затоплении
type CreateReportRequest struct {
	UserID       uuid.UUID `json:"user_id" validate:"required"`
	Latitude     float64   `json:"latitude" validate:"required,latitude"`
	Longitude    float64   `json:"longitude" validate:"required,longitude"`
	Address      string    `json:"address,omitempty"`
	Severity     string    `json:"severity" validate:"required,oneof=low medium high critical"`
	Description  string    `json:"description,omitempty"`
	WaterDepthCm int       `json:"water_depth_cm" validate:"gte=0"`
	ImageURLs    []string  `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
}

// ReportResponse DTO для ответа с информацией о репорте
// @Description DTO для ответа с информацией о репорте
type ReportResponse struct {
	ID                     uuid.UUID  `json:"id"`
	UserID                 uuid.UUID  `json:"user_id"`
	Latitude               float64    `json:"latitude"`
	Longitude              float64    `json:"longitude"`
	Address                string     `json:"address,omitempty"`
	Severity               string     `json:"severity"`
	Description            string     `json:"description,omitempty"`
	WaterDepthCm           int        `json:"water_depth_cm"`
	ImageURLs              []string   `json:"image_urls,omitempty"`
	VerificationStatus     string     `json:"verification_status"`
	AIConfidenceScore      float64    `json:"ai_confidence_score"`
	CommunityVerifications int        `json:"community_verifications"`
	CreatedAt              time.Time  `json:"created_at"`
	VerifiedAt             *time.Time `json:"verified_at,omitempty"`
}

// SubmitReportResponse DTO для ответа на подачу репорта
// @Description DTO для ответа на подачу репорта вместе с итогами пайплайна
type SubmitReportResponse struct {
	Report            *ReportResponse `json:"report"`
	VerificationScore float64         `json:"verification_score"`
	IncidentID        *uuid.UUID      `json:"incident_id,omitempty"`
	AlertID           *uuid.UUID      `json:"alert_id,omitempty"`
	CommunityRequests int             `json:"community_requests"`
}

// CommunityVerificationRequest DTO для ответа участника на запрос подтверждения
// @Description DTO для ответа участника на запрос подтверждения
type CommunityVerificationRequest struct {
	VerifierUserID uuid.UUID `json:"verifier_user_id" validate:"required"`
	Confirmed      *bool     `json:"confirmed" validate:"required"`
}

// VerificationResponse DTO для записи журнала проверок
// @Description DTO для записи журнала проверок
type VerificationResponse struct {
	ID              uuid.UUID  `json:"id"`
	ReportID        uuid.UUID  `json:"report_id"`
	VerifierUserID  *uuid.UUID `json:"verifier_user_id,omitempty"`
	Type            string     `json:"type"`
	Result          string     `json:"result"`
	ConfidenceScore float64    `json:"confidence_score"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID               uuid.UUID  `json:"id"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	AffectedRadiusKm float64    `json:"affected_radius_km"`
	Severity         string     `json:"severity"`
	Status           string     `json:"status"`
	ReportCount      int        `json:"report_count"`
	CreatedAt        time.Time  `json:"created_at"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
}

// CreateAlertRequest DTO для генерации оповещения из инцидента
// @Description DTO для генерации оповещения из инцидента
type CreateAlertRequest struct {
	IncidentID uuid.UUID `json:"incident_id" validate:"required"`
	Level      string    `json:"level,omitempty" validate:"omitempty,oneof=advisory watch warning emergency"`
}

// AlertResponse DTO для ответа с информацией об оповещении
// @Description DTO для ответа с информацией об оповещении
type AlertResponse struct {
	ID               uuid.UUID  `json:"id"`
	IncidentID       uuid.UUID  `json:"incident_id"`
	Level            string     `json:"level"`
	Message          string     `json:"message"`
	AffectedRadiusKm float64    `json:"affected_radius_km"`
	RecipientsCount  int        `json:"recipients_count"`
	DeliveryStatus   string     `json:"delivery_status"`
	CreatedAt        time.Time  `json:"created_at"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
}

// DeliveryStatsResponse DTO для итогов рассылки оповещения
// @Description DTO для итогов рассылки оповещения
type DeliveryStatsResponse struct {
	Total     int `json:"total"`
	WhatsApp  int `json:"whatsapp"`
	Telegram  int `json:"telegram"`
	Failed    int `json:"failed"`
	Delivered int `json:"delivered"`
}

// MarkAlertReadRequest DTO для отметки о прочтении оповещения
// @Description DTO для отметки о прочтении оповещения
type MarkAlertReadRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// RegisterUserRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterUserRequest struct {
	PhoneNumber   string  `json:"phone_number,omitempty"`
	Platform      string  `json:"platform" validate:"required,oneof=whatsapp telegram sms web"`
	PlatformID    string  `json:"platform_id" validate:"required"`
	LanguageCode  string  `json:"language_code,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	AlertRadiusKm int     `json:"alert_radius_km,omitempty" validate:"omitempty,gt=0"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Platform         string    `json:"platform"`
	PlatformID       string    `json:"platform_id"`
	LanguageCode     string    `json:"language_code"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	AlertSubscribed  bool      `json:"alert_subscribed"`
	AlertRadiusKm    int       `json:"alert_radius_km"`
	CredibilityScore int       `json:"credibility_score"`
	CreatedAt        time.Time `json:"created_at"`
}

// UpdateLocationRequest DTO для обновления координат пользователя
// @Description DTO для обновления координат пользователя
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// SubscriptionRequest DTO для управления подпиской на оповещения
// @Description DTO для управления подпиской на оповещения
type SubscriptionRequest struct {
	Subscribed *bool `json:"subscribed" validate:"required"`
}
