package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/flood_watch_system/internal/integrations/vision"
	"github.com/shenikar/flood_watch_system/internal/integrations/weather"
	"github.com/shenikar/flood_watch_system/internal/models"
)

// ReportRepository определяет контракт для работы с бд репортов
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	MarkVerified(ctx context.Context, id uuid.UUID, confidence float64, at time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.VerificationStatus) error
	IncrementCommunityVerifications(ctx context.Context, id uuid.UUID) (int, error)
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, since time.Time) ([]*models.Report, error)
	ListByStatus(ctx context.Context, status *models.VerificationStatus, page, pageSize int) ([]*models.Report, error)
}

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	CreateWithReports(ctx context.Context, incident *models.Incident, reportIDs []uuid.UUID) error
	AttachReport(ctx context.Context, incidentID, reportID uuid.UUID) error
	FindByReportID(ctx context.Context, reportID uuid.UUID) (*models.Incident, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListActive(ctx context.Context, limit int) ([]*models.Incident, error)
	Resolve(ctx context.Context, id uuid.UUID, at time.Time) error
	GetReports(ctx context.Context, incidentID uuid.UUID) ([]*models.Report, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// AlertRepository определяет контракт для работы с бд оповещений
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	AddRecipient(ctx context.Context, alertID, userID uuid.UUID) error
	MarkDelivered(ctx context.Context, alertID, userID uuid.UUID, at time.Time) error
	ListUndelivered(ctx context.Context, alertID uuid.UUID) ([]*models.AlertRecipient, error)
	SetDeliveryResult(ctx context.Context, alertID uuid.UUID, status models.AlertDeliveryStatus, recipientsCount int, sentAt time.Time) error
	MarkRead(ctx context.Context, alertID, userID uuid.UUID, at time.Time) error
	ListRecent(ctx context.Context, limit int) ([]*models.Alert, error)
	ListForIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Alert, error)
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Alert, error)
}

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByPlatformID(ctx context.Context, platform models.PlatformType, platformID string) (*models.User, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) error
	SetAlertSubscription(ctx context.Context, id uuid.UUID, subscribed bool) error
	UpdateCredibilityScore(ctx context.Context, id uuid.UUID, delta int) error
	FindWithinRadius(ctx context.Context, lat, lon, radiusKm float64, subscribedOnly bool) ([]*models.User, error)
}

// VerificationRepository определяет контракт для журнала проверок
type VerificationRepository interface {
	Create(ctx context.Context, verification *models.Verification) error
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.Verification, error)
}

// ImageClassifier - внешний сервис распознавания затоплений на фото
type ImageClassifier interface {
	Analyze(ctx context.Context, imageURL string) (*vision.Analysis, error)
}

// WeatherProvider - внешний источник текущей погоды
type WeatherProvider interface {
	CurrentConditions(ctx context.Context, lat, lon float64) (*weather.Conditions, error)
}
