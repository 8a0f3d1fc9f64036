package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_watch_system/internal/bots"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/shenikar/flood_watch_system/internal/dispatch"
	"github.com/shenikar/flood_watch_system/internal/events"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Радиус рассылки по умолчанию, км, когда у инцидента он не задан.
const defaultAffectedRadiusKm = 5.0

// AlertService генерирует оповещения из инцидентов и рассылает их
// по каналам с учётом языка получателя.
type AlertService interface {
	GenerateAlertFromIncident(ctx context.Context, incidentID uuid.UUID, level *models.AlertLevel) (*models.Alert, error)
	DeliverAlert(ctx context.Context, alertID uuid.UUID) (*models.DeliveryStats, error)
	RetryFailedDeliveries(ctx context.Context, alertID uuid.UUID) (int, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListRecentAlerts(ctx context.Context, limit int) ([]*models.Alert, error)
	ListAlertsForIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Alert, error)
	ListUserAlerts(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Alert, error)
	MarkAlertRead(ctx context.Context, alertID, userID uuid.UUID) error
}

type alertService struct {
	alerts    AlertRepository
	incidents IncidentRepository
	users     UserRepository
	channels  bots.Registry
	queue     dispatch.Publisher
	publisher events.Publisher
	cfg       *config.Config
	metrics   *observability.Metrics
	clock     clockwork.Clock
	logger    *logrus.Logger
}

func NewAlertService(
	alerts AlertRepository,
	incidents IncidentRepository,
	users UserRepository,
	channels bots.Registry,
	queue dispatch.Publisher,
	publisher events.Publisher,
	cfg *config.Config,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	logger *logrus.Logger,
) AlertService {
	return &alertService{
		alerts:    alerts,
		incidents: incidents,
		users:     users,
		channels:  channels,
		queue:     queue,
		publisher: publisher,
		cfg:       cfg,
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
	}
}

// GenerateAlertFromIncident создает оповещение для инцидента и ставит его
// в очередь доставки. Если уровень не задан, он выводится из серьёзности.
func (s *alertService) GenerateAlertFromIncident(ctx context.Context, incidentID uuid.UUID, level *models.AlertLevel) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "alert",
		"method":      "GenerateAlertFromIncident",
		"incident_id": incidentID,
	})

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get incident: %w", err)
	}

	alertLevel := models.AlertLevelForSeverity(incident.Severity)
	if level != nil {
		alertLevel = *level
	}

	radius := incident.AffectedRadiusKm
	if radius <= 0 {
		radius = defaultAffectedRadiusKm
	}

	alert := &models.Alert{
		IncidentID:       incidentID,
		Level:            alertLevel,
		Message:          bots.RenderAlertMessage(alertLevel, s.cfg.DefaultLanguageCode, "", incident.ReportCount),
		AffectedRadiusKm: radius,
		DeliveryStatus:   models.DeliveryPending,
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("service: failed to create alert: %w", err)
	}
	s.metrics.AlertsGenerated.WithLabelValues(string(alertLevel)).Inc()

	// Сама рассылка идёт через воркер, ошибка постановки не теряет оповещение:
	// его можно разослать повторно вручную.
	if err := s.queue.Publish(ctx, dispatch.DeliveryJob{AlertID: alert.ID}); err != nil {
		log.WithError(err).Error("Failed to enqueue alert delivery")
	}

	log.WithFields(logrus.Fields{
		"alert_id": alert.ID,
		"level":    alertLevel,
	}).Info("Alert generated")
	return alert, nil
}

// DeliverAlert рассылает оповещение всем подписанным пользователям в зоне
// поражения. Статус sent выставляется, если доставлен хотя бы один получатель.
func (s *alertService) DeliverAlert(ctx context.Context, alertID uuid.UUID) (*models.DeliveryStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "DeliverAlert",
		"alert_id": alertID,
	})

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get alert: %w", err)
	}
	incident, err := s.incidents.GetByID(ctx, alert.IncidentID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get incident: %w", err)
	}

	recipients, err := s.users.FindWithinRadius(ctx, incident.Latitude, incident.Longitude, alert.AffectedRadiusKm, true)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find recipients: %w", err)
	}

	stats := &models.DeliveryStats{Total: len(recipients)}
	s.metrics.DeliveryBatchSize.Observe(float64(len(recipients)))

	for _, user := range recipients {
		if err := s.alerts.AddRecipient(ctx, alertID, user.ID); err != nil {
			log.WithError(err).WithField("user_id", user.ID).Error("Failed to add alert recipient")
			stats.Failed++
			continue
		}
		if s.sendToUser(ctx, alert, incident, user, stats) {
			stats.Delivered++
		} else {
			stats.Failed++
		}
	}

	status := models.DeliverySent
	if stats.Total > 0 && stats.Delivered == 0 {
		status = models.DeliveryFailed
	}
	if err := s.alerts.SetDeliveryResult(ctx, alertID, status, stats.Total, s.clock.Now().UTC()); err != nil {
		return nil, fmt.Errorf("service: failed to set delivery result: %w", err)
	}

	if status == models.DeliverySent {
		s.publishAlertSent(ctx, alert, stats)
	}

	log.WithFields(logrus.Fields{
		"total":     stats.Total,
		"delivered": stats.Delivered,
		"failed":    stats.Failed,
		"status":    status,
	}).Info("Alert delivery finished")
	return stats, nil
}

// RetryFailedDeliveries повторяет доставку только недоставленным получателям.
// Возвращает число успешно доставленных при повторе.
func (s *alertService) RetryFailedDeliveries(ctx context.Context, alertID uuid.UUID) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "RetryFailedDeliveries",
		"alert_id": alertID,
	})

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get alert: %w", err)
	}
	incident, err := s.incidents.GetByID(ctx, alert.IncidentID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get incident: %w", err)
	}

	undelivered, err := s.alerts.ListUndelivered(ctx, alertID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to list undelivered recipients: %w", err)
	}

	retried := 0
	stats := &models.DeliveryStats{}
	for _, rec := range undelivered {
		user, err := s.users.GetByID(ctx, rec.UserID)
		if err != nil {
			log.WithError(err).WithField("user_id", rec.UserID).Warn("Failed to load recipient")
			continue
		}
		if s.sendToUser(ctx, alert, incident, user, stats) {
			retried++
		}
	}

	if retried > 0 && alert.DeliveryStatus == models.DeliveryFailed {
		if err := s.alerts.SetDeliveryResult(ctx, alertID, models.DeliverySent, alert.RecipientsCount, s.clock.Now().UTC()); err != nil {
			return retried, fmt.Errorf("service: failed to update delivery result: %w", err)
		}
	}

	log.WithFields(logrus.Fields{
		"undelivered": len(undelivered),
		"retried":     retried,
	}).Info("Alert delivery retry finished")
	return retried, nil
}

// sendToUser рендерит сообщение на языке получателя и шлёт его в канал
// платформы. Успешная доставка сразу фиксируется в бд.
func (s *alertService) sendToUser(ctx context.Context, alert *models.Alert, incident *models.Incident, user *models.User, stats *models.DeliveryStats) bool {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"alert_id": alert.ID,
		"user_id":  user.ID,
	})

	channel, ok := s.channels[user.Platform]
	if !ok {
		log.WithField("platform", user.Platform).Warn("No delivery channel for platform")
		s.metrics.AlertDeliveries.WithLabelValues(string(user.Platform), "failure").Inc()
		return false
	}

	lang := user.LanguageCode
	if lang == "" {
		lang = s.cfg.DefaultLanguageCode
	}
	message := bots.RenderAlertMessage(alert.Level, lang, "", incident.ReportCount)

	if err := channel.Send(ctx, user.PlatformID, message); err != nil {
		log.WithError(err).Warn("Failed to deliver alert to user")
		s.metrics.AlertDeliveries.WithLabelValues(string(user.Platform), "failure").Inc()
		return false
	}

	if err := s.alerts.MarkDelivered(ctx, alert.ID, user.ID, s.clock.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to mark recipient delivered")
	}
	s.metrics.AlertDeliveries.WithLabelValues(string(user.Platform), "success").Inc()

	switch user.Platform {
	case models.PlatformWhatsApp:
		stats.WhatsApp++
	case models.PlatformTelegram:
		stats.Telegram++
	}
	return true
}

func (s *alertService) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get alert: %w", err)
	}
	return alert, nil
}

func (s *alertService) ListRecentAlerts(ctx context.Context, limit int) ([]*models.Alert, error) {
	alerts, err := s.alerts.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (s *alertService) ListAlertsForIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Alert, error) {
	alerts, err := s.alerts.ListForIncident(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list incident alerts: %w", err)
	}
	return alerts, nil
}

func (s *alertService) ListUserAlerts(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Alert, error) {
	alerts, err := s.alerts.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list user alerts: %w", err)
	}
	return alerts, nil
}

func (s *alertService) MarkAlertRead(ctx context.Context, alertID, userID uuid.UUID) error {
	if err := s.alerts.MarkRead(ctx, alertID, userID, s.clock.Now().UTC()); err != nil {
		return fmt.Errorf("service: failed to mark alert read: %w", err)
	}
	return nil
}

func (s *alertService) publishAlertSent(ctx context.Context, alert *models.Alert, stats *models.DeliveryStats) {
	err := s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeAlertSent,
		OccurredAt: s.clock.Now().UTC(),
		Payload: map[string]any{
			"alert_id":    alert.ID,
			"incident_id": alert.IncidentID,
			"level":       alert.Level,
			"delivered":   stats.Delivered,
			"failed":      stats.Failed,
		},
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service":  "alert",
			"alert_id": alert.ID,
		}).Error("Failed to publish alert sent event")
	}
}
