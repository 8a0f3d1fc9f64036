package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/shenikar/flood_watch_system/internal/events"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/observability"
	"github.com/shenikar/flood_watch_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentService группирует подтверждённые репорты в инциденты
// и управляет их жизненным циклом.
type IncidentService interface {
	FindOrCreateIncident(ctx context.Context, report *models.Report) (*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListActiveIncidents(ctx context.Context, limit int) ([]*models.Incident, error)
	ResolveIncident(ctx context.Context, id uuid.UUID) error
	GetIncidentReports(ctx context.Context, id uuid.UUID) ([]*models.Report, error)
}

type incidentService struct {
	incidents IncidentRepository
	reports   ReportRepository
	webhooks  webhook.WebhookPublisher
	publisher events.Publisher
	cfg       *config.Config
	metrics   *observability.Metrics
	clock     clockwork.Clock
	logger    *logrus.Logger
}

func NewIncidentService(
	incidents IncidentRepository,
	reports ReportRepository,
	webhooks webhook.WebhookPublisher,
	publisher events.Publisher,
	cfg *config.Config,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	logger *logrus.Logger,
) IncidentService {
	return &incidentService{
		incidents: incidents,
		reports:   reports,
		webhooks:  webhooks,
		publisher: publisher,
		cfg:       cfg,
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
	}
}

// FindOrCreateIncident привязывает подтверждённый репорт к ближайшему
// активному инциденту либо создаёт новый из репорта и его соседей.
// Без соседей инцидент не создаётся: одиночный репорт инцидентом не становится.
// Конкурентные вызовы для соседних репортов не сериализуются и могут
// создать два инцидента рядом.
func (s *incidentService) FindOrCreateIncident(ctx context.Context, report *models.Report) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "FindOrCreateIncident",
		"report_id": report.ID,
	})

	since := s.clock.Now().UTC().Add(-s.cfg.DuplicateTimeWindow)
	nearby, err := s.reports.FindNearby(ctx, report.Latitude, report.Longitude, s.cfg.ClusteringRadiusKm, since)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearby reports: %w", err)
	}

	// Сначала ищем уже существующий активный инцидент среди соседей.
	for _, r := range nearby {
		if r.ID == report.ID {
			continue
		}
		incident, err := s.incidents.FindByReportID(ctx, r.ID)
		if err != nil {
			log.WithError(err).WithField("neighbor_id", r.ID).Warn("Failed to look up incident for neighbor")
			continue
		}
		if incident == nil || incident.Status != models.IncidentActive {
			continue
		}

		if err := s.incidents.AttachReport(ctx, incident.ID, report.ID); err != nil {
			return nil, fmt.Errorf("service: failed to attach report to incident: %w", err)
		}
		if err := s.incidents.InvalidateIncidentCache(ctx, incident.ID); err != nil {
			log.WithError(err).Warn("Failed to invalidate incident cache")
		}
		s.metrics.ReportsAttached.Inc()

		updated, err := s.incidents.GetByID(ctx, incident.ID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to get incident: %w", err)
		}
		log.WithField("incident_id", updated.ID).Info("Report attached to existing incident")
		return updated, nil
	}

	// FindNearby находит и сам исходный репорт, соседи считаются без него.
	neighbors := make([]*models.Report, 0, len(nearby))
	for _, r := range nearby {
		if r.ID != report.ID {
			neighbors = append(neighbors, r)
		}
	}
	if len(neighbors) == 0 {
		log.Info("No nearby reports, incident not created")
		return nil, nil
	}

	// Новый инцидент: точка исходного репорта, серьёзность - максимум по кластеру.
	reportIDs := make([]uuid.UUID, 0, len(neighbors)+1)
	severities := make([]models.SeverityLevel, 0, len(neighbors)+1)
	for _, r := range neighbors {
		reportIDs = append(reportIDs, r.ID)
		severities = append(severities, r.Severity)
	}
	reportIDs = append(reportIDs, report.ID)
	severities = append(severities, report.Severity)

	incident := &models.Incident{
		Latitude:         report.Latitude,
		Longitude:        report.Longitude,
		AffectedRadiusKm: s.cfg.ClusteringRadiusKm,
		Severity:         models.MaxSeverity(severities),
		Status:           models.IncidentActive,
		ReportCount:      len(reportIDs),
	}
	if err := s.incidents.CreateWithReports(ctx, incident, reportIDs); err != nil {
		return nil, fmt.Errorf("service: failed to create incident: %w", err)
	}
	s.metrics.IncidentsCreated.Inc()

	s.publishIncidentEvent(ctx, webhook.EventIncidentCreated, events.TypeIncidentCreated, incident)

	log.WithFields(logrus.Fields{
		"incident_id":  incident.ID,
		"report_count": incident.ReportCount,
		"severity":     incident.Severity,
	}).Info("Incident created")
	return incident, nil
}

// GetIncident читает инцидент через кэш.
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	cached, err := s.incidents.GetIncidentFromCache(ctx, id)
	if err == nil && cached != nil {
		return cached, nil
	}

	incident, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get incident: %w", err)
	}

	if err := s.incidents.SetIncidentCache(ctx, incident); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service":     "incident",
			"incident_id": id,
		}).Warn("Failed to cache incident")
	}
	return incident, nil
}

func (s *incidentService) ListActiveIncidents(ctx context.Context, limit int) ([]*models.Incident, error) {
	incidents, err := s.incidents.ListActive(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active incidents: %w", err)
	}
	return incidents, nil
}

// ResolveIncident закрывает инцидент и рассылает события партнёрам.
func (s *incidentService) ResolveIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveIncident",
		"incident_id": id,
	})

	incident, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to get incident: %w", err)
	}

	now := s.clock.Now().UTC()
	if err := s.incidents.Resolve(ctx, id, now); err != nil {
		return fmt.Errorf("service: failed to resolve incident: %w", err)
	}
	if err := s.incidents.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	s.metrics.IncidentsResolved.Inc()

	incident.Status = models.IncidentResolved
	incident.ResolvedAt = &now
	s.publishIncidentEvent(ctx, webhook.EventIncidentResolved, events.TypeIncidentResolved, incident)

	log.Info("Incident resolved")
	return nil
}

func (s *incidentService) GetIncidentReports(ctx context.Context, id uuid.UUID) ([]*models.Report, error) {
	reports, err := s.incidents.GetReports(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get incident reports: %w", err)
	}
	return reports, nil
}

// publishIncidentEvent отправляет событие в очередь вебхуков и в kafka.
// Ошибки публикации логируются и не влияют на основную операцию.
func (s *incidentService) publishIncidentEvent(ctx context.Context, webhookType string, eventType string, incident *models.Incident) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"incident_id": incident.ID,
	})

	if err := s.webhooks.Publish(ctx, webhook.IncidentEvent{
		Type:      webhookType,
		Incident:  incident,
		Timestamp: s.clock.Now().UTC(),
	}); err != nil {
		log.WithError(err).Error("Failed to publish webhook event")
	}

	if err := s.publisher.Publish(ctx, events.Event{
		Type:       eventType,
		OccurredAt: s.clock.Now().UTC(),
		Payload:    incident,
	}); err != nil {
		log.WithError(err).Error("Failed to publish incident event")
	}
}
