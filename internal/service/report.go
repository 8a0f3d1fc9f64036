package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Корректировки репутации автора после админского решения
const (
	credibilityVerifiedBonus   = 10
	credibilityRejectedPenalty = -20
)

var (
	ErrReportAlreadyRejected = errors.New("service: report already rejected")
)

// SubmissionResult - итог приёма репорта вместе с результатами пайплайна.
// Репорт сохранён всегда, остальные поля заполняются по мере успеха этапов.
type SubmissionResult struct {
	Report            *models.Report
	Outcome           *VerificationOutcome
	Incident          *models.Incident
	Alert             *models.Alert
	CommunityRequests int
}

// ReportService - приём репортов и прогон их через пайплайн
// проверки, группировки и оповещения.
type ReportService interface {
	SubmitReport(ctx context.Context, report *models.Report) (*SubmissionResult, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	ListReports(ctx context.Context, status *models.VerificationStatus, page, pageSize int) ([]*models.Report, error)
	ListNearbyReports(ctx context.Context, lat, lon, radiusKm float64) ([]*models.Report, error)
	VerifyReportManually(ctx context.Context, reportID uuid.UUID) (*models.Report, error)
	RejectReport(ctx context.Context, reportID uuid.UUID) (*models.Report, error)
}

type reportService struct {
	reports       ReportRepository
	users         UserRepository
	verifications VerificationRepository
	verifier      VerificationService
	incidents     IncidentService
	alerts        AlertService
	cfg           *config.Config
	metrics       *observability.Metrics
	clock         clockwork.Clock
	logger        *logrus.Logger
}

func NewReportService(
	reports ReportRepository,
	users UserRepository,
	verifications VerificationRepository,
	verifier VerificationService,
	incidents IncidentService,
	alerts AlertService,
	cfg *config.Config,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	logger *logrus.Logger,
) ReportService {
	return &reportService{
		reports:       reports,
		users:         users,
		verifications: verifications,
		verifier:      verifier,
		incidents:     incidents,
		alerts:        alerts,
		cfg:           cfg,
		metrics:       metrics,
		clock:         clock,
		logger:        logger,
	}
}

// SubmitReport сохраняет репорт и запускает пайплайн: проверка, группировка
// в инцидент, оповещение. После сохранения репорта сбой любого этапа
// логируется, но приём не отменяет.
func (s *reportService) SubmitReport(ctx context.Context, report *models.Report) (*SubmissionResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "SubmitReport",
		"user_id": report.UserID,
	})

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("service: failed to create report: %w", err)
	}
	s.metrics.ReportsSubmitted.Inc()
	log = log.WithField("report_id", report.ID)
	log.Info("Report submitted")

	result := &SubmissionResult{Report: report}

	outcome, err := s.verifier.VerifyReport(ctx, report.ID)
	if err != nil {
		log.WithError(err).Error("Automated verification failed")
		return result, nil
	}
	result.Outcome = outcome

	// Подхватываем статус и оценку, выставленные проверкой
	if updated, err := s.reports.GetByID(ctx, report.ID); err == nil {
		result.Report = updated
		report = updated
	} else {
		log.WithError(err).Warn("Failed to reload report after verification")
	}

	switch outcome.Status {
	case models.VerificationVerified:
		s.clusterAndAlert(ctx, log, report, result)
	case models.VerificationPending:
		sent, err := s.verifier.RequestCommunityVerification(ctx, report.ID)
		if err != nil {
			log.WithError(err).Error("Failed to request community verification")
		} else {
			result.CommunityRequests = sent
		}
	}

	return result, nil
}

// clusterAndAlert привязывает подтверждённый репорт к инциденту
// и генерирует оповещение для нового или обновлённого инцидента.
func (s *reportService) clusterAndAlert(ctx context.Context, log *logrus.Entry, report *models.Report, result *SubmissionResult) {
	incident, err := s.incidents.FindOrCreateIncident(ctx, report)
	if err != nil {
		log.WithError(err).Error("Failed to cluster report into incident")
		return
	}
	if incident == nil {
		return
	}
	result.Incident = incident

	alert, err := s.alerts.GenerateAlertFromIncident(ctx, incident.ID, nil)
	if err != nil {
		log.WithError(err).Error("Failed to generate alert for incident")
		return
	}
	result.Alert = alert
}

func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get report: %w", err)
	}
	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, status *models.VerificationStatus, page, pageSize int) ([]*models.Report, error) {
	reports, err := s.reports.ListByStatus(ctx, status, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reports: %w", err)
	}
	return reports, nil
}

func (s *reportService) ListNearbyReports(ctx context.Context, lat, lon, radiusKm float64) ([]*models.Report, error) {
	since := s.clock.Now().UTC().Add(-s.cfg.DuplicateTimeWindow)
	reports, err := s.reports.FindNearby(ctx, lat, lon, radiusKm, since)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearby reports: %w", err)
	}
	return reports, nil
}

// VerifyReportManually - админское подтверждение. Оценка автоматической
// проверки сохраняется, автор получает бонус к репутации.
func (s *reportService) VerifyReportManually(ctx context.Context, reportID uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "VerifyReportManually",
		"report_id": reportID,
	})

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get report: %w", err)
	}
	if report.VerificationStatus == models.VerificationRejected {
		return nil, ErrReportAlreadyRejected
	}

	if err := s.reports.MarkVerified(ctx, reportID, report.AIConfidenceScore, s.clock.Now().UTC()); err != nil {
		return nil, fmt.Errorf("service: failed to mark report verified: %w", err)
	}
	s.recordAdminVerification(ctx, reportID, models.ResultConfirmed, "Manually verified by admin")

	if err := s.users.UpdateCredibilityScore(ctx, report.UserID, credibilityVerifiedBonus); err != nil {
		log.WithError(err).Warn("Failed to update author credibility")
	}

	updated, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get report: %w", err)
	}

	if _, err := s.incidents.FindOrCreateIncident(ctx, updated); err != nil {
		log.WithError(err).Error("Failed to cluster report into incident")
	}

	log.Info("Report manually verified")
	return updated, nil
}

// RejectReport - админское отклонение, обратного перехода из rejected нет.
func (s *reportService) RejectReport(ctx context.Context, reportID uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "RejectReport",
		"report_id": reportID,
	})

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get report: %w", err)
	}
	if report.VerificationStatus == models.VerificationRejected {
		return nil, ErrReportAlreadyRejected
	}

	if err := s.reports.UpdateStatus(ctx, reportID, models.VerificationRejected); err != nil {
		return nil, fmt.Errorf("service: failed to reject report: %w", err)
	}
	s.recordAdminVerification(ctx, reportID, models.ResultRejected, "Manually rejected by admin")

	if err := s.users.UpdateCredibilityScore(ctx, report.UserID, credibilityRejectedPenalty); err != nil {
		log.WithError(err).Warn("Failed to update author credibility")
	}

	updated, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get report: %w", err)
	}
	log.Info("Report rejected")
	return updated, nil
}

func (s *reportService) recordAdminVerification(ctx context.Context, reportID uuid.UUID, result models.VerificationResult, notes string) {
	err := s.verifications.Create(ctx, &models.Verification{
		ReportID:        reportID,
		Type:            models.VerificationTypeAdmin,
		Result:          result,
		ConfidenceScore: 1.0,
		Notes:           notes,
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service":   "report",
			"report_id": reportID,
		}).Error("Failed to record admin verification")
	}
}
