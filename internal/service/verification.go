package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_watch_system/internal/bots"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/shenikar/flood_watch_system/internal/events"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Фиксированная уверенность при авто-подтверждении сообществом.
const communityVerifiedConfidence = 0.8

// VerificationOutcome - итог автоматической проверки репорта.
type VerificationOutcome struct {
	ReportID        uuid.UUID
	Status          models.VerificationStatus
	Score           float64
	AISignal        Signal
	WeatherSignal   Signal
	DuplicateSignal Signal
}

// VerificationService проверяет репорты по независимым сигналам
// и ведёт журнал проверок.
type VerificationService interface {
	VerifyReport(ctx context.Context, reportID uuid.UUID) (*VerificationOutcome, error)
	RequestCommunityVerification(ctx context.Context, reportID uuid.UUID) (int, error)
	RecordCommunityVerification(ctx context.Context, reportID, verifierID uuid.UUID, confirmed bool) error
	GetVerificationHistory(ctx context.Context, reportID uuid.UUID) ([]*models.Verification, error)
}

type verificationService struct {
	reports       ReportRepository
	users         UserRepository
	verifications VerificationRepository
	classifier    ImageClassifier
	weather       WeatherProvider
	channels      bots.Registry
	publisher     events.Publisher
	cfg           *config.Config
	metrics       *observability.Metrics
	clock         clockwork.Clock
	logger        *logrus.Logger
}

func NewVerificationService(
	reports ReportRepository,
	users UserRepository,
	verifications VerificationRepository,
	classifier ImageClassifier,
	weatherProvider WeatherProvider,
	channels bots.Registry,
	publisher events.Publisher,
	cfg *config.Config,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	logger *logrus.Logger,
) VerificationService {
	return &verificationService{
		reports:       reports,
		users:         users,
		verifications: verifications,
		classifier:    classifier,
		weather:       weatherProvider,
		channels:      channels,
		publisher:     publisher,
		cfg:           cfg,
		metrics:       metrics,
		clock:         clock,
		logger:        logger,
	}
}

// VerifyReport опрашивает три источника, считает взвешенную сумму и
// переводит репорт в итоговый статус. Отказ источника не прерывает
// проверку - его сигнал считается отсутствующим.
func (s *verificationService) VerifyReport(ctx context.Context, reportID uuid.UUID) (*VerificationOutcome, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "verification",
		"method":    "VerifyReport",
		"report_id": reportID,
	})

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get report: %w", err)
	}

	start := s.clock.Now()

	ai := s.evaluateAISignal(ctx, report)
	s.observeSignal("ai", ai)

	weatherSig := s.evaluateWeatherSignal(ctx, report)
	s.observeSignal("weather", weatherSig)

	duplicate := s.evaluateDuplicateSignal(ctx, report)
	s.observeSignal("duplicate", duplicate)

	score := WeightedSum([]WeightedSignal{
		{Signal: ai, Weight: aiWeight},
		{Signal: weatherSig, Weight: weatherWeight},
		{Signal: duplicate, Weight: duplicateWeight},
	})

	outcome := &VerificationOutcome{
		ReportID:        reportID,
		Score:           score,
		AISignal:        ai,
		WeatherSignal:   weatherSig,
		DuplicateSignal: duplicate,
	}

	switch {
	case score >= s.cfg.VerificationThreshold:
		if err := s.reports.MarkVerified(ctx, reportID, score, s.clock.Now().UTC()); err != nil {
			return nil, fmt.Errorf("service: failed to mark report verified: %w", err)
		}
		outcome.Status = models.VerificationVerified
		s.publishVerified(ctx, report, score)
	case score >= 0.4:
		outcome.Status = models.VerificationPending
	default:
		if err := s.reports.UpdateStatus(ctx, reportID, models.VerificationFlagged); err != nil {
			return nil, fmt.Errorf("service: failed to flag report: %w", err)
		}
		outcome.Status = models.VerificationFlagged
	}

	s.metrics.VerificationOutcomes.WithLabelValues(string(outcome.Status)).Inc()
	s.metrics.VerifyDuration.Observe(s.clock.Since(start).Seconds())

	log.WithFields(logrus.Fields{
		"score":  score,
		"status": outcome.Status,
	}).Info("Report verification completed")
	return outcome, nil
}

// evaluateAISignal прогоняет все фото репорта через классификатор.
// Репорт без фото сигнала не даёт.
func (s *verificationService) evaluateAISignal(ctx context.Context, report *models.Report) Signal {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "verification",
		"report_id": report.ID,
	})

	if len(report.ImageURLs) == 0 {
		return AbsentSignal()
	}

	total := 0.0
	severitySum := 0
	for _, url := range report.ImageURLs {
		analysis, err := s.classifier.Analyze(ctx, url)
		if err != nil {
			log.WithError(err).Warn("Image analysis failed, treating AI signal as absent")
			return AbsentSignal()
		}
		// Сырая уверенность учитывается всегда: IsFlood — лишь порог 0.5 над ней.
		total += analysis.Confidence
		severitySum += analysis.Severity
	}

	avg := total / float64(len(report.ImageURLs))

	result := models.ResultUncertain
	if avg > 0.5 {
		result = models.ResultConfirmed
	}
	s.recordVerification(ctx, &models.Verification{
		ReportID:        report.ID,
		Type:            models.VerificationTypeAI,
		Result:          result,
		ConfidenceScore: avg,
		Notes:           fmt.Sprintf("AI analyzed %d images. Avg severity: %d", len(report.ImageURLs), severitySum/len(report.ImageURLs)),
	})

	return PresentSignal(avg)
}

// evaluateWeatherSignal сверяет заявленную серьёзность с погодным риском.
func (s *verificationService) evaluateWeatherSignal(ctx context.Context, report *models.Report) Signal {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "verification",
		"report_id": report.ID,
	})

	conditions, err := s.weather.CurrentConditions(ctx, report.Latitude, report.Longitude)
	if err != nil {
		log.WithError(err).Warn("Weather lookup failed, treating weather signal as absent")
		return AbsentSignal()
	}

	risk := floodRiskScore(conditions)
	conf := correlationConfidence(risk, report.Severity)

	result := models.ResultUncertain
	if conf > 0.5 {
		result = models.ResultConfirmed
	}
	s.recordVerification(ctx, &models.Verification{
		ReportID:        report.ID,
		Type:            models.VerificationTypeWeather,
		Result:          result,
		ConfidenceScore: conf,
		Notes:           fmt.Sprintf("Weather risk: %.2f, rainfall 1h: %.1fmm", risk, conditions.Rainfall1h),
	})

	return PresentSignal(conf)
}

// evaluateDuplicateSignal ищет подтверждающие репорты рядом по месту и времени.
func (s *verificationService) evaluateDuplicateSignal(ctx context.Context, report *models.Report) Signal {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "verification",
		"report_id": report.ID,
	})

	since := s.clock.Now().UTC().Add(-s.cfg.DuplicateTimeWindow)
	nearby, err := s.reports.FindNearby(ctx, report.Latitude, report.Longitude, s.cfg.DuplicateRadiusKm, since)
	if err != nil {
		log.WithError(err).Warn("Nearby lookup failed, treating duplicate signal as absent")
		return AbsentSignal()
	}

	verified := 0
	others := 0
	for _, r := range nearby {
		if r.ID == report.ID {
			continue
		}
		others++
		if r.VerificationStatus == models.VerificationVerified {
			verified++
		}
	}

	switch {
	case verified >= 3:
		return PresentSignal(0.9)
	case verified >= 2:
		return PresentSignal(0.7)
	case verified >= 1:
		return PresentSignal(0.5)
	case others >= 1:
		return PresentSignal(0.3)
	default:
		return PresentSignal(0.0)
	}
}

// RequestCommunityVerification рассылает запросы на подтверждение ближайшим
// подписанным пользователям, исключая автора. Возвращает число отправленных.
func (s *verificationService) RequestCommunityVerification(ctx context.Context, reportID uuid.UUID) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "verification",
		"method":    "RequestCommunityVerification",
		"report_id": reportID,
	})

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get report: %w", err)
	}

	nearby, err := s.users.FindWithinRadius(ctx, report.Latitude, report.Longitude, s.cfg.CommunityRadiusKm, true)
	if err != nil {
		return 0, fmt.Errorf("service: failed to find nearby users: %w", err)
	}

	sent := 0
	for _, user := range nearby {
		if user.ID == report.UserID {
			continue
		}
		if sent >= s.cfg.CommunityRequestsLimit {
			break
		}

		channel, ok := s.channels[user.Platform]
		if !ok {
			log.WithField("platform", user.Platform).Warn("No channel for user platform")
			continue
		}

		lang := user.LanguageCode
		if lang == "" {
			lang = s.cfg.DefaultLanguageCode
		}
		message := bots.RenderVerificationRequest(lang, report.Address)

		if err := channel.Send(ctx, user.PlatformID, message); err != nil {
			log.WithError(err).WithField("user_id", user.ID).Warn("Failed to send verification request")
			continue
		}
		sent++
		s.metrics.CommunityRequests.Inc()
	}

	log.WithField("sent", sent).Info("Community verification requests sent")
	return sent, nil
}

// RecordCommunityVerification фиксирует ответ участника. Три подтверждения
// переводят репорт в verified независимо от автоматической оценки.
func (s *verificationService) RecordCommunityVerification(ctx context.Context, reportID, verifierID uuid.UUID, confirmed bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "verification",
		"method":    "RecordCommunityVerification",
		"report_id": reportID,
	})

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return fmt.Errorf("service: failed to get report: %w", err)
	}

	result := models.ResultRejected
	notes := "Community member did not confirm flooding"
	if confirmed {
		result = models.ResultConfirmed
		notes = "Community member confirmed flooding"
	}
	s.recordVerification(ctx, &models.Verification{
		ReportID:        reportID,
		VerifierUserID:  &verifierID,
		Type:            models.VerificationTypeCommunity,
		Result:          result,
		ConfidenceScore: 1.0,
		Notes:           notes,
	})

	if !confirmed {
		return nil
	}

	count, err := s.reports.IncrementCommunityVerifications(ctx, reportID)
	if err != nil {
		return fmt.Errorf("service: failed to increment community verifications: %w", err)
	}

	if count >= s.cfg.CommunityAutoVerify &&
		report.VerificationStatus != models.VerificationVerified &&
		report.VerificationStatus != models.VerificationRejected {
		if err := s.reports.MarkVerified(ctx, reportID, communityVerifiedConfidence, s.clock.Now().UTC()); err != nil {
			return fmt.Errorf("service: failed to mark report verified: %w", err)
		}
		s.metrics.VerificationOutcomes.WithLabelValues(string(models.VerificationVerified)).Inc()
		s.publishVerified(ctx, report, communityVerifiedConfidence)
		log.WithField("confirmations", count).Info("Report verified by community")
	}
	return nil
}

func (s *verificationService) GetVerificationHistory(ctx context.Context, reportID uuid.UUID) ([]*models.Verification, error) {
	history, err := s.verifications.ListByReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list verifications: %w", err)
	}
	return history, nil
}

// recordVerification пишет строку журнала. Ошибка журнала не прерывает проверку.
func (s *verificationService) recordVerification(ctx context.Context, v *models.Verification) {
	if err := s.verifications.Create(ctx, v); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service":   "verification",
			"report_id": v.ReportID,
			"type":      v.Type,
		}).Error("Failed to record verification")
	}
}

func (s *verificationService) observeSignal(name string, sig Signal) {
	state := "absent"
	if sig.Present {
		state = "present"
	}
	s.metrics.SignalEvaluations.WithLabelValues(name, state).Inc()
}

func (s *verificationService) publishVerified(ctx context.Context, report *models.Report, score float64) {
	err := s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeReportVerified,
		OccurredAt: s.clock.Now().UTC(),
		Payload: map[string]any{
			"report_id":  report.ID,
			"severity":   report.Severity,
			"confidence": score,
		},
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service":   "verification",
			"report_id": report.ID,
		}).Error("Failed to publish report verified event")
	}
}
