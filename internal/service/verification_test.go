package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_watch_system/internal/bots"
	bots_mocks "github.com/shenikar/flood_watch_system/internal/bots/mocks"
	"github.com/shenikar/flood_watch_system/internal/config"
	events_mocks "github.com/shenikar/flood_watch_system/internal/events/mocks"
	"github.com/shenikar/flood_watch_system/internal/integrations/vision"
	"github.com/shenikar/flood_watch_system/internal/integrations/weather"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/observability"
	"github.com/shenikar/flood_watch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// verificationMocks собирает все моки зависимостей сервиса проверки.
type verificationMocks struct {
	reports       *mocks.MockReportRepository
	users         *mocks.MockUserRepository
	verifications *mocks.MockVerificationRepository
	classifier    *mocks.MockImageClassifier
	weather       *mocks.MockWeatherProvider
	channel       *bots_mocks.MockChannel
	publisher     *events_mocks.MockPublisher
	clock         *clockwork.FakeClock
}

// newTestVerificationService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestVerificationService(t *testing.T) (*verificationService, *verificationMocks) {
	ctrl := gomock.NewController(t)

	m := &verificationMocks{
		reports:       mocks.NewMockReportRepository(ctrl),
		users:         mocks.NewMockUserRepository(ctrl),
		verifications: mocks.NewMockVerificationRepository(ctrl),
		classifier:    mocks.NewMockImageClassifier(ctrl),
		weather:       mocks.NewMockWeatherProvider(ctrl),
		channel:       bots_mocks.NewMockChannel(ctrl),
		publisher:     events_mocks.NewMockPublisher(ctrl),
		clock:         clockwork.NewFakeClock(),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		VerificationThreshold:  0.6,
		DuplicateRadiusKm:      0.5,
		DuplicateTimeWindow:    24 * time.Hour,
		CommunityRadiusKm:      5,
		CommunityRequestsLimit: 10,
		CommunityAutoVerify:    3,
		DefaultLanguageCode:    "en",
	}

	channels := bots.Registry{
		models.PlatformTelegram: m.channel,
	}

	service := NewVerificationService(
		m.reports,
		m.users,
		m.verifications,
		m.classifier,
		m.weather,
		channels,
		m.publisher,
		cfg,
		observability.NewMetricsForTesting(),
		m.clock,
		logger,
	)
	return service.(*verificationService), m
}

func TestVerifyReport_AllSignalsAgree_Verified(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.Report{
		ID:        reportID,
		Latitude:  -6.8,
		Longitude: 39.28,
		Severity:  models.SeverityMedium,
		ImageURLs: []string{"https://img.example.com/flood.jpg"},
	}
	since := m.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	// AI: одно фото с затоплением, уверенность 0.7
	m.classifier.EXPECT().
		Analyze(ctx, "https://img.example.com/flood.jpg").
		Return(&vision.Analysis{IsFlood: true, Confidence: 0.7, Severity: 2}, nil).
		Times(1)

	// Погода: риск 0.5 при ожидании 0.4 для medium — уверенность 0.9
	m.weather.EXPECT().
		CurrentConditions(ctx, report.Latitude, report.Longitude).
		Return(&weather.Conditions{Rainfall1h: 60}, nil).
		Times(1)

	// Дубликаты: один подтверждённый сосед — 0.5
	m.reports.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{
			{ID: uuid.New(), VerificationStatus: models.VerificationVerified},
		}, nil).
		Times(1)

	// Журнал: по строке на сигнал AI и погоды
	m.verifications.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(2)

	// 0.4*0.7 + 0.3*0.9 + 0.3*0.5 = 0.70 — выше порога
	m.reports.EXPECT().
		MarkVerified(ctx, reportID, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	outcome, err := service.VerifyReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, outcome.Status)
	assert.InDelta(t, 0.70, outcome.Score, 1e-9)
	assert.True(t, outcome.AISignal.Present)
	assert.True(t, outcome.WeatherSignal.Present)
	assert.True(t, outcome.DuplicateSignal.Present)
}

func TestVerifyReport_MidScore_Pending(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	// Репорт без фото — сигнал AI отсутствует
	report := &models.Report{
		ID:        reportID,
		Latitude:  -6.8,
		Longitude: 39.28,
		Severity:  models.SeverityLow,
	}
	since := m.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	// Погода: риск 0 при ожидании 0.2 для low — уверенность 0.8
	m.weather.EXPECT().
		CurrentConditions(ctx, report.Latitude, report.Longitude).
		Return(&weather.Conditions{}, nil).
		Times(1)

	// Дубликаты: два подтверждённых соседа — 0.7
	m.reports.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{
			{ID: uuid.New(), VerificationStatus: models.VerificationVerified},
			{ID: uuid.New(), VerificationStatus: models.VerificationVerified},
		}, nil).
		Times(1)

	// Журнал: только строка погоды
	m.verifications.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// 0.3*0.8 + 0.3*0.7 = 0.45 — промежуточная зона, статус в бд не меняется
	m.reports.EXPECT().MarkVerified(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.reports.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	outcome, err := service.VerifyReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, outcome.Status)
	assert.InDelta(t, 0.45, outcome.Score, 1e-9)
	assert.False(t, outcome.AISignal.Present)
}

func TestVerifyReport_LowScore_Flagged(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.Report{
		ID:        reportID,
		Latitude:  -6.8,
		Longitude: 39.28,
		Severity:  models.SeverityCritical,
	}
	since := m.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	// Погода недоступна — сигнал отсутствует
	m.weather.EXPECT().
		CurrentConditions(ctx, report.Latitude, report.Longitude).
		Return(nil, fmt.Errorf("weather api timeout")).
		Times(1)

	// Соседей нет — подтверждающий сигнал присутствует, но равен нулю
	m.reports.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{}, nil).
		Times(1)

	m.verifications.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	m.reports.EXPECT().
		UpdateStatus(ctx, reportID, models.VerificationFlagged).
		Return(nil).
		Times(1)

	// Действие
	outcome, err := service.VerifyReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.VerificationFlagged, outcome.Status)
	assert.Equal(t, 0.0, outcome.Score)
	assert.False(t, outcome.WeatherSignal.Present)
	assert.True(t, outcome.DuplicateSignal.Present)
}

func TestVerifyReport_DuplicateSignalExcludesOwnReport(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.Report{
		ID:                 reportID,
		Latitude:           -6.8,
		Longitude:          39.28,
		Severity:           models.SeverityCritical,
		VerificationStatus: models.VerificationVerified,
	}
	since := m.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	m.weather.EXPECT().
		CurrentConditions(ctx, report.Latitude, report.Longitude).
		Return(nil, fmt.Errorf("weather api timeout")).
		Times(1)

	// Поиск вернул только сам репорт — соседей нет
	m.reports.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{report}, nil).
		Times(1)

	m.reports.EXPECT().
		UpdateStatus(ctx, reportID, models.VerificationFlagged).
		Return(nil).
		Times(1)

	// Действие
	outcome, err := service.VerifyReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0.0, outcome.DuplicateSignal.Score)
}

func TestVerifyReport_LowConfidenceImageContributesRawScore(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.Report{
		ID:        reportID,
		Latitude:  -6.8,
		Longitude: 39.28,
		Severity:  models.SeverityCritical,
		ImageURLs: []string{"https://img.example.com/puddle.jpg"},
	}
	since := m.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	// Фото не распознано как затопление, но сырая уверенность 0.45 идёт в среднее
	m.classifier.EXPECT().
		Analyze(ctx, "https://img.example.com/puddle.jpg").
		Return(&vision.Analysis{IsFlood: false, Confidence: 0.45, Severity: 1}, nil).
		Times(1)

	m.weather.EXPECT().
		CurrentConditions(ctx, report.Latitude, report.Longitude).
		Return(nil, fmt.Errorf("weather api timeout")).
		Times(1)

	m.reports.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{}, nil).
		Times(1)

	// Журнал: строка AI с результатом uncertain
	m.verifications.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// 0.4*0.45 = 0.18 — ниже нижней границы
	m.reports.EXPECT().
		UpdateStatus(ctx, reportID, models.VerificationFlagged).
		Return(nil).
		Times(1)

	// Действие
	outcome, err := service.VerifyReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.True(t, outcome.AISignal.Present)
	assert.InDelta(t, 0.45, outcome.AISignal.Score, 1e-9)
	assert.InDelta(t, 0.18, outcome.Score, 1e-9)
}

func TestVerifyReport_ClassifierFailure_SignalAbsent(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.Report{
		ID:        reportID,
		Latitude:  -6.8,
		Longitude: 39.28,
		Severity:  models.SeverityLow,
		ImageURLs: []string{"https://img.example.com/flood.jpg"},
	}
	since := m.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	// Классификатор недоступен — проверка продолжается без AI
	m.classifier.EXPECT().
		Analyze(ctx, "https://img.example.com/flood.jpg").
		Return(nil, fmt.Errorf("vision service unavailable")).
		Times(1)

	m.weather.EXPECT().
		CurrentConditions(ctx, report.Latitude, report.Longitude).
		Return(&weather.Conditions{}, nil).
		Times(1)

	m.reports.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{}, nil).
		Times(1)

	m.verifications.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// 0.3*0.8 = 0.24 — ниже 0.4, репорт помечается flagged
	m.reports.EXPECT().
		UpdateStatus(ctx, reportID, models.VerificationFlagged).
		Return(nil).
		Times(1)

	// Действие
	outcome, err := service.VerifyReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.False(t, outcome.AISignal.Present)
	assert.Equal(t, models.VerificationFlagged, outcome.Status)
}

func TestVerifyReport_ReportNotFound(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(nil, fmt.Errorf("report not found")).
		Times(1)

	// Действие
	outcome, err := service.VerifyReport(ctx, reportID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, outcome)
}

func TestRequestCommunityVerification_ExcludesAuthorAndSends(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	authorID := uuid.New()
	report := &models.Report{
		ID:        reportID,
		UserID:    authorID,
		Latitude:  -6.8,
		Longitude: 39.28,
		Address:   "Msimbazi Valley",
	}
	neighbors := []*models.User{
		{ID: authorID, Platform: models.PlatformTelegram, PlatformID: "author"},
		{ID: uuid.New(), Platform: models.PlatformTelegram, PlatformID: "tg-1", LanguageCode: "en"},
		{ID: uuid.New(), Platform: models.PlatformTelegram, PlatformID: "tg-2", LanguageCode: "sw"},
	}

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	m.users.EXPECT().
		FindWithinRadius(ctx, report.Latitude, report.Longitude, 5.0, true).
		Return(neighbors, nil).
		Times(1)

	// Автор запрос не получает
	m.channel.EXPECT().
		Send(ctx, "tg-1", bots.RenderVerificationRequest("en", report.Address)).
		Return(nil).
		Times(1)
	m.channel.EXPECT().
		Send(ctx, "tg-2", bots.RenderVerificationRequest("sw", report.Address)).
		Return(nil).
		Times(1)

	// Действие
	sent, err := service.RequestCommunityVerification(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestRequestCommunityVerification_SkipsPlatformWithoutChannel(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.Report{
		ID:        reportID,
		UserID:    uuid.New(),
		Latitude:  -6.8,
		Longitude: 39.28,
	}
	neighbors := []*models.User{
		{ID: uuid.New(), Platform: models.PlatformSMS, PlatformID: "+255700000001"},
	}

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	m.users.EXPECT().
		FindWithinRadius(ctx, report.Latitude, report.Longitude, 5.0, true).
		Return(neighbors, nil).
		Times(1)

	m.channel.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	sent, err := service.RequestCommunityVerification(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestRecordCommunityVerification_ThirdConfirmationPromotes(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	verifierID := uuid.New()
	report := &models.Report{
		ID:                 reportID,
		VerificationStatus: models.VerificationPending,
	}

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	m.verifications.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	m.reports.EXPECT().
		IncrementCommunityVerifications(ctx, reportID).
		Return(3, nil).
		Times(1)

	// Третье подтверждение переводит репорт в verified с фиксированной оценкой
	m.reports.EXPECT().
		MarkVerified(ctx, reportID, communityVerifiedConfidence, gomock.Any()).
		Return(nil).
		Times(1)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err := service.RecordCommunityVerification(ctx, reportID, verifierID, true)

	// Проверки
	require.NoError(t, err)
}

func TestRecordCommunityVerification_NotConfirmed_NoIncrement(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	verifierID := uuid.New()
	report := &models.Report{
		ID:                 reportID,
		VerificationStatus: models.VerificationPending,
	}

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	m.verifications.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	m.reports.EXPECT().IncrementCommunityVerifications(gomock.Any(), gomock.Any()).Times(0)
	m.reports.EXPECT().MarkVerified(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.RecordCommunityVerification(ctx, reportID, verifierID, false)

	// Проверки
	require.NoError(t, err)
}

func TestRecordCommunityVerification_RejectedReportNotPromoted(t *testing.T) {
	// Подготовка
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	reportID := uuid.New()
	verifierID := uuid.New()
	report := &models.Report{
		ID:                 reportID,
		VerificationStatus: models.VerificationRejected,
	}

	// Ожидания
	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(report, nil).
		Times(1)

	m.verifications.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	m.reports.EXPECT().
		IncrementCommunityVerifications(ctx, reportID).
		Return(5, nil).
		Times(1)

	// Отклонённый репорт не возвращается в verified даже при избытке подтверждений
	m.reports.EXPECT().MarkVerified(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.RecordCommunityVerification(ctx, reportID, verifierID, true)

	// Проверки
	require.NoError(t, err)
}
