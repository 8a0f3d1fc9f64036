package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_watch_system/internal/config"
	svc_mocks "github.com/shenikar/flood_watch_system/internal/handler/http/v1/mocks"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/observability"
	"github.com/shenikar/flood_watch_system/internal/service"
	"github.com/shenikar/flood_watch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// reportMocks собирает все моки зависимостей сервиса репортов.
type reportMocks struct {
	reports       *mocks.MockReportRepository
	users         *mocks.MockUserRepository
	verifications *mocks.MockVerificationRepository
	verifier      *svc_mocks.MockVerificationService
	incidents     *svc_mocks.MockIncidentService
	alerts        *svc_mocks.MockAlertService
}

// newTestReportService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestReportService(t *testing.T) (service.ReportService, *reportMocks) {
	ctrl := gomock.NewController(t)

	m := &reportMocks{
		reports:       mocks.NewMockReportRepository(ctrl),
		users:         mocks.NewMockUserRepository(ctrl),
		verifications: mocks.NewMockVerificationRepository(ctrl),
		verifier:      svc_mocks.NewMockVerificationService(ctrl),
		incidents:     svc_mocks.NewMockIncidentService(ctrl),
		alerts:        svc_mocks.NewMockAlertService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DuplicateTimeWindow: 24 * time.Hour,
	}

	s := service.NewReportService(
		m.reports,
		m.users,
		m.verifications,
		m.verifier,
		m.incidents,
		m.alerts,
		cfg,
		observability.NewMetricsForTesting(),
		clockwork.NewFakeClock(),
		logger,
	)
	return s, m
}

func TestSubmitReport_VerifiedTriggersClusteringAndAlert(t *testing.T) {
	// Подготовка
	s, m := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Severity: models.SeverityHigh,
	}
	verifiedReport := &models.Report{
		ID:                 report.ID,
		UserID:             report.UserID,
		Severity:           report.Severity,
		VerificationStatus: models.VerificationVerified,
	}
	outcome := &service.VerificationOutcome{
		ReportID: report.ID,
		Status:   models.VerificationVerified,
		Score:    0.72,
	}
	incident := &models.Incident{ID: uuid.New()}
	alert := &models.Alert{ID: uuid.New(), IncidentID: incident.ID}

	// Ожидания
	m.reports.EXPECT().Create(ctx, report).Return(nil).Times(1)
	m.verifier.EXPECT().VerifyReport(ctx, report.ID).Return(outcome, nil).Times(1)
	m.reports.EXPECT().GetByID(ctx, report.ID).Return(verifiedReport, nil).Times(1)
	m.incidents.EXPECT().FindOrCreateIncident(ctx, verifiedReport).Return(incident, nil).Times(1)
	m.alerts.EXPECT().GenerateAlertFromIncident(ctx, incident.ID, gomock.Nil()).Return(alert, nil).Times(1)

	// Действие
	result, err := s.SubmitReport(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, verifiedReport, result.Report)
	assert.Equal(t, outcome, result.Outcome)
	assert.Equal(t, incident, result.Incident)
	assert.Equal(t, alert, result.Alert)
}

func TestSubmitReport_PendingRequestsCommunityVerification(t *testing.T) {
	// Подготовка
	s, m := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{
		ID:     uuid.New(),
		UserID: uuid.New(),
	}
	outcome := &service.VerificationOutcome{
		ReportID: report.ID,
		Status:   models.VerificationPending,
		Score:    0.45,
	}

	// Ожидания
	m.reports.EXPECT().Create(ctx, report).Return(nil).Times(1)
	m.verifier.EXPECT().VerifyReport(ctx, report.ID).Return(outcome, nil).Times(1)
	m.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	m.verifier.EXPECT().RequestCommunityVerification(ctx, report.ID).Return(4, nil).Times(1)

	// Кластеризация и оповещение для непроверенного репорта не запускаются
	m.incidents.EXPECT().FindOrCreateIncident(gomock.Any(), gomock.Any()).Times(0)
	m.alerts.EXPECT().GenerateAlertFromIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := s.SubmitReport(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 4, result.CommunityRequests)
	assert.Nil(t, result.Incident)
}

func TestSubmitReport_VerificationFailureDoesNotRejectSubmission(t *testing.T) {
	// Подготовка
	s, m := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{
		ID:     uuid.New(),
		UserID: uuid.New(),
	}

	// Ожидания
	m.reports.EXPECT().Create(ctx, report).Return(nil).Times(1)
	m.verifier.EXPECT().
		VerifyReport(ctx, report.ID).
		Return(nil, fmt.Errorf("verification pipeline unavailable")).
		Times(1)

	// Действие
	result, err := s.SubmitReport(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, report, result.Report)
	assert.Nil(t, result.Outcome)
}

func TestSubmitReport_CreateFailure(t *testing.T) {
	// Подготовка
	s, m := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{UserID: uuid.New()}

	// Ожидания
	m.reports.EXPECT().
		Create(ctx, report).
		Return(fmt.Errorf("db connection lost")).
		Times(1)

	m.verifier.EXPECT().VerifyReport(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := s.SubmitReport(ctx, report)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestSubmitReport_VerifiedWithoutNeighbors_NoAlert(t *testing.T) {
	// Подготовка
	s, m := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{
		ID:     uuid.New(),
		UserID: uuid.New(),
	}
	outcome := &service.VerificationOutcome{
		ReportID: report.ID,
		Status:   models.VerificationVerified,
		Score:    0.65,
	}

	// Ожидания
	m.reports.EXPECT().Create(ctx, report).Return(nil).Times(1)
	m.verifier.EXPECT().VerifyReport(ctx, report.ID).Return(outcome, nil).Times(1)
	m.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)

	// Одиночный репорт не образует инцидент - оповещение не генерируется
	m.incidents.EXPECT().FindOrCreateIncident(ctx, report).Return(nil, nil).Times(1)
	m.alerts.EXPECT().GenerateAlertFromIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := s.SubmitReport(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, result.Incident)
	assert.Nil(t, result.Alert)
}

func TestVerifyReportManually_Success(t *testing.T) {
	// Подготовка
	s, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	authorID := uuid.New()
	report := &models.Report{
		ID:                 reportID,
		UserID:             authorID,
		VerificationStatus: models.VerificationFlagged,
		AIConfidenceScore:  0.35,
	}
	verified := &models.Report{
		ID:                 reportID,
		UserID:             authorID,
		VerificationStatus: models.VerificationVerified,
		AIConfidenceScore:  0.35,
	}

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).Return(report, nil).Times(1)

	// Оценка автоматической проверки сохраняется
	m.reports.EXPECT().
		MarkVerified(ctx, reportID, 0.35, gomock.Any()).
		Return(nil).
		Times(1)

	m.verifications.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Verification) error {
			assert.Equal(t, models.VerificationTypeAdmin, v.Type)
			assert.Equal(t, models.ResultConfirmed, v.Result)
			return nil
		}).
		Times(1)

	// Автор получает бонус к репутации
	m.users.EXPECT().
		UpdateCredibilityScore(ctx, authorID, 10).
		Return(nil).
		Times(1)

	m.reports.EXPECT().GetByID(ctx, reportID).Return(verified, nil).Times(1)
	m.incidents.EXPECT().FindOrCreateIncident(ctx, verified).Return(nil, nil).Times(1)

	// Действие
	result, err := s.VerifyReportManually(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, verified, result)
}

func TestVerifyReportManually_AlreadyRejected(t *testing.T) {
	// Подготовка
	s, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.Report{
		ID:                 reportID,
		VerificationStatus: models.VerificationRejected,
	}

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).Return(report, nil).Times(1)

	// Обратного перехода из rejected нет
	m.reports.EXPECT().MarkVerified(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := s.VerifyReportManually(ctx, reportID)

	// Проверки
	require.ErrorIs(t, err, service.ErrReportAlreadyRejected)
	assert.Nil(t, result)
}

func TestRejectReport_Success(t *testing.T) {
	// Подготовка
	s, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	authorID := uuid.New()
	report := &models.Report{
		ID:                 reportID,
		UserID:             authorID,
		VerificationStatus: models.VerificationPending,
	}
	rejected := &models.Report{
		ID:                 reportID,
		UserID:             authorID,
		VerificationStatus: models.VerificationRejected,
	}

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).Return(report, nil).Times(1)

	m.reports.EXPECT().
		UpdateStatus(ctx, reportID, models.VerificationRejected).
		Return(nil).
		Times(1)

	m.verifications.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Verification) error {
			assert.Equal(t, models.VerificationTypeAdmin, v.Type)
			assert.Equal(t, models.ResultRejected, v.Result)
			return nil
		}).
		Times(1)

	// Штраф к репутации автора
	m.users.EXPECT().
		UpdateCredibilityScore(ctx, authorID, -20).
		Return(nil).
		Times(1)

	m.reports.EXPECT().GetByID(ctx, reportID).Return(rejected, nil).Times(1)

	// Действие
	result, err := s.RejectReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, rejected, result)
}

func TestRejectReport_AlreadyRejected(t *testing.T) {
	// Подготовка
	s, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.Report{
		ID:                 reportID,
		VerificationStatus: models.VerificationRejected,
	}

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).Return(report, nil).Times(1)
	m.reports.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := s.RejectReport(ctx, reportID)

	// Проверки
	require.ErrorIs(t, err, service.ErrReportAlreadyRejected)
	assert.Nil(t, result)
}
