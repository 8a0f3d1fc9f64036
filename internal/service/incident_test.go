package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_watch_system/internal/config"
	events_mocks "github.com/shenikar/flood_watch_system/internal/events/mocks"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/observability"
	"github.com/shenikar/flood_watch_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/flood_watch_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockReportRepository, *webhook_mocks.MockWebhookPublisher, *events_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	reportsMock := mocks.NewMockReportRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)
	publisherMock := events_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ClusteringRadiusKm:  0.5,
		DuplicateTimeWindow: 24 * time.Hour,
	}

	service := NewIncidentService(
		incidentsMock,
		reportsMock,
		webhookMock,
		publisherMock,
		cfg,
		observability.NewMetricsForTesting(),
		clockwork.NewFakeClock(),
		logger,
	)
	return service.(*incidentService), incidentsMock, reportsMock, webhookMock, publisherMock
}

func TestFindOrCreateIncident_AttachesToActiveNeighborIncident(t *testing.T) {
	// Подготовка
	service, incidentsMock, reportsMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	report := &models.Report{
		ID:        uuid.New(),
		Latitude:  -6.8,
		Longitude: 39.28,
		Severity:  models.SeverityMedium,
	}
	neighbor := &models.Report{ID: uuid.New()}
	existing := &models.Incident{
		ID:     uuid.New(),
		Status: models.IncidentActive,
	}
	updated := &models.Incident{
		ID:          existing.ID,
		Status:      models.IncidentActive,
		ReportCount: 3,
	}
	since := service.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания
	reportsMock.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{neighbor, report}, nil).
		Times(1)

	incidentsMock.EXPECT().
		FindByReportID(ctx, neighbor.ID).
		Return(existing, nil).
		Times(1)

	incidentsMock.EXPECT().
		AttachReport(ctx, existing.ID, report.ID).
		Return(nil).
		Times(1)

	incidentsMock.EXPECT().
		InvalidateIncidentCache(ctx, existing.ID).
		Return(nil).
		Times(1)

	incidentsMock.EXPECT().
		GetByID(ctx, existing.ID).
		Return(updated, nil).
		Times(1)

	// Новый инцидент не создается
	incidentsMock.EXPECT().CreateWithReports(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	incident, err := service.FindOrCreateIncident(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, updated, incident)
}

func TestFindOrCreateIncident_CreatesIncidentFromCluster(t *testing.T) {
	// Подготовка
	service, incidentsMock, reportsMock, webhookMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	report := &models.Report{
		ID:        uuid.New(),
		Latitude:  -6.8,
		Longitude: 39.28,
		Severity:  models.SeverityMedium,
	}
	neighbor := &models.Report{
		ID:       uuid.New(),
		Severity: models.SeverityCritical,
	}
	since := service.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания: выборка содержит и сам исходный репорт
	reportsMock.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{neighbor, report}, nil).
		Times(1)

	// Сосед без инцидента
	incidentsMock.EXPECT().
		FindByReportID(ctx, neighbor.ID).
		Return(nil, nil).
		Times(1)

	incidentsMock.EXPECT().
		CreateWithReports(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident, reportIDs []uuid.UUID) error {
			// Точка исходного репорта, радиус кластеризации, серьёзность - максимум по кластеру
			assert.Equal(t, report.Latitude, incident.Latitude)
			assert.Equal(t, report.Longitude, incident.Longitude)
			assert.Equal(t, service.cfg.ClusteringRadiusKm, incident.AffectedRadiusKm)
			assert.Equal(t, models.SeverityCritical, incident.Severity)
			assert.Equal(t, models.IncidentActive, incident.Status)
			assert.Equal(t, 2, incident.ReportCount)
			assert.ElementsMatch(t, []uuid.UUID{neighbor.ID, report.ID}, reportIDs)
			return nil
		}).
		Times(1)

	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	incident, err := service.FindOrCreateIncident(ctx, report)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, incident)
	assert.Equal(t, models.SeverityCritical, incident.Severity)
}

func TestFindOrCreateIncident_NoNeighbors_NoIncident(t *testing.T) {
	// Подготовка
	service, incidentsMock, reportsMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	report := &models.Report{
		ID:        uuid.New(),
		Latitude:  -6.8,
		Longitude: 39.28,
	}
	since := service.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания: выборка находит только сам репорт - соседей нет
	reportsMock.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{report}, nil).
		Times(1)

	// Одиночный репорт инцидентом не становится
	incidentsMock.EXPECT().CreateWithReports(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	incident, err := service.FindOrCreateIncident(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, incident)
}

func TestFindOrCreateIncident_ResolvedNeighborIncidentIgnored(t *testing.T) {
	// Подготовка
	service, incidentsMock, reportsMock, webhookMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	report := &models.Report{
		ID:        uuid.New(),
		Latitude:  -6.8,
		Longitude: 39.28,
		Severity:  models.SeverityHigh,
	}
	neighbor := &models.Report{
		ID:       uuid.New(),
		Severity: models.SeverityLow,
	}
	resolved := &models.Incident{
		ID:     uuid.New(),
		Status: models.IncidentResolved,
	}
	since := service.clock.Now().UTC().Add(-service.cfg.DuplicateTimeWindow)

	// Ожидания
	reportsMock.EXPECT().
		FindNearby(ctx, report.Latitude, report.Longitude, 0.5, since).
		Return([]*models.Report{neighbor}, nil).
		Times(1)

	// Закрытый инцидент соседа не принимает новые репорты
	incidentsMock.EXPECT().
		FindByReportID(ctx, neighbor.ID).
		Return(resolved, nil).
		Times(1)

	incidentsMock.EXPECT().AttachReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	incidentsMock.EXPECT().
		CreateWithReports(ctx, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	incident, err := service.FindOrCreateIncident(ctx, report)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, incident)
	assert.Equal(t, models.SeverityHigh, incident.Severity)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:     incidentID,
		Status: models.IncidentActive,
	}

	// Ожидания
	incidentsMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:     incidentID,
		Status: models.IncidentActive,
	}

	// Ожидания
	// 1. Промах кеша
	incidentsMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// 3. Запись в кеш
	incidentsMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	dbError := fmt.Errorf("не найдено")

	// Ожидания
	incidentsMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, dbError).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
}

func TestResolveIncident_Success(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, webhookMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:     incidentID,
		Status: models.IncidentActive,
	}

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(incident, nil).
		Times(1)

	incidentsMock.EXPECT().
		Resolve(ctx, incidentID, gomock.Any()).
		Return(nil).
		Times(1)

	incidentsMock.EXPECT().
		InvalidateIncidentCache(ctx, incidentID).
		Return(nil).
		Times(1)

	// События уходят партнёрам и в kafka
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.ResolveIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
}

func TestResolveIncident_NotFound(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, fmt.Errorf("не найдено")).
		Times(1)

	incidentsMock.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.ResolveIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
}
