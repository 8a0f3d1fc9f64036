package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_watch_system/internal/bots"
	bots_mocks "github.com/shenikar/flood_watch_system/internal/bots/mocks"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/shenikar/flood_watch_system/internal/dispatch"
	dispatch_mocks "github.com/shenikar/flood_watch_system/internal/dispatch/mocks"
	events_mocks "github.com/shenikar/flood_watch_system/internal/events/mocks"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/observability"
	"github.com/shenikar/flood_watch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// alertMocks собирает все моки зависимостей сервиса оповещений.
type alertMocks struct {
	alerts    *mocks.MockAlertRepository
	incidents *mocks.MockIncidentRepository
	users     *mocks.MockUserRepository
	telegram  *bots_mocks.MockChannel
	whatsapp  *bots_mocks.MockChannel
	queue     *dispatch_mocks.MockPublisher
	publisher *events_mocks.MockPublisher
}

// newTestAlertService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAlertService(t *testing.T) (*alertService, *alertMocks) {
	ctrl := gomock.NewController(t)

	m := &alertMocks{
		alerts:    mocks.NewMockAlertRepository(ctrl),
		incidents: mocks.NewMockIncidentRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		telegram:  bots_mocks.NewMockChannel(ctrl),
		whatsapp:  bots_mocks.NewMockChannel(ctrl),
		queue:     dispatch_mocks.NewMockPublisher(ctrl),
		publisher: events_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultLanguageCode: "en",
	}

	channels := bots.Registry{
		models.PlatformTelegram: m.telegram,
		models.PlatformWhatsApp: m.whatsapp,
	}

	service := NewAlertService(
		m.alerts,
		m.incidents,
		m.users,
		channels,
		m.queue,
		m.publisher,
		cfg,
		observability.NewMetricsForTesting(),
		clockwork.NewFakeClock(),
		logger,
	)
	return service.(*alertService), m
}

func TestGenerateAlertFromIncident_LevelDerivedFromSeverity(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:               incidentID,
		Severity:         models.SeverityHigh,
		AffectedRadiusKm: 3,
		ReportCount:      4,
	}

	// Ожидания
	m.incidents.EXPECT().
		GetByID(ctx, incidentID).
		Return(incident, nil).
		Times(1)

	m.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert) error {
			assert.Equal(t, models.AlertWarning, alert.Level)
			assert.Equal(t, 3.0, alert.AffectedRadiusKm)
			assert.Equal(t, models.DeliveryPending, alert.DeliveryStatus)
			assert.NotEmpty(t, alert.Message)
			alert.ID = uuid.New()
			return nil
		}).
		Times(1)

	m.queue.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	alert, err := service.GenerateAlertFromIncident(ctx, incidentID, nil)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AlertWarning, alert.Level)
}

func TestGenerateAlertFromIncident_ExplicitLevelOverridesSeverity(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:       incidentID,
		Severity: models.SeverityLow,
	}
	level := models.AlertEmergency

	// Ожидания
	m.incidents.EXPECT().
		GetByID(ctx, incidentID).
		Return(incident, nil).
		Times(1)

	m.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert) error {
			assert.Equal(t, models.AlertEmergency, alert.Level)
			// Нулевой радиус инцидента заменяется радиусом по умолчанию
			assert.Equal(t, defaultAffectedRadiusKm, alert.AffectedRadiusKm)
			return nil
		}).
		Times(1)

	m.queue.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	alert, err := service.GenerateAlertFromIncident(ctx, incidentID, &level)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AlertEmergency, alert.Level)
}

func TestGenerateAlertFromIncident_QueueFailureDoesNotLoseAlert(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:       incidentID,
		Severity: models.SeverityMedium,
	}

	// Ожидания
	m.incidents.EXPECT().
		GetByID(ctx, incidentID).
		Return(incident, nil).
		Times(1)

	m.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	m.queue.EXPECT().
		Publish(ctx, gomock.AssignableToTypeOf(dispatch.DeliveryJob{})).
		Return(fmt.Errorf("redis down")).
		Times(1)

	// Действие
	alert, err := service.GenerateAlertFromIncident(ctx, incidentID, nil)

	// Проверки
	require.NoError(t, err)
	assert.NotNil(t, alert)
}

func TestDeliverAlert_PartialSuccess_StatusSent(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	incidentID := uuid.New()
	alert := &models.Alert{
		ID:               alertID,
		IncidentID:       incidentID,
		Level:            models.AlertWarning,
		AffectedRadiusKm: 5,
	}
	incident := &models.Incident{
		ID:          incidentID,
		Latitude:    -6.8,
		Longitude:   39.28,
		ReportCount: 4,
	}
	tgUser := &models.User{ID: uuid.New(), Platform: models.PlatformTelegram, PlatformID: "tg-1", LanguageCode: "en"}
	waUser := &models.User{ID: uuid.New(), Platform: models.PlatformWhatsApp, PlatformID: "wa-1", LanguageCode: "sw"}

	// Ожидания
	m.alerts.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	m.incidents.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)

	m.users.EXPECT().
		FindWithinRadius(ctx, incident.Latitude, incident.Longitude, 5.0, true).
		Return([]*models.User{tgUser, waUser}, nil).
		Times(1)

	m.alerts.EXPECT().AddRecipient(ctx, alertID, tgUser.ID).Return(nil).Times(1)
	m.alerts.EXPECT().AddRecipient(ctx, alertID, waUser.ID).Return(nil).Times(1)

	// Сообщение рендерится на языке получателя
	m.telegram.EXPECT().
		Send(ctx, "tg-1", bots.RenderAlertMessage(models.AlertWarning, "en", "", incident.ReportCount)).
		Return(nil).
		Times(1)
	m.whatsapp.EXPECT().
		Send(ctx, "wa-1", bots.RenderAlertMessage(models.AlertWarning, "sw", "", incident.ReportCount)).
		Return(fmt.Errorf("whatsapp api error")).
		Times(1)

	m.alerts.EXPECT().MarkDelivered(ctx, alertID, tgUser.ID, gomock.Any()).Return(nil).Times(1)

	// Хотя бы одна доставка — статус sent
	m.alerts.EXPECT().
		SetDeliveryResult(ctx, alertID, models.DeliverySent, 2, gomock.Any()).
		Return(nil).
		Times(1)

	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	stats, err := service.DeliverAlert(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Delivered)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Telegram)
	assert.Equal(t, 0, stats.WhatsApp)
}

func TestDeliverAlert_AllFailed_StatusFailed(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	incidentID := uuid.New()
	alert := &models.Alert{
		ID:               alertID,
		IncidentID:       incidentID,
		Level:            models.AlertWatch,
		AffectedRadiusKm: 5,
	}
	incident := &models.Incident{ID: incidentID, Latitude: -6.8, Longitude: 39.28}
	user := &models.User{ID: uuid.New(), Platform: models.PlatformTelegram, PlatformID: "tg-1"}

	// Ожидания
	m.alerts.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	m.incidents.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)

	m.users.EXPECT().
		FindWithinRadius(ctx, incident.Latitude, incident.Longitude, 5.0, true).
		Return([]*models.User{user}, nil).
		Times(1)

	m.alerts.EXPECT().AddRecipient(ctx, alertID, user.ID).Return(nil).Times(1)

	m.telegram.EXPECT().
		Send(ctx, "tg-1", gomock.Any()).
		Return(fmt.Errorf("telegram api error")).
		Times(1)

	m.alerts.EXPECT().
		SetDeliveryResult(ctx, alertID, models.DeliveryFailed, 1, gomock.Any()).
		Return(nil).
		Times(1)

	// Событие alert.sent не публикуется
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	stats, err := service.DeliverAlert(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 0, stats.Delivered)
	assert.Equal(t, 1, stats.Failed)
}

func TestDeliverAlert_NoRecipients_StatusSent(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	incidentID := uuid.New()
	alert := &models.Alert{
		ID:               alertID,
		IncidentID:       incidentID,
		AffectedRadiusKm: 5,
	}
	incident := &models.Incident{ID: incidentID, Latitude: -6.8, Longitude: 39.28}

	// Ожидания
	m.alerts.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	m.incidents.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)

	m.users.EXPECT().
		FindWithinRadius(ctx, incident.Latitude, incident.Longitude, 5.0, true).
		Return([]*models.User{}, nil).
		Times(1)

	// Пустая зона - не ошибка доставки
	m.alerts.EXPECT().
		SetDeliveryResult(ctx, alertID, models.DeliverySent, 0, gomock.Any()).
		Return(nil).
		Times(1)

	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	stats, err := service.DeliverAlert(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}

func TestRetryFailedDeliveries_SuccessFlipsStatus(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	incidentID := uuid.New()
	alert := &models.Alert{
		ID:              alertID,
		IncidentID:      incidentID,
		Level:           models.AlertWarning,
		DeliveryStatus:  models.DeliveryFailed,
		RecipientsCount: 2,
	}
	incident := &models.Incident{ID: incidentID, ReportCount: 3}
	user := &models.User{ID: uuid.New(), Platform: models.PlatformTelegram, PlatformID: "tg-1"}

	// Ожидания
	m.alerts.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	m.incidents.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)

	m.alerts.EXPECT().
		ListUndelivered(ctx, alertID).
		Return([]*models.AlertRecipient{
			{AlertID: alertID, UserID: user.ID},
		}, nil).
		Times(1)

	m.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)

	m.telegram.EXPECT().Send(ctx, "tg-1", gomock.Any()).Return(nil).Times(1)
	m.alerts.EXPECT().MarkDelivered(ctx, alertID, user.ID, gomock.Any()).Return(nil).Times(1)

	// Успешный повтор переводит оповещение из failed в sent
	m.alerts.EXPECT().
		SetDeliveryResult(ctx, alertID, models.DeliverySent, 2, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	retried, err := service.RetryFailedDeliveries(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, retried)
}

func TestRetryFailedDeliveries_NothingUndelivered(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	incidentID := uuid.New()
	alert := &models.Alert{
		ID:             alertID,
		IncidentID:     incidentID,
		DeliveryStatus: models.DeliverySent,
	}
	incident := &models.Incident{ID: incidentID}

	// Ожидания
	m.alerts.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	m.incidents.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)

	m.alerts.EXPECT().
		ListUndelivered(ctx, alertID).
		Return([]*models.AlertRecipient{}, nil).
		Times(1)

	m.alerts.EXPECT().SetDeliveryResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	retried, err := service.RetryFailedDeliveries(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, retried)
}

func TestMarkAlertRead_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	userID := uuid.New()

	// Ожидания
	m.alerts.EXPECT().
		MarkRead(ctx, alertID, userID, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err := service.MarkAlertRead(ctx, alertID, userID)

	// Проверки
	require.NoError(t, err)
}
