package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestUserService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestUserService(t *testing.T) (*userService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultLanguageCode: "en",
	}

	service := NewUserService(usersMock, cfg, logger)
	return service.(*userService), usersMock
}

func TestRegisterUser_NewUser(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{
		Platform:   models.PlatformTelegram,
		PlatformID: "tg-42",
	}

	// Ожидания
	usersMock.EXPECT().
		GetByPlatformID(ctx, models.PlatformTelegram, "tg-42").
		Return(nil, fmt.Errorf("user tg-42 not found")).
		Times(1)

	usersMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			// Язык и радиус подставляются по умолчанию
			assert.Equal(t, "en", u.LanguageCode)
			assert.Equal(t, defaultAlertRadiusKm, u.AlertRadiusKm)
			return nil
		}).
		Times(1)

	// Действие
	created, err := service.RegisterUser(ctx, user)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "en", created.LanguageCode)
}

func TestRegisterUser_ExistingUserReturned(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	existing := &models.User{
		ID:         uuid.New(),
		Platform:   models.PlatformWhatsApp,
		PlatformID: "wa-7",
	}
	user := &models.User{
		Platform:   models.PlatformWhatsApp,
		PlatformID: "wa-7",
	}

	// Ожидания
	usersMock.EXPECT().
		GetByPlatformID(ctx, models.PlatformWhatsApp, "wa-7").
		Return(existing, nil).
		Times(1)

	// Повторная регистрация не создает дубликат
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.RegisterUser(ctx, user)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, existing, result)
}

func TestUpdateLocation_Success(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	usersMock.EXPECT().
		UpdateLocation(ctx, userID, -6.8, 39.28).
		Return(nil).
		Times(1)

	// Действие
	err := service.UpdateLocation(ctx, userID, -6.8, 39.28)

	// Проверки
	require.NoError(t, err)
}

func TestSetAlertSubscription_Unsubscribe(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	usersMock.EXPECT().
		SetAlertSubscription(ctx, userID, false).
		Return(nil).
		Times(1)

	// Действие
	err := service.SetAlertSubscription(ctx, userID, false)

	// Проверки
	require.NoError(t, err)
}
