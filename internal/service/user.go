package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Радиус подписки на оповещения по умолчанию, км
const defaultAlertRadiusKm = 5

// UserService - регистрация пользователей ботов и управление подпиской
type UserService interface {
	RegisterUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) error
	SetAlertSubscription(ctx context.Context, id uuid.UUID, subscribed bool) error
}

type userService struct {
	users  UserRepository
	cfg    *config.Config
	logger *logrus.Logger
}

func NewUserService(users UserRepository, cfg *config.Config, logger *logrus.Logger) UserService {
	return &userService{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterUser создает пользователя либо возвращает существующего
// с той же платформой и platform_id.
func (s *userService) RegisterUser(ctx context.Context, user *models.User) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "RegisterUser",
		"platform": user.Platform,
	})

	existing, err := s.users.GetByPlatformID(ctx, user.Platform, user.PlatformID)
	if err == nil && existing != nil {
		return existing, nil
	}

	if user.LanguageCode == "" {
		user.LanguageCode = s.cfg.DefaultLanguageCode
	}
	if user.AlertRadiusKm <= 0 {
		user.AlertRadiusKm = defaultAlertRadiusKm
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("service: failed to create user: %w", err)
	}
	log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) error {
	if err := s.users.UpdateLocation(ctx, id, lat, lon); err != nil {
		return fmt.Errorf("service: failed to update user location: %w", err)
	}
	return nil
}

func (s *userService) SetAlertSubscription(ctx context.Context, id uuid.UUID, subscribed bool) error {
	if err := s.users.SetAlertSubscription(ctx, id, subscribed); err != nil {
		return fmt.Errorf("service: failed to update alert subscription: %w", err)
	}
	return nil
}
