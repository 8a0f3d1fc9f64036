package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/flood_watch_system/internal/bots"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/shenikar/flood_watch_system/internal/dispatch"
	"github.com/shenikar/flood_watch_system/internal/events"
	v1 "github.com/shenikar/flood_watch_system/internal/handler/http/v1"
	"github.com/shenikar/flood_watch_system/internal/integrations/vision"
	"github.com/shenikar/flood_watch_system/internal/integrations/weather"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/observability"
	"github.com/shenikar/flood_watch_system/internal/repository"
	"github.com/shenikar/flood_watch_system/internal/service"
	"github.com/shenikar/flood_watch_system/internal/webhook"
	"github.com/shenikar/flood_watch_system/pkg/logger"
	"github.com/shenikar/flood_watch_system/pkg/postgres"
	redisclient "github.com/shenikar/flood_watch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/flood_watch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Flood Watch System API
// @version 1.0
// @description Community flood reporting, verification and alerting API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики и часы
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Издатель событий пайплайна: без брокеров события не публикуются
	var eventPublisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg, log)
		defer kafkaPublisher.Close()
		eventPublisher = kafkaPublisher
		log.Info("Kafka event publisher initialized")
	}

	// Каналы доставки сообщений
	channels := bots.Registry{}
	if cfg.TelegramBotToken != "" {
		channels[models.PlatformTelegram] = bots.NewTelegramChannel(cfg, log)
	}
	if cfg.WhatsAppToken != "" {
		channels[models.PlatformWhatsApp] = bots.NewWhatsAppChannel(cfg, log)
	}

	// Внешние интеграции
	weatherClient := weather.NewClient(cfg, log)
	visionClient := vision.NewClient(cfg, log)

	// Инициализация издателя вебхуков и воркера
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg, metrics)
	webhookWorker.Start(ctx)

	// Очередь доставки оповещений
	dispatchPublisher := dispatch.NewRedisPublisher(redisClient)

	// Инициализация репозиториев
	reportRepo := repository.NewReportRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	alertRepo := repository.NewAlertRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)
	verificationRepo := repository.NewVerificationRepository(dbpool)

	// Инициализация сервисов
	verificationService := service.NewVerificationService(
		reportRepo, userRepo, verificationRepo,
		visionClient, weatherClient, channels,
		eventPublisher, cfg, metrics, clock, log,
	)
	incidentService := service.NewIncidentService(
		incidentRepo, reportRepo, webhookPublisher,
		eventPublisher, cfg, metrics, clock, log,
	)
	alertService := service.NewAlertService(
		alertRepo, incidentRepo, userRepo, channels,
		dispatchPublisher, eventPublisher, cfg, metrics, clock, log,
	)
	reportService := service.NewReportService(
		reportRepo, userRepo, verificationRepo,
		verificationService, incidentService, alertService,
		cfg, metrics, clock, log,
	)
	userService := service.NewUserService(userRepo, cfg, log)

	// Воркер рассылки оповещений
	dispatchWorker := dispatch.NewWorker(redisClient, alertService, log, cfg)
	dispatchWorker.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, verificationService, incidentService, alertService, userService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
