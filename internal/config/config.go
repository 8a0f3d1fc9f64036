package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Verification Config
	VerificationThreshold  float64       `env:"VERIFICATION_THRESHOLD" envDefault:"0.6"`
	DuplicateRadiusKm      float64       `env:"DUPLICATE_RADIUS_KM" envDefault:"0.5"`
	DuplicateTimeWindow    time.Duration `env:"DUPLICATE_TIME_WINDOW" envDefault:"24h"`
	CommunityRadiusKm      float64       `env:"COMMUNITY_RADIUS_KM" envDefault:"5"`
	CommunityRequestsLimit int           `env:"COMMUNITY_REQUESTS_LIMIT" envDefault:"10"`
	CommunityAutoVerify    int           `env:"COMMUNITY_AUTO_VERIFY" envDefault:"3"`

	// Clustering Config
	ClusteringRadiusKm float64 `env:"CLUSTERING_RADIUS_KM" envDefault:"0.5"`

	// Weather Config (OpenWeatherMap)
	WeatherAPIKey  string        `env:"OPENWEATHER_API_KEY"`
	WeatherBaseURL string        `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5"`
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"10s"`

	// Vision Config (сервис распознавания затоплений на фото)
	VisionURL     string        `env:"VISION_URL"`
	VisionTimeout time.Duration `env:"VISION_TIMEOUT" envDefault:"10s"`

	// Bot Config
	TelegramBotToken    string        `env:"TELEGRAM_BOT_TOKEN"`
	WhatsAppToken       string        `env:"WHATSAPP_TOKEN"`
	WhatsAppPhoneID     string        `env:"WHATSAPP_PHONE_ID"`
	BotSendTimeout      time.Duration `env:"BOT_SEND_TIMEOUT" envDefault:"10s"`
	DefaultLanguageCode string        `env:"DEFAULT_LANGUAGE_CODE" envDefault:"en"`

	// Webhook Config (уведомления партнёрских организаций)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Kafka Config (поток событий пайплайна, опционально)
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"flood_pipeline_events"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		VerificationThreshold:  getEnvAsFloat("VERIFICATION_THRESHOLD", 0.6),
		DuplicateRadiusKm:      getEnvAsFloat("DUPLICATE_RADIUS_KM", 0.5),
		DuplicateTimeWindow:    getEnvAsDuration("DUPLICATE_TIME_WINDOW", 24*time.Hour),
		CommunityRadiusKm:      getEnvAsFloat("COMMUNITY_RADIUS_KM", 5),
		CommunityRequestsLimit: getEnvAsInt("COMMUNITY_REQUESTS_LIMIT", 10),
		CommunityAutoVerify:    getEnvAsInt("COMMUNITY_AUTO_VERIFY", 3),
		ClusteringRadiusKm:     getEnvAsFloat("CLUSTERING_RADIUS_KM", 0.5),
		WeatherAPIKey:          os.Getenv("OPENWEATHER_API_KEY"),
		WeatherBaseURL:         getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherTimeout:         getEnvAsDuration("WEATHER_TIMEOUT", 10*time.Second),
		VisionURL:              os.Getenv("VISION_URL"),
		VisionTimeout:          getEnvAsDuration("VISION_TIMEOUT", 10*time.Second),
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		WhatsAppToken:          os.Getenv("WHATSAPP_TOKEN"),
		WhatsAppPhoneID:        os.Getenv("WHATSAPP_PHONE_ID"),
		BotSendTimeout:         getEnvAsDuration("BOT_SEND_TIMEOUT", 10*time.Second),
		DefaultLanguageCode:    getEnv("DEFAULT_LANGUAGE_CODE", "en"),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		KafkaTopic:             getEnv("KAFKA_TOPIC", "flood_pipeline_events"),
	}

	// Загрузка списковых переменных
	cfg.APIKeys = getEnvAsSlice("API_KEYS")
	cfg.KafkaBrokers = getEnvAsSlice("KAFKA_BROKERS")

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsSlice разбирает переменную окружения как список значений через запятую
func getEnvAsSlice(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
