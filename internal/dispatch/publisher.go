package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	deliveryQueueKey = "alert_delivery_jobs"
)

// DeliveryJob - задание на рассылку одного оповещения
type DeliveryJob struct {
	AlertID uuid.UUID `json:"alert_id"`
	Attempt int       `json:"attempt"`
}

// Publisher - интерфейс постановки заданий на доставку в очередь
type Publisher interface {
	Publish(ctx context.Context, job DeliveryJob) error
}

// RedisPublisher - реализация Publisher на списке Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет задание в очередь доставки
func (p *RedisPublisher) Publish(ctx context.Context, job DeliveryJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery job: %w", err)
	}

	if err := p.redisClient.LPush(ctx, deliveryQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish delivery job to Redis: %w", err)
	}
	return nil
}
