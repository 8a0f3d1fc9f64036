package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const maxDeliveryAttempts = 3

// AlertDeliverer - часть сервиса оповещений, нужная воркеру доставки
type AlertDeliverer interface {
	DeliverAlert(ctx context.Context, alertID uuid.UUID) (*models.DeliveryStats, error)
}

// Worker забирает задания из очереди и запускает рассылку оповещений.
// Рассылка выполняется вне HTTP-запроса, который её инициировал.
type Worker struct {
	redisClient *redis.Client
	deliverer   AlertDeliverer
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewWorker(redisClient *redis.Client, deliverer AlertDeliverer, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		deliverer:   deliverer,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start запускает горутину обработки очереди доставки
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting alert dispatch worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert dispatch worker.")
				return
			default:
				result, err := w.redisClient.BRPop(ctx, 0, deliveryQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop delivery job from Redis")
					time.Sleep(time.Second)
					continue
				}

				var job DeliveryJob
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal delivery job from Redis")
					continue
				}

				w.processJob(ctx, job)
			}
		}
	}()
}

func (w *Worker) processJob(ctx context.Context, job DeliveryJob) {
	log := w.logger.WithFields(logrus.Fields{
		"alert_id": job.AlertID,
		"attempt":  job.Attempt,
	})
	log.Info("Delivering alert")

	stats, err := w.deliverer.DeliverAlert(ctx, job.AlertID)
	if err != nil {
		// Ошибка уровня задания (оповещение не найдено, бд недоступна),
		// частичные неудачи доставки сюда не попадают
		log.WithError(err).Error("Alert delivery failed")
		if job.Attempt+1 < maxDeliveryAttempts {
			w.requeue(ctx, DeliveryJob{AlertID: job.AlertID, Attempt: job.Attempt + 1})
		} else {
			log.Errorf("Giving up on alert delivery after %d attempts", maxDeliveryAttempts)
		}
		return
	}

	log.WithFields(logrus.Fields{
		"total":     stats.Total,
		"delivered": stats.Delivered,
		"failed":    stats.Failed,
	}).Info("Alert delivery completed")
}

func (w *Worker) requeue(ctx context.Context, job DeliveryJob) {
	payload, err := json.Marshal(job)
	if err != nil {
		w.logger.WithError(err).Error("Failed to marshal delivery job for requeue")
		return
	}
	if err := w.redisClient.LPush(ctx, deliveryQueueKey, payload).Err(); err != nil {
		w.logger.WithError(err).Error("Failed to requeue delivery job")
	}
}
