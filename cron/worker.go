package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"dispatchly/config"
	"dispatchly/models"
	"dispatchly/services/notification"
	"dispatchly/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitQuoteDeliveryWorker runs the async quote-delivery worker in background.
func InitQuoteDeliveryWorker(deliverySvc notification.QuoteDeliveryService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeQuoteDeliver, handleQuoteDeliveryTask(deliverySvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[QuoteWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[QuoteWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[QuoteWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleQuoteDeliveryTask(deliverySvc notification.QuoteDeliveryService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.QuoteDeliveryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[QuoteWorker] invalid payload: %v", err)
			return err
		}

		log.Printf("[QuoteWorker] delivering quote %s via %s", p.QuoteID, p.Method)

		if err := deliverySvc.DeliverQuote(ctx, p.QuoteID, p.Method); err != nil {
			log.Printf("[QuoteWorker] delivery failed for quote %s: %v", p.QuoteID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[QuoteWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
