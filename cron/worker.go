package cron

import (
	"context"
	"log"
	"time"

	"profitpilot/config"
	"profitpilot/services/inbox"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeInboxPoll = "inbox:poll"

// InitInboxWorker runs the inbox poller in the background. The poll task
// is scheduled at the configured interval and drains unseen booking
// emails through the processor.
func InitInboxWorker(processor *inbox.Processor) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeInboxPoll, handleInboxPoll(processor))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(
		"@every "+config.AppConfig.PollInterval,
		asynq.NewTask(TypeInboxPoll, nil),
		asynq.Queue("default"),
	); err != nil {
		log.Fatalf("[InboxWorker] Failed to register poll schedule: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[InboxWorker] Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[InboxWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[InboxWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[InboxWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleInboxPoll(processor *inbox.Processor) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := processor.Poll(ctx)
		if err != nil {
			log.Printf("[InboxPoll] Poll failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[InboxPoll] Processed %d message(s)", n)
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
			log.Printf("[InboxWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
