package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"roomify/config"
	"roomify/models"
	"roomify/services/notification"
	"roomify/services/tasks"
)

// InitNotificationWorker runs the asynq worker draining the
// notifications queue in the background.
func InitNotificationWorker(dispatcher *notification.Dispatcher) {
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
				tasks.QueueNotifications: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotificationSend, handleNotificationTask(dispatcher))

	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNotificationTask(dispatcher *notification.Dispatcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var msg models.NotificationMessage
		if err := json.Unmarshal(task.Payload(), &msg); err != nil {
			log.Printf("[NotificationWorker] invalid payload: %v", err)
			return err
		}
		return dispatcher.Dispatch(msg)
	}
}
