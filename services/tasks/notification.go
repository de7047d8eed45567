package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"roomify/models"
)

const (
	// TypeNotificationSend is the asynq task type for queued notifications.
	TypeNotificationSend = "notification:send"
	// QueueNotifications is the dedicated asynq queue name.
	QueueNotifications = "notifications"
)

// NewNotificationTask wraps a notification message into an asynq task
// targeting the notifications queue.
func NewNotificationTask(msg models.NotificationMessage) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotificationSend, b)
	opts := []asynq.Option{asynq.Queue(QueueNotifications), asynq.MaxRetry(5)}

	return task, opts, nil
}
