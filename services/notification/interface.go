package notification

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"roomify/models"
	"roomify/services/tasks"
)

// Service enqueues notification messages for asynchronous delivery.
// Fire-and-forget from the caller's perspective: delivery failures are
// retried and logged by the worker, never surfaced to the booking path.
type Service interface {
	Send(ctx context.Context, msg models.NotificationMessage) error
}

// QueueNotificationService is the production implementation, backed by
// the asynq notifications queue.
type QueueNotificationService struct {
	Client *asynq.Client
}

func NewQueueNotificationService(client *asynq.Client) (*QueueNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: asynq client is nil")
	}
	return &QueueNotificationService{Client: client}, nil
}

func (s *QueueNotificationService) Send(ctx context.Context, msg models.NotificationMessage) error {
	task, opts, err := tasks.NewNotificationTask(msg)
	if err != nil {
		return fmt.Errorf("failed to build notification task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}
