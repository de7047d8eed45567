package notification

import (
	"fmt"

	"go.uber.org/zap"

	"roomify/models"
	"roomify/utils"
)

// Dispatcher routes a dequeued message to its channel sender.
type Dispatcher struct {
	Email    *EmailSender
	Telegram *TelegramSender
}

func NewDispatcher(email *EmailSender, telegram *TelegramSender) *Dispatcher {
	return &Dispatcher{Email: email, Telegram: telegram}
}

// Dispatch delivers one message. Errors are returned so asynq can retry;
// the booking path never sees them.
func (d *Dispatcher) Dispatch(msg models.NotificationMessage) error {
	logger := utils.GetLogger()

	var err error
	switch msg.Type {
	case models.NotificationEmail:
		err = d.Email.Send(msg)
	case models.NotificationTelegram:
		if d.Telegram == nil {
			logger.Warn("dropping telegram notification, sender not configured")
			return nil
		}
		err = d.Telegram.Send(msg)
	default:
		// Unknown channel: drop instead of retrying forever.
		logger.Warn("dropping notification with unknown channel", zap.String("type", string(msg.Type)))
		return nil
	}

	if err != nil {
		logger.Error("notification delivery failed",
			zap.String("type", string(msg.Type)),
			zap.String("template", msg.Template),
			zap.Error(err))
		return fmt.Errorf("dispatch %s notification: %w", msg.Type, err)
	}
	return nil
}
