package notification

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"roomify/config"
	"roomify/models"
)

// TelegramSender delivers notifications to the configured chat.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramSender() (*TelegramSender, error) {
	cfg := config.AppConfig
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot, chatID: cfg.TelegramChatID}, nil
}

func (s *TelegramSender) Send(msg models.NotificationMessage) error {
	body, err := renderTemplate(msg.Template, msg.Metadata)
	if err != nil {
		return err
	}

	m := tgbotapi.NewMessage(s.chatID, body)
	m.DisableWebPagePreview = true

	if _, err := s.bot.Send(m); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
