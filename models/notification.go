package models

// NotificationType selects the delivery channel for a queued message.
type NotificationType string

const (
	NotificationTelegram NotificationType = "telegram"
	NotificationEmail    NotificationType = "email"
)

// NotificationMessage is the opaque payload handed to the notification
// queue. To and Subject are only meaningful for the email channel.
type NotificationMessage struct {
	Type     NotificationType  `json:"type"`
	To       string            `json:"to,omitempty"`
	Subject  string            `json:"subject,omitempty"`
	Template string            `json:"template"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
