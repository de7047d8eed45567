package reservation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"roomify/models"
	"roomify/utils"
)

// Notification templates and email subjects for the reservation
// lifecycle events.
const (
	TemplateReservationCreated  = "reservation-created"
	TemplateReservationCanceled = "reservation-canceled"

	SubjectReservationCreated  = "Reservation created"
	SubjectReservationCanceled = "Reservation canceled"
)

// ReservationEvent carries the room, owner and renter details a
// lifecycle notification needs.
type ReservationEvent struct {
	ReservationID string
	RentedFrom    time.Time
	RentedTo      time.Time
	RoomID        string
	RoomName      string
	OwnerID       string
	OwnerName     string
	OwnerEmail    string
	RenterID      string
	RenterName    string
	RenterEmail   string
}

func (e ReservationEvent) metadata() map[string]string {
	return map[string]string{
		"reservationId": e.ReservationID,
		"rentedFrom":    e.RentedFrom.Format(DateLayout),
		"rentedTo":      e.RentedTo.Format(DateLayout),
		"roomId":        e.RoomID,
		"roomName":      e.RoomName,
		"ownerName":     e.OwnerName,
		"renterName":    e.RenterName,
	}
}

// notificationMessages fans one event out to the Telegram channel and to
// both the renter's and the owner's mailboxes.
func (e ReservationEvent) notificationMessages(template, subject string) []models.NotificationMessage {
	meta := e.metadata()
	return []models.NotificationMessage{
		{
			Type:     models.NotificationTelegram,
			Template: template,
			Metadata: meta,
		},
		{
			Type:     models.NotificationEmail,
			To:       e.RenterName + " <" + e.RenterEmail + ">",
			Subject:  subject,
			Template: template,
			Metadata: meta,
		},
		{
			Type:     models.NotificationEmail,
			To:       e.OwnerName + " <" + e.OwnerEmail + ">",
			Subject:  subject,
			Template: template,
			Metadata: meta,
		},
	}
}

// emit enqueues the event's messages. Notification is fire-and-forget
// relative to persistence: enqueue failures are logged and swallowed.
func (s *DefaultReservationService) emit(ctx context.Context, event ReservationEvent, template, subject string) {
	logger := utils.GetLogger()
	for _, msg := range event.notificationMessages(template, subject) {
		if err := s.Notifier.Send(ctx, msg); err != nil {
			logger.Warn("failed to enqueue reservation notification",
				zap.String("reservationId", event.ReservationID),
				zap.String("template", template),
				zap.String("channel", string(msg.Type)),
				zap.Error(err))
		}
	}
}
