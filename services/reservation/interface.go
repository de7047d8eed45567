package reservation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	reservationRepo "roomify/database/repository/reservation"
	roomRepo "roomify/database/repository/room"
	userRepo "roomify/database/repository/user"
	"roomify/models"
	"roomify/services/notification"
)

// CreateReservationInput is the creation payload. Dates are calendar
// days in YYYY-MM-DD form; the service normalizes them to UTC day
// boundaries.
type CreateReservationInput struct {
	RoomID     primitive.ObjectID
	UserID     primitive.ObjectID
	RentedFrom string
	RentedTo   string
}

// UpdateReservationInput is a partial update. Nil fields are untouched.
type UpdateReservationInput struct {
	RentedFrom *string
	RentedTo   *string
	IsCanceled *bool
}

// FindReservationsInput is the optional period filter for room queries.
// Empty strings mean open-ended on that side.
type FindReservationsInput struct {
	RentedFrom string
	RentedTo   string
}

// ReservationService is the booking lifecycle plus the availability and
// statistics queries built on the overlap engine.
type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error)
	FindForRoom(ctx context.Context, roomID primitive.ObjectID, input FindReservationsInput) ([]models.Reservation, error)
	FindOneByID(ctx context.Context, id primitive.ObjectID) (*models.ReservationDetails, error)
	Update(ctx context.Context, id primitive.ObjectID, input UpdateReservationInput) (*models.Reservation, error)
	Cancel(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IsReserved(ctx context.Context, roomID primitive.ObjectID, from, to string) (bool, error)
	GetRoomsStatistics(ctx context.Context, from, to string) ([]models.RoomStatistic, error)
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Repo     reservationRepo.ReservationRepository
	RoomRepo roomRepo.RoomRepository
	UserRepo userRepo.UserRepository
	Notifier notification.Service
}
