package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation is one booking of a room for a contiguous date range.
// RentedFrom is always 00:00:00.000 UTC of the first booked day and
// RentedTo 23:59:59.999 UTC of the last one; the reservation service
// owns that normalization.
type Reservation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RoomID     primitive.ObjectID `bson:"roomId" json:"roomId"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	RentedFrom time.Time          `bson:"rentedFrom" json:"rentedFrom"`
	RentedTo   time.Time          `bson:"rentedTo" json:"rentedTo"`
	IsCanceled bool               `bson:"isCanceled" json:"isCanceled"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReservationPeriod is the optional date filter for period queries.
// Either bound may be nil for open-ended semantics.
type ReservationPeriod struct {
	RentedFrom *time.Time
	RentedTo   *time.Time
}

// ReservationDetails is a reservation joined with its room and the
// renter's name, as returned by the lookup aggregation.
type ReservationDetails struct {
	Reservation `bson:",inline"`
	Room        Room            `bson:"room" json:"room"`
	User        ReservationUser `bson:"user" json:"user"`
}

// ReservationUser is the projected renter info embedded in ReservationDetails.
type ReservationUser struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// RoomStatistic is the per-room booked-day total for a reporting
// window. Derived on demand, never persisted.
type RoomStatistic struct {
	RoomID          primitive.ObjectID `bson:"roomId" json:"roomId"`
	BookedDaysCount int                `bson:"bookedDaysCount" json:"bookedDaysCount"`
	Room            RoomSummary        `bson:"room" json:"room"`
}

// RoomSummary is the room metadata joined into statistics results.
type RoomSummary struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
	Type RoomType           `bson:"type" json:"type"`
}
