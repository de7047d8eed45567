package reservationRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomify/models"
)

// UpdateFields carries the mutable reservation fields for partial updates.
// Nil fields are left untouched.
type UpdateFields struct {
	RentedFrom *time.Time
	RentedTo   *time.Time
	IsCanceled *bool
}

// ReservationRepository defines data access for the reservations collection.
type ReservationRepository interface {
	// CreateIfFree atomically re-checks availability for the reservation's
	// room and period and inserts. Returns ErrPeriodTaken when an
	// overlapping non-canceled reservation exists.
	CreateIfFree(ctx context.Context, res *models.Reservation) (*models.Reservation, error)
	// GetByID retrieves a reservation by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	// GetDetailsByID retrieves a reservation joined with its room and the
	// renter's name.
	GetDetailsByID(ctx context.Context, id primitive.ObjectID) (*models.ReservationDetails, error)
	// UpdateByID applies the given fields and returns the updated document.
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields UpdateFields) (*models.Reservation, error)
	// MarkCanceled flips isCanceled on an active reservation and returns the
	// updated document. Returns ErrNotFound when no active reservation
	// matches, including when the reservation is already canceled.
	MarkCanceled(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	// DeleteByID hard-removes a reservation. Returns ErrNotFound if absent.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	// CountOverlapping counts non-canceled reservations of the room whose
	// period overlaps [from, to]. excludeID, when non-nil, leaves that
	// reservation out of the count (used by update re-validation).
	CountOverlapping(ctx context.Context, roomID primitive.ObjectID, from, to time.Time, excludeID *primitive.ObjectID) (int64, error)
	// FindForRoom returns the room's non-canceled reservations, optionally
	// narrowed by a period filter with open-ended bounds.
	FindForRoom(ctx context.Context, roomID primitive.ObjectID, period *models.ReservationPeriod) ([]models.Reservation, error)
	// FindOverlapping returns all non-canceled reservations, for any room,
	// whose period overlaps [from, to]. Feeds the statistics aggregation.
	FindOverlapping(ctx context.Context, from, to time.Time) ([]models.Reservation, error)
}
