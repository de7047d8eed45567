package reservationRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"roomify/database"
	"roomify/utils"
)

var (
	// ErrNotFound is returned when no reservation matches the query.
	ErrNotFound = errors.New("reservation not found")
	// ErrPeriodTaken is returned by CreateIfFree when the availability
	// re-check inside the write path finds an overlapping reservation.
	ErrPeriodTaken = errors.New("reservation period already taken")
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a ReservationRepository backed by the
// reservations collection.
func NewMongoReservationRepo() ReservationRepository {
	coll := database.MongoClient.Database(database.Name).Collection("reservations")
	repo := &MongoReservationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("reservation repo: failed to create indexes: %v", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
