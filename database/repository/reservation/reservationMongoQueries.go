package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomify/models"
)

// overlapFilter is the three-clause disjunction matching stored periods
// that share at least one instant with [from, to]: either bound of the
// stored interval falls inside the candidate, or the stored interval
// fully spans it. Must stay equivalent to reservation.Overlaps.
func overlapFilter(from, to time.Time) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"rentedFrom": bson.M{"$gte": from, "$lte": to}},
			bson.M{"rentedTo": bson.M{"$gte": from, "$lte": to}},
			bson.M{"rentedFrom": bson.M{"$lt": from}, "rentedTo": bson.M{"$gt": to}},
		},
	}
}

// periodFilter narrows a room query by an optional period. With both
// bounds present it is the full overlap filter; with a single bound the
// match is open-ended on the other side.
func periodFilter(period *models.ReservationPeriod) bson.M {
	switch {
	case period == nil:
		return nil
	case period.RentedFrom != nil && period.RentedTo != nil:
		return overlapFilter(*period.RentedFrom, *period.RentedTo)
	case period.RentedFrom != nil:
		return bson.M{"$or": bson.A{
			bson.M{"rentedFrom": bson.M{"$gte": *period.RentedFrom}},
			bson.M{"rentedTo": bson.M{"$gte": *period.RentedFrom}},
		}}
	case period.RentedTo != nil:
		return bson.M{"$or": bson.A{
			bson.M{"rentedFrom": bson.M{"$lte": *period.RentedTo}},
			bson.M{"rentedTo": bson.M{"$lte": *period.RentedTo}},
		}}
	default:
		return nil
	}
}

func (r *MongoReservationRepo) CountOverlapping(
	ctx context.Context,
	roomID primitive.ObjectID,
	from, to time.Time,
	excludeID *primitive.ObjectID,
) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"roomId":     roomID,
		"isCanceled": false,
	}
	for k, v := range overlapFilter(from, to) {
		filter[k] = v
	}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping reservations: %w", err)
	}
	return count, nil
}

func (r *MongoReservationRepo) FindForRoom(
	ctx context.Context,
	roomID primitive.ObjectID,
	period *models.ReservationPeriod,
) ([]models.Reservation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"roomId":     roomID,
		"isCanceled": false,
	}
	if pf := periodFilter(period); pf != nil {
		for k, v := range pf {
			filter[k] = v
		}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (r *MongoReservationRepo) FindOverlapping(
	ctx context.Context,
	from, to time.Time,
) ([]models.Reservation, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"isCanceled": false}
	for k, v := range overlapFilter(from, to) {
		filter[k] = v
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overlapping reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}
