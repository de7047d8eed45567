package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomify/models"
)

// GetDetailsByID joins the reservation with its room document and the
// renter's name.
func (r *MongoReservationRepo) GetDetailsByID(ctx context.Context, id primitive.ObjectID) (*models.ReservationDetails, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
			"pipeline":     []bson.M{{"$project": bson.M{"name": 1}}},
		}},
		{"$unwind": bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}},
		{"$lookup": bson.M{
			"from":         "rooms",
			"localField":   "roomId",
			"foreignField": "_id",
			"as":           "room",
		}},
		{"$unwind": bson.M{"path": "$room", "preserveNullAndEmptyArrays": true}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reservation details: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.ReservationDetails
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding reservation details: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return &results[0], nil
}
