package reservationRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ensureIndexes creates the compound index backing the overlap queries.
func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(nil, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "roomId", Value: 1},
			{Key: "isCanceled", Value: 1},
			{Key: "rentedFrom", Value: 1},
			{Key: "rentedTo", Value: 1},
		}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
