package roomRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"roomify/database"
)

// ErrNotFound is returned when no room matches the query.
var ErrNotFound = errors.New("room not found")

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a RoomRepository backed by the rooms collection.
func NewMongoRoomRepo() RoomRepository {
	coll := database.MongoClient.Database(database.Name).Collection("rooms")
	return &MongoRoomRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
