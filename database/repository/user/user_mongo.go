package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomify/database"
	"roomify/utils"
)

// ErrNotFound is returned when no user matches the query.
var ErrNotFound = errors.New("user not found")

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a UserRepository backed by the users collection.
func NewMongoUserRepo() UserRepository {
	coll := database.MongoClient.Database(database.Name).Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("user repo: failed to create indexes: %v", err)
	}
	return repo
}

// ensureIndexes enforces email uniqueness.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(nil, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
