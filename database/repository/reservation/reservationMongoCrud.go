package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomify/models"
)

// insert is the write shared by the transactional create and its
// standalone fallback.
func (r *MongoReservationRepo) insert(ctx context.Context, res *models.Reservation) (*models.Reservation, error) {
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	if res.ID.IsZero() {
		res.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}
	return res, nil
}

func (r *MongoReservationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}

func (r *MongoReservationRepo) UpdateByID(
	ctx context.Context,
	id primitive.ObjectID,
	fields UpdateFields,
) (*models.Reservation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if fields.RentedFrom != nil {
		set["rentedFrom"] = *fields.RentedFrom
	}
	if fields.RentedTo != nil {
		set["rentedTo"] = *fields.RentedTo
	}
	if fields.IsCanceled != nil {
		set["isCanceled"] = *fields.IsCanceled
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}
	return &updated, nil
}

// MarkCanceled only matches active reservations so the Active->Canceled
// transition happens at most once per document.
func (r *MongoReservationRepo) MarkCanceled(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": id, "isCanceled": false}
	update := bson.M{"$set": bson.M{"isCanceled": true, "updatedAt": time.Now().UTC()}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}
	return &updated, nil
}

func (r *MongoReservationRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
