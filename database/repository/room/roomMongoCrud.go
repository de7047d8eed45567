package roomRepo

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

func (r *MongoRoomRepo) Create(ctx context.Context, room *models.Room) (*models.Room, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	room.CreatedAt = now
	room.UpdatedAt = now
	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}
	if room.Type == "" {
		room.Type = models.RoomTypeApartment
	}

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to insert room: %w", err)
	}
	return room, nil
}

func (r *MongoRoomRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	return &room, nil
}

func (r *MongoRoomRepo) GetManyByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Room, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}

	byID := make(map[primitive.ObjectID]models.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}
	return byID, nil
}

func (r *MongoRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"isDeleted": false},
		bson.M{"isDeleted": bson.M{"$exists": false}},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (r *MongoRoomRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, fields UpdateFields) (*models.Room, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Type != nil {
		set["type"] = *fields.Type
	}
	if fields.Capacity != nil {
		set["capacity"] = *fields.Capacity
	}
	if fields.Amenities != nil {
		set["amenities"] = *fields.Amenities
	}
	if fields.Price != nil {
		set["price"] = *fields.Price
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Room
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return &updated, nil
}

func (r *MongoRoomRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Room
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to soft-delete room: %w", err)
	}
	return &updated, nil
}

func (r *MongoRoomRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
