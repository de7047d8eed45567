package userRepo

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

func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email %s already registered: %w", user.Email, err)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"isDeleted": false},
		bson.M{"isDeleted": bson.M{"$exists": false}},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, fields UpdateFields) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Email != nil {
		set["email"] = *fields.Email
	}
	if fields.Phone != nil {
		set["phone"] = *fields.Phone
	}
	if fields.HashedPassword != nil {
		set["hashedPassword"] = *fields.HashedPassword
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email already registered: %w", err)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &updated, nil
}

func (r *MongoUserRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to soft-delete user: %w", err)
	}
	return &updated, nil
}
