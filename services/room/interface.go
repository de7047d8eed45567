package room

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"

	roomRepo "roomify/database/repository/room"
	"roomify/models"
)

// ErrNotFound is returned when a room id does not resolve.
var ErrNotFound = errors.New("room not found")

// CreateRoomInput is the creation payload.
type CreateRoomInput struct {
	Name      string
	Type      models.RoomType
	Capacity  int
	Amenities []string
	Price     float64
	UserID    primitive.ObjectID
}

// UpdateRoomInput is a partial update. Nil fields are untouched.
type UpdateRoomInput struct {
	Name      *string
	Type      *models.RoomType
	Capacity  *int
	Amenities *[]string
	Price     *float64
}

// RoomService manages bookable rooms. FindOneByID doubles as the room
// lookup collaborator the booking lifecycle depends on.
type RoomService interface {
	Create(ctx context.Context, input CreateRoomInput) (*models.Room, error)
	FindAll(ctx context.Context) ([]models.Room, error)
	FindOneByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error)
	Update(ctx context.Context, id primitive.ObjectID, input UpdateRoomInput) (*models.Room, error)
	SoftRemove(ctx context.Context, id primitive.ObjectID) (*models.Room, error)
	Remove(ctx context.Context, id primitive.ObjectID) error
}

// DefaultRoomService is the production implementation. Cache, when set,
// backs the room listing with a short-lived Redis entry; a nil Cache
// reads straight through to the repository.
type DefaultRoomService struct {
	Repo  roomRepo.RoomRepository
	Cache *redis.Client
}
