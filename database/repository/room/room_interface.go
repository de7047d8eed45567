package roomRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomify/models"
)

// RoomRepository defines data access for the rooms collection.
type RoomRepository interface {
	// Create inserts a room and returns the persisted document.
	Create(ctx context.Context, room *models.Room) (*models.Room, error)
	// GetByID retrieves a room by id, soft-deleted rooms included.
	// Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error)
	// GetManyByIDs retrieves the rooms with the given ids, keyed by id.
	GetManyByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Room, error)
	// GetAll lists rooms that are not soft-deleted.
	GetAll(ctx context.Context) ([]models.Room, error)
	// UpdateByID applies the update document and returns the updated room.
	UpdateByID(ctx context.Context, id primitive.ObjectID, update UpdateFields) (*models.Room, error)
	// SoftDelete flags a room deleted without removing it.
	SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.Room, error)
	// DeleteByID hard-removes a room.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// UpdateFields carries the mutable room fields for partial updates.
type UpdateFields struct {
	Name      *string
	Type      *models.RoomType
	Capacity  *int
	Amenities *[]string
	Price     *float64
}
