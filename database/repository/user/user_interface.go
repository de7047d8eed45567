package userRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomify/models"
)

// UserRepository defines data access for the users collection.
type UserRepository interface {
	// Create inserts a user and returns the persisted document.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByID retrieves a user by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// GetByEmail retrieves a user by email. Returns ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll lists users that are not soft-deleted.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpdateByID applies the given fields and returns the updated document.
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields UpdateFields) (*models.User, error)
	// SoftDelete flags a user deleted without removing the document.
	SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// UpdateFields carries the mutable user fields for partial updates.
// Nil fields are left untouched.
type UpdateFields struct {
	Name           *string
	Email          *string
	Phone          *string
	HashedPassword *string
}
