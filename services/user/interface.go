package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	userRepo "roomify/database/repository/user"
	"roomify/models"
)

var (
	// ErrNotFound is returned when a user id or email does not resolve.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on a failed sign-in.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering or switching to an
	// already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrWrongPassword is returned by UpdatePassword when the current
	// password does not verify.
	ErrWrongPassword = errors.New("current password is incorrect")
)

// RegisterUserInput is the registration payload.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// UpdateUserInput is a partial profile update. Nil fields are untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Phone *string
}

// AuthResult carries the signed token and its session id after sign-in.
type AuthResult struct {
	User      *models.User
	Token     string
	SessionID string
}

// UserService manages accounts and sign-in. FindOneByID doubles as the
// user lookup collaborator enriching notification payloads.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindOneByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, input UpdateUserInput) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, oldPassword, newPassword string) (*models.User, error)
	Remove(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
