package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	userRepo "roomify/database/repository/user"
	"roomify/models"
)

func (s *DefaultUserService) Register(ctx context.Context, input RegisterUserInput) (*models.User, error) {
	if _, err := s.Repo.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           input.Name,
		Email:          input.Email,
		HashedPassword: string(hashed),
		Phone:          input.Phone,
		Role:           models.RoleUser,
	}
	return s.Repo.Create(ctx, user)
}

func (s *DefaultUserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultUserService) FindOneByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial profile update. Switching to an email that
// already belongs to another account is rejected before the write.
func (s *DefaultUserService) Update(ctx context.Context, id primitive.ObjectID, input UpdateUserInput) (*models.User, error) {
	if input.Email != nil {
		existing, err := s.Repo.GetByEmail(ctx, *input.Email)
		if err == nil && existing.ID != id {
			return nil, ErrEmailTaken
		}
		if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
			return nil, err
		}
	}

	updated, err := s.Repo.UpdateByID(ctx, id, userRepo.UpdateFields{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// UpdatePassword verifies the current password before storing a fresh
// bcrypt hash of the new one.
func (s *DefaultUserService) UpdatePassword(ctx context.Context, id primitive.ObjectID, oldPassword, newPassword string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(oldPassword)); err != nil {
		return nil, ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rehashed := string(hashed)

	updated, err := s.Repo.UpdateByID(ctx, id, userRepo.UpdateFields{HashedPassword: &rehashed})
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *DefaultUserService) Remove(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	removed, err := s.Repo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return removed, nil
}
