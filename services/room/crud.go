package room

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	roomRepo "roomify/database/repository/room"
	"roomify/models"
)

func (s *DefaultRoomService) Create(ctx context.Context, input CreateRoomInput) (*models.Room, error) {
	room := &models.Room{
		Name:      input.Name,
		Type:      input.Type,
		Capacity:  input.Capacity,
		Amenities: input.Amenities,
		Price:     input.Price,
		UserID:    input.UserID,
	}
	created, err := s.Repo.Create(ctx, room)
	if err != nil {
		return nil, err
	}
	s.invalidateRoomList(ctx)
	return created, nil
}

func (s *DefaultRoomService) FindAll(ctx context.Context) ([]models.Room, error) {
	if s.Cache != nil {
		if rooms, err := s.cachedRoomList(ctx); err == nil {
			return rooms, nil
		}
	}
	rooms, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.storeRoomList(ctx, rooms)
	}
	return rooms, nil
}

func (s *DefaultRoomService) FindOneByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	room, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *DefaultRoomService) Update(ctx context.Context, id primitive.ObjectID, input UpdateRoomInput) (*models.Room, error) {
	updated, err := s.Repo.UpdateByID(ctx, id, roomRepo.UpdateFields{
		Name:      input.Name,
		Type:      input.Type,
		Capacity:  input.Capacity,
		Amenities: input.Amenities,
		Price:     input.Price,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.invalidateRoomList(ctx)
	return updated, nil
}

func (s *DefaultRoomService) SoftRemove(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	removed, err := s.Repo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.invalidateRoomList(ctx)
	return removed, nil
}

func (s *DefaultRoomService) Remove(ctx context.Context, id primitive.ObjectID) error {
	err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, roomRepo.ErrNotFound) {
		return ErrNotFound
	}
	if err == nil {
		s.invalidateRoomList(ctx)
	}
	return err
}
