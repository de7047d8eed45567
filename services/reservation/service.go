package reservation

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	reservationRepo "roomify/database/repository/reservation"
	roomRepo "roomify/database/repository/room"
	userRepo "roomify/database/repository/user"
	"roomify/models"
	"roomify/utils"
)

// Create books a room for the requested period: resolve the room, check
// the renter exists, normalize the dates, verify availability and
// persist. The availability re-check and the insert run atomically in
// the repository. A created event fans out to the notification queue
// after the write commits.
func (s *DefaultReservationService) Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	room, err := s.RoomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	renter, err := s.UserRepo.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	from, err := ParseDate(input.RentedFrom)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(input.RentedTo)
	if err != nil {
		return nil, err
	}

	res := &models.Reservation{
		RoomID:     room.ID,
		UserID:     renter.ID,
		RentedFrom: StartOfDayUTC(from),
		RentedTo:   EndOfDayUTC(to),
		IsCanceled: false,
	}

	created, err := s.Repo.CreateIfFree(ctx, res)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrPeriodTaken) {
			return nil, ErrPeriodConflict
		}
		return nil, err
	}

	s.emit(ctx, s.buildEvent(ctx, created, room, renter), TemplateReservationCreated, SubjectReservationCreated)

	return created, nil
}

// FindForRoom returns the room's non-canceled reservations intersecting
// the optional query period.
func (s *DefaultReservationService) FindForRoom(ctx context.Context, roomID primitive.ObjectID, input FindReservationsInput) ([]models.Reservation, error) {
	period, err := normalizePeriod(input.RentedFrom, input.RentedTo)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindForRoom(ctx, roomID, &period)
}

// FindOneByID returns the reservation joined with its room and the
// renter's name.
func (s *DefaultReservationService) FindOneByID(ctx context.Context, id primitive.ObjectID) (*models.ReservationDetails, error) {
	details, err := s.Repo.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return details, nil
}

// Update applies a partial update, re-normalizing any supplied date.
// When a date changes, availability is re-checked with the reservation
// itself excluded, so a patched range cannot silently create an overlap.
func (s *DefaultReservationService) Update(ctx context.Context, id primitive.ObjectID, input UpdateReservationInput) (*models.Reservation, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	fields := reservationRepo.UpdateFields{IsCanceled: input.IsCanceled}
	if input.RentedFrom != nil {
		d, err := ParseDate(*input.RentedFrom)
		if err != nil {
			return nil, err
		}
		from := StartOfDayUTC(d)
		fields.RentedFrom = &from
	}
	if input.RentedTo != nil {
		d, err := ParseDate(*input.RentedTo)
		if err != nil {
			return nil, err
		}
		to := EndOfDayUTC(d)
		fields.RentedTo = &to
	}

	if fields.RentedFrom != nil || fields.RentedTo != nil {
		effFrom := current.RentedFrom
		if fields.RentedFrom != nil {
			effFrom = *fields.RentedFrom
		}
		effTo := current.RentedTo
		if fields.RentedTo != nil {
			effTo = *fields.RentedTo
		}

		count, err := s.Repo.CountOverlapping(ctx, current.RoomID, effFrom, effTo, &id)
		if err != nil {
			return nil, err
		}
		if count != 0 {
			return nil, ErrPeriodConflict
		}
	}

	updated, err := s.Repo.UpdateByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Cancel flips a reservation to canceled and emits the canceled event.
// Canceling an already-canceled reservation is a no-op that returns the
// current document without re-emitting the event.
func (s *DefaultReservationService) Cancel(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	canceled, err := s.Repo.MarkCanceled(ctx, id)
	if err != nil {
		if !errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, err
		}
		// No active reservation matched: distinguish "already canceled"
		// from "does not exist".
		existing, getErr := s.Repo.GetByID(ctx, id)
		if getErr != nil {
			if errors.Is(getErr, reservationRepo.ErrNotFound) {
				return nil, ErrReservationNotFound
			}
			return nil, getErr
		}
		return existing, nil
	}

	s.emit(ctx, s.buildEventFromReservation(ctx, canceled), TemplateReservationCanceled, SubjectReservationCanceled)

	return canceled, nil
}

// Delete hard-removes a reservation. Administrative path, no notification.
func (s *DefaultReservationService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, reservationRepo.ErrNotFound) {
		return ErrReservationNotFound
	}
	return err
}

// IsReserved reports whether the room already has a non-canceled
// reservation overlapping the period. from/to are calendar dates;
// normalization to UTC day boundaries happens here.
func (s *DefaultReservationService) IsReserved(ctx context.Context, roomID primitive.ObjectID, from, to string) (bool, error) {
	dateFrom, err := ParseDate(from)
	if err != nil {
		return false, err
	}
	dateTo, err := ParseDate(to)
	if err != nil {
		return false, err
	}

	count, err := s.Repo.CountOverlapping(ctx, roomID, StartOfDayUTC(dateFrom), EndOfDayUTC(dateTo), nil)
	if err != nil {
		return false, err
	}
	return count != 0, nil
}

// buildEvent assembles the notification payload for a reservation whose
// room and renter are already loaded. The owner lookup can fail without
// failing the booking; missing fields just leave blanks in the message.
func (s *DefaultReservationService) buildEvent(ctx context.Context, res *models.Reservation, room *models.Room, renter *models.User) ReservationEvent {
	event := ReservationEvent{
		ReservationID: res.ID.Hex(),
		RentedFrom:    res.RentedFrom,
		RentedTo:      res.RentedTo,
		RoomID:        room.ID.Hex(),
		RoomName:      room.Name,
		RenterID:      renter.ID.Hex(),
		RenterName:    renter.Name,
		RenterEmail:   renter.Email,
	}

	owner, err := s.UserRepo.GetByID(ctx, room.UserID)
	if err != nil {
		utils.GetLogger().Warn("failed to resolve room owner for notification",
			zap.String("roomId", room.ID.Hex()), zap.Error(err))
		return event
	}
	event.OwnerID = owner.ID.Hex()
	event.OwnerName = owner.Name
	event.OwnerEmail = owner.Email
	return event
}

// buildEventFromReservation resolves room and renter before assembling
// the payload. Used by Cancel, where only the reservation is at hand.
func (s *DefaultReservationService) buildEventFromReservation(ctx context.Context, res *models.Reservation) ReservationEvent {
	logger := utils.GetLogger()

	event := ReservationEvent{
		ReservationID: res.ID.Hex(),
		RentedFrom:    res.RentedFrom,
		RentedTo:      res.RentedTo,
		RoomID:        res.RoomID.Hex(),
	}

	room, err := s.RoomRepo.GetByID(ctx, res.RoomID)
	if err != nil {
		logger.Warn("failed to resolve room for notification",
			zap.String("reservationId", res.ID.Hex()), zap.Error(err))
		return event
	}
	event.RoomName = room.Name

	renter, err := s.UserRepo.GetByID(ctx, res.UserID)
	if err == nil {
		event.RenterID = renter.ID.Hex()
		event.RenterName = renter.Name
		event.RenterEmail = renter.Email
	} else {
		logger.Warn("failed to resolve renter for notification",
			zap.String("reservationId", res.ID.Hex()), zap.Error(err))
	}

	owner, err := s.UserRepo.GetByID(ctx, room.UserID)
	if err == nil {
		event.OwnerID = owner.ID.Hex()
		event.OwnerName = owner.Name
		event.OwnerEmail = owner.Email
	} else {
		logger.Warn("failed to resolve room owner for notification",
			zap.String("reservationId", res.ID.Hex()), zap.Error(err))
	}

	return event
}
