package reservation

import "errors"

var (
	// ErrRoomNotFound is returned when the referenced room document does
	// not exist. Soft-deleted rooms still resolve.
	ErrRoomNotFound = errors.New("room not found")

	// ErrReservationNotFound is returned when a reservation id does not resolve.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrUserNotFound is returned when the renter does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrPeriodConflict is returned when the requested period overlaps an
	// existing non-canceled reservation for the room.
	ErrPeriodConflict = errors.New("room is already reserved for this period")

	// ErrInvalidDate wraps date parse failures so the HTTP layer can map
	// them to a client error.
	ErrInvalidDate = errors.New("invalid date")
)
