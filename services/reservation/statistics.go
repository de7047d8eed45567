package reservation

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"roomify/models"
	"roomify/utils"
)

const secondsPerDay = 24 * 60 * 60

// GetRoomsStatistics sums booked days per room over a reporting window.
// Every non-canceled reservation overlapping the window is clipped to
// it, widened to whole-day boundaries and counted by calendar-day
// difference; the counts are summed per room and joined with room
// metadata. Rooms without any overlapping reservation are omitted.
func (s *DefaultReservationService) GetRoomsStatistics(ctx context.Context, from, to string) ([]models.RoomStatistic, error) {
	fromDate, err := ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := ParseDate(to)
	if err != nil {
		return nil, err
	}

	dateFrom := StartOfDayUTC(fromDate)
	dateTo := EndOfDayUTC(toDate)

	reservations, err := s.Repo.FindOverlapping(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	bookedDays := make(map[primitive.ObjectID]int)
	for _, res := range reservations {
		days := clippedBookedDays(dateFrom, dateTo, res.RentedFrom, res.RentedTo)
		if days <= 0 {
			continue
		}
		bookedDays[res.RoomID] += days
	}
	if len(bookedDays) == 0 {
		return []models.RoomStatistic{}, nil
	}

	roomIDs := make([]primitive.ObjectID, 0, len(bookedDays))
	for id := range bookedDays {
		roomIDs = append(roomIDs, id)
	}

	rooms, err := s.RoomRepo.GetManyByIDs(ctx, roomIDs)
	if err != nil {
		return nil, err
	}

	stats := make([]models.RoomStatistic, 0, len(bookedDays))
	for roomID, days := range bookedDays {
		room, ok := rooms[roomID]
		if !ok {
			// Reservation pointing at a removed room document; nothing to join.
			utils.GetLogger().Warn("statistics: room document missing",
				zap.String("roomId", roomID.Hex()))
			continue
		}
		stats = append(stats, models.RoomStatistic{
			RoomID:          roomID,
			BookedDaysCount: days,
			Room:            room.Summary(),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].RoomID.Hex() < stats[j].RoomID.Hex()
	})
	return stats, nil
}

// clippedBookedDays counts the whole calendar days a reservation
// occupies inside the window. The reservation is clipped to the window,
// the clipped start truncated down to its day start and the clipped end
// up to the start of the following day, so partial days count as whole
// days. A reservation entirely outside the window yields zero.
func clippedBookedDays(windowFrom, windowTo, rentedFrom, rentedTo time.Time) int {
	if !Overlaps(windowFrom, windowTo, rentedFrom, rentedTo) {
		return 0
	}

	effectiveFrom := rentedFrom
	if windowFrom.After(effectiveFrom) {
		effectiveFrom = windowFrom
	}
	effectiveTo := rentedTo
	if windowTo.Before(effectiveTo) {
		effectiveTo = windowTo
	}

	start := StartOfDayUTC(effectiveFrom)
	end := StartOfDayUTC(effectiveTo).AddDate(0, 0, 1)

	return daysBetween(start, end)
}

// daysBetween is the calendar-day difference between two UTC day-start
// instants. Both arguments sit on UTC midnights, so the epoch-day
// subtraction is exact and immune to DST artifacts.
func daysBetween(start, end time.Time) int {
	return int(end.Unix()/secondsPerDay - start.Unix()/secondsPerDay)
}
