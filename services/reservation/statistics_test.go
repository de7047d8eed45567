package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomify/models"
)

func TestClippedBookedDays(t *testing.T) {
	windowFrom := StartOfDayUTC(day("2023-04-01"))
	windowTo := EndOfDayUTC(day("2023-04-30"))

	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"single day", StartOfDayUTC(day("2023-04-10")), EndOfDayUTC(day("2023-04-10")), 1},
		{"three days inside", StartOfDayUTC(day("2023-04-10")), EndOfDayUTC(day("2023-04-12")), 3},
		{"clipped at window start", StartOfDayUTC(day("2023-03-30")), EndOfDayUTC(day("2023-04-01")), 1},
		{"clipped at window end", StartOfDayUTC(day("2023-04-29")), EndOfDayUTC(day("2023-05-10")), 2},
		{"covers whole window", StartOfDayUTC(day("2023-03-01")), EndOfDayUTC(day("2023-05-31")), 30},
		{"entirely before", StartOfDayUTC(day("2023-03-01")), EndOfDayUTC(day("2023-03-31")), 0},
		{"entirely after", StartOfDayUTC(day("2023-05-01")), EndOfDayUTC(day("2023-05-05")), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clippedBookedDays(windowFrom, windowTo, tc.from, tc.to))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, daysBetween(StartOfDayUTC(day("2023-04-10")), StartOfDayUTC(day("2023-04-11"))))
	assert.Equal(t, 31, daysBetween(StartOfDayUTC(day("2023-03-01")), StartOfDayUTC(day("2023-04-01"))))
	assert.Equal(t, 0, daysBetween(StartOfDayUTC(day("2023-04-10")), StartOfDayUTC(day("2023-04-10"))))
}

func TestGetRoomsStatistics(t *testing.T) {
	f := newServiceFixture()
	roomA := models.Room{ID: primitive.NewObjectID(), Name: "Loft", Type: models.RoomTypeApartment}
	roomB := models.Room{ID: primitive.NewObjectID(), Name: "Studio", Type: models.RoomTypeRoom}

	windowFrom := StartOfDayUTC(day("2023-04-01"))
	windowTo := EndOfDayUTC(day("2023-04-30"))

	reservations := []models.Reservation{
		// Two bookings of room A inside the window: 3 + 2 days.
		{RoomID: roomA.ID, RentedFrom: StartOfDayUTC(day("2023-04-10")), RentedTo: EndOfDayUTC(day("2023-04-12"))},
		{RoomID: roomA.ID, RentedFrom: StartOfDayUTC(day("2023-04-20")), RentedTo: EndOfDayUTC(day("2023-04-21"))},
		// Room B booking straddling the window start: only April 1 counts.
		{RoomID: roomB.ID, RentedFrom: StartOfDayUTC(day("2023-03-28")), RentedTo: EndOfDayUTC(day("2023-04-01"))},
	}

	f.repo.On("FindOverlapping", mock.Anything, windowFrom, windowTo).Return(reservations, nil)
	f.rooms.On("GetManyByIDs", mock.Anything, mock.MatchedBy(func(ids []primitive.ObjectID) bool {
		return len(ids) == 2
	})).Return(map[primitive.ObjectID]models.Room{roomA.ID: roomA, roomB.ID: roomB}, nil)

	stats, err := f.svc.GetRoomsStatistics(context.Background(), "2023-04-01", "2023-04-30")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byRoom := make(map[primitive.ObjectID]models.RoomStatistic, len(stats))
	for _, st := range stats {
		byRoom[st.RoomID] = st
	}
	assert.Equal(t, 5, byRoom[roomA.ID].BookedDaysCount)
	assert.Equal(t, "Loft", byRoom[roomA.ID].Room.Name)
	assert.Equal(t, 1, byRoom[roomB.ID].BookedDaysCount)
	assert.Equal(t, models.RoomTypeRoom, byRoom[roomB.ID].Room.Type)
}

func TestGetRoomsStatistics_NoOverlaps(t *testing.T) {
	f := newServiceFixture()
	f.repo.On("FindOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Reservation{}, nil)

	stats, err := f.svc.GetRoomsStatistics(context.Background(), "2023-04-01", "2023-04-30")
	require.NoError(t, err)
	assert.Empty(t, stats)
	f.rooms.AssertNotCalled(t, "GetManyByIDs", mock.Anything, mock.Anything)
}

func TestGetRoomsStatistics_SkipsMissingRoomDocuments(t *testing.T) {
	f := newServiceFixture()
	known := models.Room{ID: primitive.NewObjectID(), Name: "Loft", Type: models.RoomTypeApartment}
	orphan := primitive.NewObjectID()

	f.repo.On("FindOverlapping", mock.Anything, mock.Anything, mock.Anything).Return([]models.Reservation{
		{RoomID: known.ID, RentedFrom: StartOfDayUTC(day("2023-04-10")), RentedTo: EndOfDayUTC(day("2023-04-10"))},
		{RoomID: orphan, RentedFrom: StartOfDayUTC(day("2023-04-11")), RentedTo: EndOfDayUTC(day("2023-04-11"))},
	}, nil)
	f.rooms.On("GetManyByIDs", mock.Anything, mock.Anything).
		Return(map[primitive.ObjectID]models.Room{known.ID: known}, nil)

	stats, err := f.svc.GetRoomsStatistics(context.Background(), "2023-04-01", "2023-04-30")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, known.ID, stats[0].RoomID)
}

func TestGetRoomsStatistics_InvalidDates(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.GetRoomsStatistics(context.Background(), "April 1st", "2023-04-30")
	assert.ErrorIs(t, err, ErrInvalidDate)
	f.repo.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything)
}
