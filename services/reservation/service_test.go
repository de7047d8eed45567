package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	reservationRepo "roomify/database/repository/reservation"
	roomRepo "roomify/database/repository/room"
	userRepo "roomify/database/repository/user"
	"roomify/models"
)

// MockReservationRepository is a mock implementation of ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) CreateIfFree(ctx context.Context, res *models.Reservation) (*models.Reservation, error) {
	args := m.Called(ctx, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetDetailsByID(ctx context.Context, id primitive.ObjectID) (*models.ReservationDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationDetails), args.Error(1)
}

func (m *MockReservationRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields reservationRepo.UpdateFields) (*models.Reservation, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) MarkCanceled(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepository) CountOverlapping(ctx context.Context, roomID primitive.ObjectID, from, to time.Time, excludeID *primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, roomID, from, to, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) FindForRoom(ctx context.Context, roomID primitive.ObjectID, period *models.ReservationPeriod) ([]models.Reservation, error) {
	args := m.Called(ctx, roomID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindOverlapping(ctx context.Context, from, to time.Time) ([]models.Reservation, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

// MockRoomRepository is a mock implementation of RoomRepository.
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *models.Room) (*models.Room, error) {
	args := m.Called(ctx, room)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) GetManyByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Room, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[primitive.ObjectID]models.Room), args.Error(1)
}

func (m *MockRoomRepository) GetAll(ctx context.Context) ([]models.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockRoomRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update roomRepo.UpdateFields) (*models.Room, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields userRepo.UpdateFields) (*models.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockNotifier records enqueued notification messages.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, msg models.NotificationMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type serviceFixture struct {
	svc      *DefaultReservationService
	repo     *MockReservationRepository
	rooms    *MockRoomRepository
	users    *MockUserRepository
	notifier *MockNotifier

	room   *models.Room
	owner  *models.User
	renter *models.User
}

func newServiceFixture() *serviceFixture {
	repo := new(MockReservationRepository)
	rooms := new(MockRoomRepository)
	users := new(MockUserRepository)
	notifier := new(MockNotifier)

	owner := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Olivia Owner",
		Email: "olivia@example.com",
		Role:  models.RoleUser,
	}
	renter := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Rita Renter",
		Email: "rita@example.com",
		Role:  models.RoleUser,
	}
	room := &models.Room{
		ID:     primitive.NewObjectID(),
		Name:   "Seaside Apartment",
		Type:   models.RoomTypeApartment,
		UserID: owner.ID,
	}

	return &serviceFixture{
		svc: &DefaultReservationService{
			Repo:     repo,
			RoomRepo: rooms,
			UserRepo: users,
			Notifier: notifier,
		},
		repo:     repo,
		rooms:    rooms,
		users:    users,
		notifier: notifier,
		room:     room,
		owner:    owner,
		renter:   renter,
	}
}

func TestCreate_NormalizesAndPersists(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", mock.Anything, f.room.ID).Return(f.room, nil)
	f.users.On("GetByID", mock.Anything, f.renter.ID).Return(f.renter, nil)
	f.users.On("GetByID", mock.Anything, f.owner.ID).Return(f.owner, nil)

	created := &models.Reservation{
		ID:         primitive.NewObjectID(),
		RoomID:     f.room.ID,
		UserID:     f.renter.ID,
		RentedFrom: StartOfDayUTC(day("2023-04-10")),
		RentedTo:   EndOfDayUTC(day("2023-04-12")),
	}
	f.repo.On("CreateIfFree", mock.Anything, mock.MatchedBy(func(res *models.Reservation) bool {
		return res.RoomID == f.room.ID &&
			res.UserID == f.renter.ID &&
			res.RentedFrom.Equal(StartOfDayUTC(day("2023-04-10"))) &&
			res.RentedTo.Equal(EndOfDayUTC(day("2023-04-12"))) &&
			!res.IsCanceled
	})).Return(created, nil)
	f.notifier.On("Send", mock.Anything, mock.Anything).Return(nil)

	got, err := f.svc.Create(ctx, CreateReservationInput{
		RoomID:     f.room.ID,
		UserID:     f.renter.ID,
		RentedFrom: "2023-04-10",
		RentedTo:   "2023-04-12",
	})
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// One telegram message plus one email each for renter and owner.
	f.notifier.AssertNumberOfCalls(t, "Send", 3)
	f.repo.AssertExpectations(t)
}

func TestCreate_PeriodConflict(t *testing.T) {
	f := newServiceFixture()

	f.rooms.On("GetByID", mock.Anything, f.room.ID).Return(f.room, nil)
	f.users.On("GetByID", mock.Anything, f.renter.ID).Return(f.renter, nil)
	f.repo.On("CreateIfFree", mock.Anything, mock.Anything).Return(nil, reservationRepo.ErrPeriodTaken)

	_, err := f.svc.Create(context.Background(), CreateReservationInput{
		RoomID:     f.room.ID,
		UserID:     f.renter.ID,
		RentedFrom: "2023-04-10",
		RentedTo:   "2023-04-12",
	})
	assert.ErrorIs(t, err, ErrPeriodConflict)
	f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestCreate_RoomNotFound(t *testing.T) {
	f := newServiceFixture()
	f.rooms.On("GetByID", mock.Anything, f.room.ID).Return(nil, roomRepo.ErrNotFound)

	_, err := f.svc.Create(context.Background(), CreateReservationInput{
		RoomID:     f.room.ID,
		UserID:     f.renter.ID,
		RentedFrom: "2023-04-10",
		RentedTo:   "2023-04-12",
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreate_RenterNotFound(t *testing.T) {
	f := newServiceFixture()
	f.rooms.On("GetByID", mock.Anything, f.room.ID).Return(f.room, nil)
	f.users.On("GetByID", mock.Anything, f.renter.ID).Return(nil, userRepo.ErrNotFound)

	_, err := f.svc.Create(context.Background(), CreateReservationInput{
		RoomID:     f.room.ID,
		UserID:     f.renter.ID,
		RentedFrom: "2023-04-10",
		RentedTo:   "2023-04-12",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreate_InvalidDate(t *testing.T) {
	f := newServiceFixture()
	f.rooms.On("GetByID", mock.Anything, f.room.ID).Return(f.room, nil)
	f.users.On("GetByID", mock.Anything, f.renter.ID).Return(f.renter, nil)

	_, err := f.svc.Create(context.Background(), CreateReservationInput{
		RoomID:     f.room.ID,
		UserID:     f.renter.ID,
		RentedFrom: "10/04/2023",
		RentedTo:   "2023-04-12",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
	f.repo.AssertNotCalled(t, "CreateIfFree", mock.Anything, mock.Anything)
}

func TestCancel_EmitsEventOnce(t *testing.T) {
	f := newServiceFixture()
	id := primitive.NewObjectID()
	canceled := &models.Reservation{
		ID:         id,
		RoomID:     f.room.ID,
		UserID:     f.renter.ID,
		RentedFrom: StartOfDayUTC(day("2023-04-10")),
		RentedTo:   EndOfDayUTC(day("2023-04-12")),
		IsCanceled: true,
	}

	f.repo.On("MarkCanceled", mock.Anything, id).Return(canceled, nil)
	f.rooms.On("GetByID", mock.Anything, f.room.ID).Return(f.room, nil)
	f.users.On("GetByID", mock.Anything, f.renter.ID).Return(f.renter, nil)
	f.users.On("GetByID", mock.Anything, f.owner.ID).Return(f.owner, nil)
	f.notifier.On("Send", mock.Anything, mock.Anything).Return(nil)

	got, err := f.svc.Cancel(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.IsCanceled)
	f.notifier.AssertNumberOfCalls(t, "Send", 3)
}

func TestCancel_AlreadyCanceledIsNoOp(t *testing.T) {
	f := newServiceFixture()
	id := primitive.NewObjectID()
	existing := &models.Reservation{ID: id, RoomID: f.room.ID, UserID: f.renter.ID, IsCanceled: true}

	f.repo.On("MarkCanceled", mock.Anything, id).Return(nil, reservationRepo.ErrNotFound)
	f.repo.On("GetByID", mock.Anything, id).Return(existing, nil)

	got, err := f.svc.Cancel(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, existing, got)
	f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestCancel_NotFound(t *testing.T) {
	f := newServiceFixture()
	id := primitive.NewObjectID()

	f.repo.On("MarkCanceled", mock.Anything, id).Return(nil, reservationRepo.ErrNotFound)
	f.repo.On("GetByID", mock.Anything, id).Return(nil, reservationRepo.ErrNotFound)

	_, err := f.svc.Cancel(context.Background(), id)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdate_RechecksAvailabilityOnDateChange(t *testing.T) {
	f := newServiceFixture()
	id := primitive.NewObjectID()
	current := &models.Reservation{
		ID:         id,
		RoomID:     f.room.ID,
		UserID:     f.renter.ID,
		RentedFrom: StartOfDayUTC(day("2023-04-10")),
		RentedTo:   EndOfDayUTC(day("2023-04-12")),
	}
	f.repo.On("GetByID", mock.Anything, id).Return(current, nil)

	newTo := "2023-04-20"
	// The effective period combines the untouched start with the new end,
	// and the reservation itself is excluded from the overlap count.
	f.repo.On("CountOverlapping", mock.Anything, f.room.ID,
		current.RentedFrom, EndOfDayUTC(day(newTo)), &id).Return(int64(1), nil)

	_, err := f.svc.Update(context.Background(), id, UpdateReservationInput{RentedTo: &newTo})
	assert.ErrorIs(t, err, ErrPeriodConflict)
	f.repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_AppliesWhenFree(t *testing.T) {
	f := newServiceFixture()
	id := primitive.NewObjectID()
	current := &models.Reservation{
		ID:         id,
		RoomID:     f.room.ID,
		UserID:     f.renter.ID,
		RentedFrom: StartOfDayUTC(day("2023-04-10")),
		RentedTo:   EndOfDayUTC(day("2023-04-12")),
	}
	f.repo.On("GetByID", mock.Anything, id).Return(current, nil)
	f.repo.On("CountOverlapping", mock.Anything, f.room.ID,
		mock.Anything, mock.Anything, &id).Return(int64(0), nil)

	newFrom := "2023-04-11"
	updated := &models.Reservation{ID: id, RoomID: f.room.ID, UserID: f.renter.ID,
		RentedFrom: StartOfDayUTC(day(newFrom)), RentedTo: current.RentedTo}
	f.repo.On("UpdateByID", mock.Anything, id, mock.MatchedBy(func(fields reservationRepo.UpdateFields) bool {
		return fields.RentedFrom != nil &&
			fields.RentedFrom.Equal(StartOfDayUTC(day(newFrom))) &&
			fields.RentedTo == nil
	})).Return(updated, nil)

	got, err := f.svc.Update(context.Background(), id, UpdateReservationInput{RentedFrom: &newFrom})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdate_NoDateChangeSkipsAvailabilityCheck(t *testing.T) {
	f := newServiceFixture()
	id := primitive.NewObjectID()
	current := &models.Reservation{ID: id, RoomID: f.room.ID, UserID: f.renter.ID}
	f.repo.On("GetByID", mock.Anything, id).Return(current, nil)

	canceled := true
	updated := &models.Reservation{ID: id, RoomID: f.room.ID, UserID: f.renter.ID, IsCanceled: true}
	f.repo.On("UpdateByID", mock.Anything, id, mock.Anything).Return(updated, nil)

	got, err := f.svc.Update(context.Background(), id, UpdateReservationInput{IsCanceled: &canceled})
	require.NoError(t, err)
	assert.True(t, got.IsCanceled)
	f.repo.AssertNotCalled(t, "CountOverlapping",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIsReserved(t *testing.T) {
	f := newServiceFixture()

	f.repo.On("CountOverlapping", mock.Anything, f.room.ID,
		StartOfDayUTC(day("2023-04-10")), EndOfDayUTC(day("2023-04-12")),
		(*primitive.ObjectID)(nil)).Return(int64(2), nil)

	reserved, err := f.svc.IsReserved(context.Background(), f.room.ID, "2023-04-10", "2023-04-12")
	require.NoError(t, err)
	assert.True(t, reserved)

	free := newServiceFixture()
	free.repo.On("CountOverlapping", mock.Anything, free.room.ID,
		mock.Anything, mock.Anything, (*primitive.ObjectID)(nil)).Return(int64(0), nil)

	reserved, err = free.svc.IsReserved(context.Background(), free.room.ID, "2023-04-10", "2023-04-12")
	require.NoError(t, err)
	assert.False(t, reserved)
}

func TestDelete_NotFound(t *testing.T) {
	f := newServiceFixture()
	id := primitive.NewObjectID()
	f.repo.On("DeleteByID", mock.Anything, id).Return(reservationRepo.ErrNotFound)

	err := f.svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestFindOneByID_NotFound(t *testing.T) {
	f := newServiceFixture()
	id := primitive.NewObjectID()
	f.repo.On("GetDetailsByID", mock.Anything, id).Return(nil, reservationRepo.ErrNotFound)

	_, err := f.svc.FindOneByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
