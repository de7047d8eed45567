package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	userRepo "roomify/database/repository/user"
	"roomify/models"
)

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

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := new(MockUserRepository)
	svc := &DefaultUserService{Repo: repo}

	existing := &models.User{ID: primitive.NewObjectID(), Email: "rita@example.com"}
	repo.On("GetByEmail", mock.Anything, "rita@example.com").Return(existing, nil)

	_, err := svc.Register(context.Background(), RegisterUserInput{
		Name:     "Rita",
		Email:    "rita@example.com",
		Password: "supersecret",
		Phone:    "+100",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_AppliesProfileFields(t *testing.T) {
	repo := new(MockUserRepository)
	svc := &DefaultUserService{Repo: repo}
	id := primitive.NewObjectID()

	name := "Rita R."
	phone := "+200"
	updated := &models.User{ID: id, Name: name, Phone: phone}
	repo.On("UpdateByID", mock.Anything, id, mock.MatchedBy(func(fields userRepo.UpdateFields) bool {
		return fields.Name != nil && *fields.Name == name &&
			fields.Phone != nil && *fields.Phone == phone &&
			fields.Email == nil && fields.HashedPassword == nil
	})).Return(updated, nil)

	got, err := svc.Update(context.Background(), id, UpdateUserInput{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdate_EmailTakenByAnotherUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := &DefaultUserService{Repo: repo}
	id := primitive.NewObjectID()

	email := "taken@example.com"
	other := &models.User{ID: primitive.NewObjectID(), Email: email}
	repo.On("GetByEmail", mock.Anything, email).Return(other, nil)

	_, err := svc.Update(context.Background(), id, UpdateUserInput{Email: &email})
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_KeepingOwnEmailIsAllowed(t *testing.T) {
	repo := new(MockUserRepository)
	svc := &DefaultUserService{Repo: repo}
	id := primitive.NewObjectID()

	email := "rita@example.com"
	self := &models.User{ID: id, Email: email}
	repo.On("GetByEmail", mock.Anything, email).Return(self, nil)
	repo.On("UpdateByID", mock.Anything, id, mock.Anything).Return(self, nil)

	got, err := svc.Update(context.Background(), id, UpdateUserInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, self, got)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := &DefaultUserService{Repo: repo}
	id := primitive.NewObjectID()

	name := "ghost"
	repo.On("UpdateByID", mock.Anything, id, mock.Anything).Return(nil, userRepo.ErrNotFound)

	_, err := svc.Update(context.Background(), id, UpdateUserInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePassword_RehashesAfterVerification(t *testing.T) {
	repo := new(MockUserRepository)
	svc := &DefaultUserService{Repo: repo}
	id := primitive.NewObjectID()

	current := &models.User{ID: id, HashedPassword: hashOf(t, "old-password")}
	repo.On("GetByID", mock.Anything, id).Return(current, nil)

	updated := &models.User{ID: id}
	repo.On("UpdateByID", mock.Anything, id, mock.MatchedBy(func(fields userRepo.UpdateFields) bool {
		if fields.HashedPassword == nil || fields.Name != nil || fields.Email != nil {
			return false
		}
		// The stored value must be a hash of the new password, never the
		// plaintext or the old hash.
		return bcrypt.CompareHashAndPassword([]byte(*fields.HashedPassword), []byte("new-password")) == nil
	})).Return(updated, nil)

	got, err := svc.UpdatePassword(context.Background(), id, "old-password", "new-password")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdatePassword_WrongCurrentPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := &DefaultUserService{Repo: repo}
	id := primitive.NewObjectID()

	current := &models.User{ID: id, HashedPassword: hashOf(t, "old-password")}
	repo.On("GetByID", mock.Anything, id).Return(current, nil)

	_, err := svc.UpdatePassword(context.Background(), id, "not-the-password", "new-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
	repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemove_SoftDeletes(t *testing.T) {
	repo := new(MockUserRepository)
	svc := &DefaultUserService{Repo: repo}
	id := primitive.NewObjectID()

	removed := &models.User{ID: id, IsDeleted: true}
	repo.On("SoftDelete", mock.Anything, id).Return(removed, nil)

	got, err := svc.Remove(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
}

func TestFindAll(t *testing.T) {
	repo := new(MockUserRepository)
	svc := &DefaultUserService{Repo: repo}

	users := []models.User{{ID: primitive.NewObjectID()}, {ID: primitive.NewObjectID()}}
	repo.On("GetAll", mock.Anything).Return(users, nil)

	got, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
