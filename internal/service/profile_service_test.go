package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"devconnector/internal/errors"
	"devconnector/internal/model"
	"devconnector/internal/validation"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByHandle(ctx context.Context, handle string) (*model.Profile, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateFields(ctx context.Context, userID primitive.ObjectID, fields map[string]interface{}) (*model.Profile, error) {
	args := m.Called(ctx, userID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestProfileService_CreateOrUpdate(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("creates profile and splits skills", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockProfiles.On("FindByUser", mock.Anything, userID).Return(nil, mongo.ErrNoDocuments)
		mockProfiles.On("FindByHandle", mock.Anything, "devhandle").Return(nil, mongo.ErrNoDocuments)
		mockProfiles.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

		service := NewProfileService(mockProfiles, new(MockUserRepository), nil)

		profile, err := service.CreateOrUpdate(context.Background(), userID, validation.ProfileInput{
			Handle: "devhandle",
			Status: "Developer",
			Skills: "HTML,CSS,JS",
		})

		assert.NoError(t, err)
		assert.Equal(t, userID, profile.User)
		assert.Equal(t, []string{"HTML", "CSS", "JS"}, profile.Skills)
		assert.NotNil(t, profile.Experience)
		assert.NotNil(t, profile.Education)
		mockProfiles.AssertExpectations(t)
	})

	t.Run("handle conflict leaves nothing created", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockProfiles.On("FindByUser", mock.Anything, userID).Return(nil, mongo.ErrNoDocuments)
		mockProfiles.On("FindByHandle", mock.Anything, "taken").Return(&model.Profile{Handle: "taken"}, nil)

		service := NewProfileService(mockProfiles, new(MockUserRepository), nil)

		profile, err := service.CreateOrUpdate(context.Background(), userID, validation.ProfileInput{
			Handle: "taken",
			Status: "Developer",
			Skills: "Go",
		})

		assert.Equal(t, errors.ErrHandleTaken, err)
		assert.Nil(t, profile)
		mockProfiles.AssertNotCalled(t, "Create")
		mockProfiles.AssertExpectations(t)
	})

	t.Run("existing profile gets a partial update", func(t *testing.T) {
		updated := &model.Profile{User: userID, Handle: "devhandle", Location: "Berlin"}

		mockProfiles := new(MockProfileRepository)
		mockProfiles.On("FindByUser", mock.Anything, userID).Return(&model.Profile{User: userID, Handle: "devhandle"}, nil)
		mockProfiles.On("UpdateFields", mock.Anything, userID, mock.MatchedBy(func(fields map[string]interface{}) bool {
			_, hasCompany := fields["company"]
			return fields["location"] == "Berlin" && !hasCompany
		})).Return(updated, nil)

		service := NewProfileService(mockProfiles, new(MockUserRepository), nil)

		profile, err := service.CreateOrUpdate(context.Background(), userID, validation.ProfileInput{
			Handle:   "devhandle",
			Status:   "Developer",
			Skills:   "Go",
			Location: "Berlin",
		})

		assert.NoError(t, err)
		assert.Equal(t, updated, profile)
		mockProfiles.AssertNotCalled(t, "Create")
		mockProfiles.AssertExpectations(t)
	})
}

func TestProfileService_Current(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("missing profile", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockProfiles.On("FindByUser", mock.Anything, userID).Return(nil, mongo.ErrNoDocuments)

		service := NewProfileService(mockProfiles, new(MockUserRepository), nil)

		profile, err := service.Current(context.Background(), userID)
		assert.Equal(t, errors.ErrProfileNotFound, err)
		assert.Nil(t, profile)
	})

	t.Run("malformed user id is not found", func(t *testing.T) {
		service := NewProfileService(new(MockProfileRepository), new(MockUserRepository), nil)

		profile, err := service.ByUserID(context.Background(), "not-a-hex-id")
		assert.Equal(t, errors.ErrProfileNotFound, err)
		assert.Nil(t, profile)
	})
}

func TestProfileService_DeleteExperience(t *testing.T) {
	userID := primitive.NewObjectID()
	expID := primitive.NewObjectID()

	t.Run("removes the entry and saves", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockProfiles.On("FindByUser", mock.Anything, userID).Return(&model.Profile{
			User:       userID,
			Experience: []model.Experience{{ID: expID, Title: "Developer"}},
		}, nil)
		mockProfiles.On("Save", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

		service := NewProfileService(mockProfiles, new(MockUserRepository), nil)

		profile, err := service.DeleteExperience(context.Background(), userID, expID.Hex())
		assert.NoError(t, err)
		assert.Empty(t, profile.Experience)
		mockProfiles.AssertExpectations(t)
	})

	t.Run("unknown entry id is not saved", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockProfiles.On("FindByUser", mock.Anything, userID).Return(&model.Profile{User: userID}, nil)

		service := NewProfileService(mockProfiles, new(MockUserRepository), nil)

		_, err := service.DeleteExperience(context.Background(), userID, primitive.NewObjectID().Hex())
		assert.Equal(t, errors.ErrExperienceNotFound, err)
		mockProfiles.AssertNotCalled(t, "Save")
	})
}

func TestProfileService_DeleteAccount(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("removes profile and user", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockUsers := new(MockUserRepository)
		mockProfiles.On("DeleteByUser", mock.Anything, userID).Return(nil)
		mockUsers.On("Delete", mock.Anything, userID).Return(nil)

		service := NewProfileService(mockProfiles, mockUsers, nil)

		assert.NoError(t, service.DeleteAccount(context.Background(), userID))
		mockProfiles.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("already-absent documents still succeed", func(t *testing.T) {
		mockProfiles := new(MockProfileRepository)
		mockUsers := new(MockUserRepository)
		mockProfiles.On("DeleteByUser", mock.Anything, userID).Return(mongo.ErrNoDocuments)
		mockUsers.On("Delete", mock.Anything, userID).Return(mongo.ErrNoDocuments)

		service := NewProfileService(mockProfiles, mockUsers, nil)

		assert.NoError(t, service.DeleteAccount(context.Background(), userID))
	})
}
