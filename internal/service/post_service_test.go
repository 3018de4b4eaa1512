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

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) Save(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPostService_ByID(t *testing.T) {
	t.Run("malformed id is not found", func(t *testing.T) {
		service := NewPostService(new(MockPostRepository), nil)

		post, err := service.ByID(context.Background(), "not-a-hex-id")
		assert.Equal(t, errors.ErrPostNotFound, err)
		assert.Nil(t, post)
	})

	t.Run("missing post", func(t *testing.T) {
		postID := primitive.NewObjectID()
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(nil, mongo.ErrNoDocuments)

		service := NewPostService(mockPosts, nil)

		post, err := service.ByID(context.Background(), postID.Hex())
		assert.Equal(t, errors.ErrPostNotFound, err)
		assert.Nil(t, post)
	})
}

func TestPostService_Create(t *testing.T) {
	userID := primitive.NewObjectID()

	mockPosts := new(MockPostRepository)
	mockPosts.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)

	service := NewPostService(mockPosts, nil)

	post, err := service.Create(context.Background(), userID, validation.PostInput{
		Text:   "A perfectly fine post body.",
		Name:   "Test User",
		Avatar: "https://example.com/avatar",
	})

	assert.NoError(t, err)
	assert.Equal(t, userID, post.User)
	assert.Equal(t, "A perfectly fine post body.", post.Text)
	assert.NotNil(t, post.Likes)
	assert.NotNil(t, post.Comments)
	mockPosts.AssertExpectations(t)
}

func TestPostService_Delete(t *testing.T) {
	ownerID := primitive.NewObjectID()
	strangerID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	t.Run("owner deletes the post", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, User: ownerID}, nil)
		mockPosts.On("Delete", mock.Anything, postID).Return(nil)

		service := NewPostService(mockPosts, nil)

		assert.NoError(t, service.Delete(context.Background(), ownerID, postID.Hex()))
		mockPosts.AssertExpectations(t)
	})

	t.Run("non-owner is rejected without deleting", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, User: ownerID}, nil)

		service := NewPostService(mockPosts, nil)

		err := service.Delete(context.Background(), strangerID, postID.Hex())
		assert.Equal(t, errors.ErrNotAuthorized, err)
		mockPosts.AssertNotCalled(t, "Delete")
	})
}

func TestPostService_Like(t *testing.T) {
	userID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	t.Run("first like is saved", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
		mockPosts.On("Save", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)

		service := NewPostService(mockPosts, nil)

		post, err := service.Like(context.Background(), userID, postID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, []model.Like{{User: userID}}, post.Likes)
		mockPosts.AssertExpectations(t)
	})

	t.Run("second like from the same user errors", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{
			ID:    postID,
			Likes: []model.Like{{User: userID}},
		}, nil)

		service := NewPostService(mockPosts, nil)

		_, err := service.Like(context.Background(), userID, postID.Hex())
		assert.Equal(t, errors.ErrAlreadyLiked, err)
		mockPosts.AssertNotCalled(t, "Save")
	})
}

func TestPostService_Unlike(t *testing.T) {
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	t.Run("removes only the caller's like", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{
			ID:    postID,
			Likes: []model.Like{{User: userID}, {User: otherID}},
		}, nil)
		mockPosts.On("Save", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)

		service := NewPostService(mockPosts, nil)

		post, err := service.Unlike(context.Background(), userID, postID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, []model.Like{{User: otherID}}, post.Likes)
		mockPosts.AssertExpectations(t)
	})

	t.Run("unliking without a like errors", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)

		service := NewPostService(mockPosts, nil)

		_, err := service.Unlike(context.Background(), userID, postID.Hex())
		assert.Equal(t, errors.ErrNotLiked, err)
		mockPosts.AssertNotCalled(t, "Save")
	})
}

func TestPostService_Comments(t *testing.T) {
	userID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	t.Run("comment is prepended with an id", func(t *testing.T) {
		existing := model.Comment{ID: primitive.NewObjectID(), Text: "already here, thanks"}

		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{
			ID:       postID,
			Comments: []model.Comment{existing},
		}, nil)
		mockPosts.On("Save", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)

		service := NewPostService(mockPosts, nil)

		post, err := service.Comment(context.Background(), userID, postID.Hex(), validation.PostInput{
			Text: "A brand new comment.",
			Name: "Test User",
		})

		assert.NoError(t, err)
		assert.Len(t, post.Comments, 2)
		assert.Equal(t, "A brand new comment.", post.Comments[0].Text)
		assert.False(t, post.Comments[0].ID.IsZero())
		assert.Equal(t, existing, post.Comments[1])
		mockPosts.AssertExpectations(t)
	})

	t.Run("deleting an unknown comment errors", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)

		service := NewPostService(mockPosts, nil)

		_, err := service.DeleteComment(context.Background(), postID.Hex(), primitive.NewObjectID().Hex())
		assert.Equal(t, errors.ErrCommentNotFound, err)
		mockPosts.AssertNotCalled(t, "Save")
	})
}
