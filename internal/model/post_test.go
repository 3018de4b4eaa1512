package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/errors"
)

func TestPostLike(t *testing.T) {
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	post := &Post{Likes: []Like{{User: otherID}}}

	assert.NoError(t, post.Like(userID))
	assert.Equal(t, []Like{{User: userID}, {User: otherID}}, post.Likes, "new like is prepended")

	err := post.Like(userID)
	assert.Equal(t, errors.ErrAlreadyLiked, err)
	assert.Len(t, post.Likes, 2, "second like must not mutate the list")
}

func TestPostUnlikeRestoresPriorState(t *testing.T) {
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	post := &Post{Likes: []Like{{User: otherID}}}

	before := append([]Like(nil), post.Likes...)

	assert.NoError(t, post.Like(userID))
	assert.NoError(t, post.Unlike(userID))
	assert.Equal(t, before, post.Likes)
}

func TestPostUnlikeWithoutLike(t *testing.T) {
	post := &Post{Likes: []Like{{User: primitive.NewObjectID()}}}

	err := post.Unlike(primitive.NewObjectID())
	assert.Equal(t, errors.ErrNotLiked, err)
	assert.Len(t, post.Likes, 1)
}

func TestPostComments(t *testing.T) {
	post := &Post{}
	first := Comment{ID: primitive.NewObjectID(), Text: "first comment here"}
	second := Comment{ID: primitive.NewObjectID(), Text: "second comment here"}

	post.AddComment(first)
	post.AddComment(second)
	assert.Equal(t, []Comment{second, first}, post.Comments, "comments are prepended")

	assert.NoError(t, post.RemoveComment(first.ID))
	assert.Equal(t, []Comment{second}, post.Comments)

	err := post.RemoveComment(first.ID)
	assert.Equal(t, errors.ErrCommentNotFound, err)
	assert.Equal(t, []Comment{second}, post.Comments)
}
