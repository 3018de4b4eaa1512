package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/errors"
)

// Post is a feed entry with embedded likes and comments.
type Post struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User     primitive.ObjectID `json:"user" bson:"user"`
	Text     string             `json:"text" bson:"text"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	Avatar   string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Likes    []Like             `json:"likes" bson:"likes"`
	Comments []Comment          `json:"comments" bson:"comments"`
	Date     time.Time          `json:"date" bson:"date"`
}

// Like records a single user's like on a post.
type Like struct {
	User primitive.ObjectID `json:"user" bson:"user"`
}

// Comment is an embedded comment on a post.
type Comment struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	User   primitive.ObjectID `json:"user" bson:"user"`
	Text   string             `json:"text" bson:"text"`
	Name   string             `json:"name,omitempty" bson:"name,omitempty"`
	Avatar string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Date   time.Time          `json:"date" bson:"date"`
}

// LikedBy reports whether the user already liked the post.
func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	for _, like := range p.Likes {
		if like.User == userID {
			return true
		}
	}
	return false
}

// Like prepends a like for the user. Liking twice is an error.
func (p *Post) Like(userID primitive.ObjectID) error {
	if p.LikedBy(userID) {
		return errors.ErrAlreadyLiked
	}
	p.Likes = append([]Like{{User: userID}}, p.Likes...)
	return nil
}

// Unlike removes the user's like. Unliking without a prior like is an error.
func (p *Post) Unlike(userID primitive.ObjectID) error {
	for i, like := range p.Likes {
		if like.User == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return errors.ErrNotLiked
}

// AddComment prepends a comment to the list.
func (p *Post) AddComment(comment Comment) {
	p.Comments = append([]Comment{comment}, p.Comments...)
}

// RemoveComment removes the comment with the given id.
func (p *Post) RemoveComment(id primitive.ObjectID) error {
	for i, comment := range p.Comments {
		if comment.ID == id {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return errors.ErrCommentNotFound
}
