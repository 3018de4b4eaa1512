package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"devconnector/internal/cache"
	"devconnector/internal/errors"
	"devconnector/internal/model"
	"devconnector/internal/repository"
	"devconnector/internal/validation"
)

const (
	postFeedCacheKey = "posts:all"
	postFeedCacheTTL = 30 * time.Second
)

// PostService handles feed operations.
type PostService interface {
	All(ctx context.Context) ([]model.Post, error)
	ByID(ctx context.Context, postID string) (*model.Post, error)
	Create(ctx context.Context, userID primitive.ObjectID, in validation.PostInput) (*model.Post, error)
	// Delete removes a post. Only the owner may delete; a missing post and a
	// foreign post fail differently (not-found vs authorization).
	Delete(ctx context.Context, userID primitive.ObjectID, postID string) error
	Like(ctx context.Context, userID primitive.ObjectID, postID string) (*model.Post, error)
	Unlike(ctx context.Context, userID primitive.ObjectID, postID string) (*model.Post, error)
	Comment(ctx context.Context, userID primitive.ObjectID, postID string, in validation.PostInput) (*model.Post, error)
	DeleteComment(ctx context.Context, postID, commentID string) (*model.Post, error)
}

type postService struct {
	posts repository.PostRepository
	cache *cache.Client
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository, cache *cache.Client) PostService {
	return &postService{
		posts: posts,
		cache: cache,
	}
}

// All returns the feed, newest first, through a short-lived cache.
func (s *postService) All(ctx context.Context) ([]model.Post, error) {
	if data, _ := s.cache.Get(ctx, postFeedCacheKey); data != nil {
		var cached []model.Post
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(posts); err == nil {
		_ = s.cache.Set(ctx, postFeedCacheKey, payload, postFeedCacheTTL)
	}

	return posts, nil
}

// ByID returns a single post. Malformed ids are treated as not found.
func (s *postService) ByID(ctx context.Context, postID string) (*model.Post, error) {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, errors.ErrPostNotFound
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Create persists a new post owned by the authenticated user.
func (s *postService) Create(ctx context.Context, userID primitive.ObjectID, in validation.PostInput) (*model.Post, error) {
	post := &model.Post{
		ID:       primitive.NewObjectID(),
		User:     userID,
		Text:     in.Text,
		Name:     in.Name,
		Avatar:   in.Avatar,
		Likes:    []model.Like{},
		Comments: []model.Comment{},
		Date:     time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	_ = s.cache.Delete(ctx, postFeedCacheKey)

	return post, nil
}

// Delete removes a post after an ownership check.
func (s *postService) Delete(ctx context.Context, userID primitive.ObjectID, postID string) error {
	post, err := s.ByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.User != userID {
		return errors.ErrNotAuthorized
	}

	if err := s.posts.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	_ = s.cache.Delete(ctx, postFeedCacheKey)

	return nil
}

// Like records the user's like. A second like from the same user errors.
func (s *postService) Like(ctx context.Context, userID primitive.ObjectID, postID string) (*model.Post, error) {
	post, err := s.ByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := post.Like(userID); err != nil {
		return nil, err
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	_ = s.cache.Delete(ctx, postFeedCacheKey)

	return post, nil
}

// Unlike removes the user's like. Unliking without a prior like errors.
func (s *postService) Unlike(ctx context.Context, userID primitive.ObjectID, postID string) (*model.Post, error) {
	post, err := s.ByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := post.Unlike(userID); err != nil {
		return nil, err
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	_ = s.cache.Delete(ctx, postFeedCacheKey)

	return post, nil
}

// Comment prepends a comment with a generated id and timestamp.
func (s *postService) Comment(ctx context.Context, userID primitive.ObjectID, postID string, in validation.PostInput) (*model.Post, error) {
	post, err := s.ByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.AddComment(model.Comment{
		ID:     primitive.NewObjectID(),
		User:   userID,
		Text:   in.Text,
		Name:   in.Name,
		Avatar: in.Avatar,
		Date:   time.Now().UTC(),
	})

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	_ = s.cache.Delete(ctx, postFeedCacheKey)

	return post, nil
}

// DeleteComment removes a comment by id. A missing comment id errors.
func (s *postService) DeleteComment(ctx context.Context, postID, commentID string) (*model.Post, error) {
	post, err := s.ByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, errors.ErrCommentNotFound
	}

	if err := post.RemoveComment(id); err != nil {
		return nil, err
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	_ = s.cache.Delete(ctx, postFeedCacheKey)

	return post, nil
}
