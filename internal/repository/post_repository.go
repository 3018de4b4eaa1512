package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"devconnector/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	// FindAll returns all posts, newest first.
	FindAll(ctx context.Context) ([]model.Post, error)
	// Save replaces the whole document, persisting embedded-list mutations.
	Save(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type postRepository struct {
	collection *mongo.Collection
}

// NewPostRepository builds a Mongo-backed post repository.
func NewPostRepository(database *mongo.Database) PostRepository {
	return &postRepository{collection: database.Collection("posts")}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

func (r *postRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Save(ctx context.Context, post *model.Post) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	return err
}

func (r *postRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
