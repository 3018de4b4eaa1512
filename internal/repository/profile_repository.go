package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"devconnector/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*model.Profile, error)
	FindByHandle(ctx context.Context, handle string) (*model.Profile, error)
	FindAll(ctx context.Context) ([]model.Profile, error)
	// UpdateFields applies a partial $set update keyed by user and returns
	// the updated document. Fields absent from the map are left untouched.
	UpdateFields(ctx context.Context, userID primitive.ObjectID, fields map[string]interface{}) (*model.Profile, error)
	// Save replaces the whole document, persisting embedded-list mutations.
	Save(ctx context.Context, profile *model.Profile) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type profileRepository struct {
	collection *mongo.Collection
}

// NewProfileRepository builds a Mongo-backed profile repository.
func NewProfileRepository(database *mongo.Database) ProfileRepository {
	return &profileRepository{collection: database.Collection("profiles")}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *profileRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.collection.FindOne(ctx, bson.M{"user": userID}).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByHandle(ctx context.Context, handle string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.collection.FindOne(ctx, bson.M{"handle": handle}).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	profiles := []model.Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) UpdateFields(ctx context.Context, userID primitive.ObjectID, fields map[string]interface{}) (*model.Profile, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile model.Profile
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"user": userID}, bson.M{"$set": set}, opts).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *model.Profile) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	return err
}

func (r *profileRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"user": userID})
	return err
}
