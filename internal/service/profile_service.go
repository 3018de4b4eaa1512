package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
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
	profileListCacheKey = "profiles:all"
	profileListCacheTTL = 30 * time.Second
)

// ProfileService handles profile operations.
type ProfileService interface {
	Current(ctx context.Context, userID primitive.ObjectID) (*model.Profile, error)
	All(ctx context.Context) ([]model.Profile, error)
	ByHandle(ctx context.Context, handle string) (*model.Profile, error)
	ByUserID(ctx context.Context, userID string) (*model.Profile, error)
	CreateOrUpdate(ctx context.Context, userID primitive.ObjectID, in validation.ProfileInput) (*model.Profile, error)
	AddExperience(ctx context.Context, userID primitive.ObjectID, in validation.ExperienceInput) (*model.Profile, error)
	DeleteExperience(ctx context.Context, userID primitive.ObjectID, expID string) (*model.Profile, error)
	AddEducation(ctx context.Context, userID primitive.ObjectID, in validation.EducationInput) (*model.Profile, error)
	DeleteEducation(ctx context.Context, userID primitive.ObjectID, eduID string) (*model.Profile, error)
	// DeleteAccount removes the profile and user documents. It reports
	// success even when either was already absent.
	DeleteAccount(ctx context.Context, userID primitive.ObjectID) error
}

type profileService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
	cache    *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(profiles repository.ProfileRepository, users repository.UserRepository, cache *cache.Client) ProfileService {
	return &profileService{
		profiles: profiles,
		users:    users,
		cache:    cache,
	}
}

// Current returns the authenticated user's profile.
func (s *profileService) Current(ctx context.Context, userID primitive.ObjectID) (*model.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// All returns every profile. An empty result is a valid empty list, not an
// error. Reads go through a short-lived cache invalidated on writes.
func (s *profileService) All(ctx context.Context) ([]model.Profile, error) {
	if data, _ := s.cache.Get(ctx, profileListCacheKey); data != nil {
		var cached []model.Profile
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(profiles); err == nil {
		_ = s.cache.Set(ctx, profileListCacheKey, payload, profileListCacheTTL)
	}

	return profiles, nil
}

// ByHandle returns the profile with the given handle.
func (s *profileService) ByHandle(ctx context.Context, handle string) (*model.Profile, error) {
	profile, err := s.profiles.FindByHandle(ctx, handle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// ByUserID returns the profile owned by the given user id. A malformed id is
// treated as not found.
func (s *profileService) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}
	return s.Current(ctx, id)
}

// CreateOrUpdate merges the provided fields into an existing profile, or
// creates one after verifying the handle is free. The unique index on handle
// is the authoritative guard against a concurrent check-then-insert race.
func (s *profileService) CreateOrUpdate(ctx context.Context, userID primitive.ObjectID, in validation.ProfileInput) (*model.Profile, error) {
	_, err := s.profiles.FindByUser(ctx, userID)
	if err == nil {
		updated, err := s.profiles.UpdateFields(ctx, userID, profileFields(in))
		if err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		_ = s.cache.Delete(ctx, profileListCacheKey)
		return updated, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("check profile existence: %w", err)
	}

	taken, err := s.profiles.FindByHandle(ctx, in.Handle)
	if err == nil && taken != nil {
		return nil, errors.ErrHandleTaken
	}
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("check handle: %w", err)
	}

	profile := &model.Profile{
		ID:             primitive.NewObjectID(),
		User:           userID,
		Handle:         in.Handle,
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Status:         in.Status,
		Skills:         splitSkills(in.Skills),
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Experience:     []model.Experience{},
		Education:      []model.Education{},
		Social: model.Social{
			Youtube:   in.Youtube,
			Twitter:   in.Twitter,
			Facebook:  in.Facebook,
			Linkedin:  in.Linkedin,
			Instagram: in.Instagram,
		},
		Date: time.Now().UTC(),
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileListCacheKey)

	return profile, nil
}

// AddExperience prepends a work history entry and returns the whole profile.
func (s *profileService) AddExperience(ctx context.Context, userID primitive.ObjectID, in validation.ExperienceInput) (*model.Profile, error) {
	profile, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, err := parseDate(in.From)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(in.To, in.Current)
	if err != nil {
		return nil, err
	}

	profile.AddExperience(model.Experience{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	})

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileListCacheKey)

	return profile, nil
}

// DeleteExperience removes an entry by id and returns the whole profile.
func (s *profileService) DeleteExperience(ctx context.Context, userID primitive.ObjectID, expID string) (*model.Profile, error) {
	id, err := primitive.ObjectIDFromHex(expID)
	if err != nil {
		return nil, errors.ErrExperienceNotFound
	}

	profile, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := profile.RemoveExperience(id); err != nil {
		return nil, err
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileListCacheKey)

	return profile, nil
}

// AddEducation prepends an education entry and returns the whole profile.
func (s *profileService) AddEducation(ctx context.Context, userID primitive.ObjectID, in validation.EducationInput) (*model.Profile, error) {
	profile, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, err := parseDate(in.From)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(in.To, in.Current)
	if err != nil {
		return nil, err
	}

	profile.AddEducation(model.Education{
		ID:           primitive.NewObjectID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	})

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileListCacheKey)

	return profile, nil
}

// DeleteEducation removes an entry by id and returns the whole profile.
func (s *profileService) DeleteEducation(ctx context.Context, userID primitive.ObjectID, eduID string) (*model.Profile, error) {
	id, err := primitive.ObjectIDFromHex(eduID)
	if err != nil {
		return nil, errors.ErrEducationNotFound
	}

	profile, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := profile.RemoveEducation(id); err != nil {
		return nil, err
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileListCacheKey)

	return profile, nil
}

// DeleteAccount deletes the profile and user documents for the identity.
func (s *profileService) DeleteAccount(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.profiles.DeleteByUser(ctx, userID); err != nil && err != mongo.ErrNoDocuments {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil && err != mongo.ErrNoDocuments {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, profileListCacheKey)
	return nil
}

// profileFields builds the partial update document from only the fields
// present in the input. The social block is replaced as a whole.
func profileFields(in validation.ProfileInput) map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Handle != "" {
		fields["handle"] = in.Handle
	}
	if in.Company != "" {
		fields["company"] = in.Company
	}
	if in.Website != "" {
		fields["website"] = in.Website
	}
	if in.Location != "" {
		fields["location"] = in.Location
	}
	if in.Bio != "" {
		fields["bio"] = in.Bio
	}
	if in.Status != "" {
		fields["status"] = in.Status
	}
	if in.GithubUsername != "" {
		fields["githubusername"] = in.GithubUsername
	}
	if in.Skills != "" {
		fields["skills"] = splitSkills(in.Skills)
	}
	fields["social"] = model.Social{
		Youtube:   in.Youtube,
		Twitter:   in.Twitter,
		Facebook:  in.Facebook,
		Linkedin:  in.Linkedin,
		Instagram: in.Instagram,
	}
	return fields
}

// splitSkills splits the comma-separated skills string into an ordered list.
func splitSkills(skills string) []string {
	return strings.Split(skills, ",")
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

func parseOptionalDate(value string, current bool) (*time.Time, error) {
	if current || value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
