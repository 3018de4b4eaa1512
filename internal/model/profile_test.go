package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/errors"
)

func TestProfileExperience(t *testing.T) {
	profile := &Profile{}
	first := Experience{ID: primitive.NewObjectID(), Title: "Junior Developer"}
	second := Experience{ID: primitive.NewObjectID(), Title: "Senior Developer"}

	profile.AddExperience(first)
	profile.AddExperience(second)
	assert.Equal(t, []Experience{second, first}, profile.Experience, "entries are prepended")

	assert.NoError(t, profile.RemoveExperience(second.ID))
	assert.Equal(t, []Experience{first}, profile.Experience)

	err := profile.RemoveExperience(second.ID)
	assert.Equal(t, errors.ErrExperienceNotFound, err)
	assert.Equal(t, []Experience{first}, profile.Experience, "missing id must not remove anything")
}

func TestProfileEducation(t *testing.T) {
	profile := &Profile{}
	entry := Education{ID: primitive.NewObjectID(), School: "State University"}

	profile.AddEducation(entry)
	assert.Equal(t, []Education{entry}, profile.Education)

	err := profile.RemoveEducation(primitive.NewObjectID())
	assert.Equal(t, errors.ErrEducationNotFound, err)
	assert.Len(t, profile.Education, 1)

	assert.NoError(t, profile.RemoveEducation(entry.ID))
	assert.Empty(t, profile.Education)
}
