package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/errors"
)

// Profile is the one-to-one public extension of a User.
type Profile struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	Handle         string             `json:"handle" bson:"handle"`
	Company        string             `json:"company,omitempty" bson:"company,omitempty"`
	Website        string             `json:"website,omitempty" bson:"website,omitempty"`
	Location       string             `json:"location,omitempty" bson:"location,omitempty"`
	Status         string             `json:"status" bson:"status"`
	Skills         []string           `json:"skills" bson:"skills"`
	Bio            string             `json:"bio,omitempty" bson:"bio,omitempty"`
	GithubUsername string             `json:"githubusername,omitempty" bson:"githubusername,omitempty"`
	Experience     []Experience       `json:"experience" bson:"experience"`
	Education      []Education        `json:"education" bson:"education"`
	Social         Social             `json:"social" bson:"social"`
	Date           time.Time          `json:"date" bson:"date"`
}

// Social is the fixed set of optional social links on a profile.
type Social struct {
	Youtube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

// Experience is an embedded work history entry, owned by its profile.
type Experience struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Company     string             `json:"company" bson:"company"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time          `json:"from" bson:"from"`
	To          *time.Time         `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool               `json:"current" bson:"current"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

// Education is an embedded education entry, owned by its profile.
type Education struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	School       string             `json:"school" bson:"school"`
	Degree       string             `json:"degree" bson:"degree"`
	FieldOfStudy string             `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time          `json:"from" bson:"from"`
	To           *time.Time         `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool               `json:"current" bson:"current"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
}

// AddExperience prepends an entry to the experience list.
func (p *Profile) AddExperience(exp Experience) {
	p.Experience = append([]Experience{exp}, p.Experience...)
}

// RemoveExperience removes the entry with the given id.
func (p *Profile) RemoveExperience(id primitive.ObjectID) error {
	for i, exp := range p.Experience {
		if exp.ID == id {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return nil
		}
	}
	return errors.ErrExperienceNotFound
}

// AddEducation prepends an entry to the education list.
func (p *Profile) AddEducation(edu Education) {
	p.Education = append([]Education{edu}, p.Education...)
}

// RemoveEducation removes the entry with the given id.
func (p *Profile) RemoveEducation(id primitive.ObjectID) error {
	for i, edu := range p.Education {
		if edu.ID == id {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return nil
		}
	}
	return errors.ErrEducationNotFound
}
