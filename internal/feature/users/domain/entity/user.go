// Package entity defines the domain entities for the users feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Roles a user can register with.
const (
	RoleUser      = "user"
	RoleRecruiter = "recruiter"
)

// User represents a registered account, either a job seeker or a recruiter.
type User struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string        `bson:"name" json:"name"`
	Email string        `bson:"email" json:"email"`
	Phone string        `bson:"phone" json:"phone"`

	// Password is the bcrypt hash. It is never serialized in a response.
	Password string `bson:"password" json:"-"`

	Role      string    `bson:"role" json:"role"`
	Profile   Profile   `bson:"profile" json:"profile"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Profile is the embedded self-service profile document.
type Profile struct {
	Bio                string       `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills             []string     `bson:"skills,omitempty" json:"skills,omitempty"`
	Resume             string       `bson:"resume,omitempty" json:"resume,omitempty"`
	ResumeOriginalName string       `bson:"resume_original_name,omitempty" json:"resume_original_name,omitempty"`
	ProfileImage       string       `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	Education          []Education  `bson:"education,omitempty" json:"education,omitempty"`
	Experience         []Experience `bson:"experience,omitempty" json:"experience,omitempty"`
	Social             SocialLinks  `bson:"social,omitempty" json:"social,omitempty"`
}

// Education is a single education history entry.
type Education struct {
	Institution  string `bson:"institution" json:"institution"`
	Degree       string `bson:"degree,omitempty" json:"degree,omitempty"`
	FieldOfStudy string `bson:"field_of_study,omitempty" json:"field_of_study,omitempty"`
	StartYear    int    `bson:"start_year,omitempty" json:"start_year,omitempty"`
	EndYear      int    `bson:"end_year,omitempty" json:"end_year,omitempty"`
}

// Experience is a single work history entry. Company references a Company
// document by id when the employer exists on the board.
type Experience struct {
	Title       string        `bson:"title" json:"title"`
	Company     bson.ObjectID `bson:"company,omitempty" json:"company,omitempty"`
	From        string        `bson:"from,omitempty" json:"from,omitempty"`
	To          string        `bson:"to,omitempty" json:"to,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
}

// SocialLinks holds per-platform profile URLs. Each link must point at its
// own platform's host; the usecase validates the shape before persisting.
type SocialLinks struct {
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Portfolio string `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
}
