// Package entity defines the domain entities for the companies feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Company is an employer on the board. Jobs holds non-owning
// back-references to the Job documents posted under this company.
type Company struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	Website     string        `bson:"website" json:"website"`
	Location    string        `bson:"location" json:"location"`
	Logo        string        `bson:"logo,omitempty" json:"logo,omitempty"`

	// Owners lists the user ids allowed to manage this company.
	Owners []bson.ObjectID `bson:"owners" json:"owners"`

	// Jobs lists the ids of jobs posted under this company.
	Jobs []bson.ObjectID `bson:"jobs" json:"jobs"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
