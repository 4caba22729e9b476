// Package entity defines the domain entities for the categories feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// JobCategory groups jobs under a unique name. Jobs holds non-owning
// back-references to the Job documents filed under this category.
type JobCategory struct {
	ID   bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string        `bson:"name" json:"name"`

	// Jobs lists the ids of jobs filed under this category.
	Jobs []bson.ObjectID `bson:"jobs" json:"jobs"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
