// Package entity defines the domain entities for the jobs feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	companyentity "jobboard_backend/internal/feature/companies/domain/entity"
)

// Job is a posting on the board. Company and Categories are references
// validated at creation time; Applicants holds back-references to the
// Application documents filed against this job.
type Job struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Location     string        `bson:"location" json:"location"`
	Experience   string        `bson:"experience" json:"experience"`
	Salary       int           `bson:"salary" json:"salary"`
	Openings     int           `bson:"openings" json:"openings"`
	Requirements []string      `bson:"requirements" json:"requirements"`
	JobType      string        `bson:"job_type" json:"job_type"`

	Company    bson.ObjectID   `bson:"company" json:"company"`
	Categories []bson.ObjectID `bson:"categories" json:"categories"`
	PostedBy   bson.ObjectID   `bson:"posted_by" json:"posted_by"`
	Applicants []bson.ObjectID `bson:"applicants" json:"applicants"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// JobWithCompany is the listing view with the referenced company populated
// by a $lookup stage.
type JobWithCompany struct {
	Job        `bson:",inline"`
	CompanyDoc *companyentity.Company `bson:"company_doc" json:"company_doc,omitempty"`
}
