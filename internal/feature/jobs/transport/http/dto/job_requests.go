// Package dto defines the request payloads for the jobs feature.
package dto

// PostJobRequest is the payload of POST /job/post. Every field is
// required; company and categories carry hex document ids.
type PostJobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Experience   string   `json:"experience" binding:"required"`
	Salary       int      `json:"salary" binding:"required,gt=0"`
	Openings     int      `json:"openings" binding:"required,gt=0"`
	Requirements []string `json:"requirements" binding:"required,min=1"`
	JobType      string   `json:"job_type" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Categories   []string `json:"categories" binding:"required,min=1"`
}
