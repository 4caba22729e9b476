// Package dto defines the request payloads for the applications feature.
package dto

// ApplyRequest is the payload of POST /application/apply/:jobId. The
// resume URL is required; the cover letter is optional.
type ApplyRequest struct {
	Resume      string `json:"resume" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

// UpdateStatusRequest is the payload of
// PATCH /application/status/:applicationId/update.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
