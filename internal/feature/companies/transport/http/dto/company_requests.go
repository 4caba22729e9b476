// Package dto defines the request payloads for the companies feature.
package dto

// CreateCompanyRequest is the payload of POST /company/create.
// Every field is required.
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Website     string `json:"website" binding:"required,url"`
	Location    string `json:"location" binding:"required"`
}
