// Package dto defines the request payloads for the categories feature.
package dto

// CreateCategoryRequest is the payload of POST /job/category/create.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
