// Package api defines the shared request/response envelope for the HTTP API.
package api

import "github.com/gin-gonic/gin"

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK writes a success envelope with the given status, message and payload.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope with the given status and message.
// Internal error details are logged by the caller, never echoed here.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}
