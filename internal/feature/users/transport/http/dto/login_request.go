package dto

// LoginRequest is the payload of POST /user/auth/login. The declared role
// must match the stored one for the login to succeed.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=user recruiter"`
}
