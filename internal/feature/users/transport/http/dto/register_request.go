// Package dto defines the request payloads for the users feature.
package dto

// RegisterRequest is the payload of POST /user/auth/create. It binds from
// multipart form fields so the optional profile-image file can ride along.
// The profile fields are optional; education, experience and social links
// bind from JSON bodies only.
type RegisterRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Phone    string `form:"phone" json:"phone" binding:"required,len=10,numeric"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
	Role     string `form:"role" json:"role" binding:"required,oneof=user recruiter"`

	Bio    string   `form:"bio" json:"bio"`
	Skills []string `form:"skills" json:"skills"`

	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Social     *SocialEntry      `json:"social"`
}
