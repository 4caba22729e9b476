package dto

// UpdateProfileRequest is the payload of PATCH /user/profile/update.
// Every field is optional; absent fields leave the stored value unchanged.
// Education, experience and social links bind from JSON bodies only; the
// flat fields also bind from multipart forms when a file rides along.
type UpdateProfileRequest struct {
	Name   string   `form:"name" json:"name"`
	Email  string   `form:"email" json:"email" binding:"omitempty,email"`
	Phone  string   `form:"phone" json:"phone" binding:"omitempty,len=10,numeric"`
	Bio    string   `form:"bio" json:"bio"`
	Skills []string `form:"skills" json:"skills"`

	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Social     *SocialEntry      `json:"social"`
}

// EducationEntry mirrors entity.Education for request binding.
type EducationEntry struct {
	Institution  string `json:"institution" binding:"required"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartYear    int    `json:"start_year"`
	EndYear      int    `json:"end_year"`
}

// ExperienceEntry mirrors entity.Experience. Company is a hex company id.
type ExperienceEntry struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
}

// SocialEntry mirrors entity.SocialLinks.
type SocialEntry struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Twitter   string `json:"twitter"`
	Portfolio string `json:"portfolio"`
}
