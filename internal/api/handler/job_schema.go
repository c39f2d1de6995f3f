package handler

import "time"

// jobSkillRequest is the explicit shape for skill bindings. Required and
// weight are optional with defaults applied by the service (true and 1);
// unknown or malformed shapes are rejected at bind/validate time instead of
// being passed through.
type jobSkillRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Required *bool    `json:"required"`
	Weight   *float64 `json:"weight"   validate:"omitempty,gt=0"`
}

type createJobRequest struct {
	Title         string            `json:"title"          validate:"required"`
	Description   string            `json:"description"    validate:"required"`
	MinExperience *int              `json:"min_experience" validate:"required,min=0"`
	Skills        []jobSkillRequest `json:"skills"         validate:"required,min=1,dive"`
}

type jobSkillResponse struct {
	SkillID  string  `json:"skill_id"`
	Name     string  `json:"name"`
	Required bool    `json:"required"`
	Weight   float64 `json:"weight"`
}

type jobResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	MinExperience int                `json:"min_experience"`
	Skills        []jobSkillResponse `json:"skills"`
	CreatedAt     time.Time          `json:"created_at"`
}

type listJobsResponse struct {
	Data []jobResponse `json:"data"`
}

type skillResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type listSkillsResponse struct {
	Data []skillResponse `json:"data"`
}
