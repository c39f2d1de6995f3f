package domain

import "time"

// Skill is a catalog entry jobs reference by id. Names are stored trimmed
// with display casing preserved; uniqueness is case-insensitive via the
// lowercased name key.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// JobSkill binds a catalog skill to a job with a matching weight. Weight and
// Required drive downstream candidate scoring.
type JobSkill struct {
	SkillID  string  `json:"skill_id"`
	Name     string  `json:"name"`
	Required bool    `json:"required"`
	Weight   float64 `json:"weight"`
}

// Job is an opening published by an HR profile.
type Job struct {
	ID            string     `json:"id"`
	HRProfileID   string     `json:"hr_profile_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	MinExperience int        `json:"min_experience"`
	Skills        []JobSkill `json:"skills"`
	CreatedAt     time.Time  `json:"created_at"`
}
