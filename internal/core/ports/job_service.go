package ports

import (
	"context"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

// JobSkillInput is a validated skill binding in a job creation request.
// Required and Weight are pointers so absent values can take their defaults
// (required=true, weight=1) without conflating "absent" with zero values.
type JobSkillInput struct {
	Name     string
	Required *bool
	Weight   *float64
}

// CreateJobInput carries a job creation request from an authenticated HR user.
type CreateJobInput struct {
	UserID        string
	Title         string
	Description   string
	MinExperience int
	Skills        []JobSkillInput
}

// JobService implements HR job publishing.
type JobService interface {
	CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	ListJobsForUser(ctx context.Context, userID string) ([]domain.Job, error)
}

// SkillService exposes the skill catalog.
type SkillService interface {
	ListSkills(ctx context.Context) ([]domain.Skill, error)
}
