package ports

import (
	"context"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

// JobRepository defines persistence for job openings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	ListByHRProfile(ctx context.Context, hrProfileID string) ([]domain.Job, error)
}

// SkillRepository defines persistence for the skill catalog.
type SkillRepository interface {
	List(ctx context.Context) ([]domain.Skill, error)
	// FindOrCreate resolves a skill by its normalized name, creating it when
	// absent. Category is only applied on creation.
	FindOrCreate(ctx context.Context, name, category string) (*domain.Skill, error)
	Upsert(ctx context.Context, name, category string) error
}

// SkillCache is a read-through cache in front of the skill catalog.
type SkillCache interface {
	Get(ctx context.Context) ([]domain.Skill, bool, error)
	Set(ctx context.Context, skills []domain.Skill) error
	Invalidate(ctx context.Context) error
}
