package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/recruiting-api/internal/core/domain"
	"github.com/talenthub/recruiting-api/internal/core/ports"
)

// JobService implements job publishing for HR users. Skill bindings arrive as
// explicit validated structs and are resolved against the catalog by
// normalized name; unknown skills are created on first use.
type JobService struct {
	jobs     ports.JobRepository
	skills   ports.SkillRepository
	profiles ports.ProfileRepository
	cache    ports.SkillCache
	logger   zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, skills ports.SkillRepository, profiles ports.ProfileRepository, cache ports.SkillCache, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, skills: skills, profiles: profiles, cache: cache, logger: logger}
}

func (s *JobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrValidation)
	}
	if input.MinExperience < 0 {
		return nil, fmt.Errorf("%w: min_experience must not be negative", domain.ErrValidation)
	}
	if len(input.Skills) == 0 {
		return nil, fmt.Errorf("%w: at least one skill is required", domain.ErrValidation)
	}

	profile, err := s.profiles.FindHRProfileByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	bindings := make([]domain.JobSkill, 0, len(input.Skills))
	for _, sk := range input.Skills {
		name := strings.TrimSpace(sk.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: skill name must not be empty", domain.ErrValidation)
		}

		required := true
		if sk.Required != nil {
			required = *sk.Required
		}
		weight := 1.0
		if sk.Weight != nil {
			weight = *sk.Weight
		}
		if weight <= 0 {
			return nil, fmt.Errorf("%w: skill weight must be greater than zero", domain.ErrValidation)
		}

		skill, err := s.skills.FindOrCreate(ctx, name, "")
		if err != nil {
			return nil, fmt.Errorf("resolve skill %q: %w", name, err)
		}
		bindings = append(bindings, domain.JobSkill{
			SkillID:  skill.ID,
			Name:     skill.Name,
			Required: required,
			Weight:   weight,
		})
	}

	job := &domain.Job{
		HRProfileID:   profile.ID,
		Title:         input.Title,
		Description:   input.Description,
		MinExperience: input.MinExperience,
		Skills:        bindings,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	// Skill resolution may have added catalog entries; drop the cached
	// catalog so the next listing sees them.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("skill cache invalidation failed")
		}
	}

	s.logger.Info().Str("job_id", created.ID).Str("hr_profile_id", profile.ID).Int("skills", len(bindings)).Msg("job created")
	return created, nil
}

func (s *JobService) ListJobsForUser(ctx context.Context, userID string) ([]domain.Job, error) {
	profile, err := s.profiles.FindHRProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.jobs.ListByHRProfile(ctx, profile.ID)
}
