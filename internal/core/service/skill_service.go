package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talenthub/recruiting-api/internal/core/domain"
	"github.com/talenthub/recruiting-api/internal/core/ports"
)

// SkillCatalog serves the skill catalog through a read-through cache. Cache
// failures degrade to repository reads; they never fail the request.
type SkillCatalog struct {
	repo   ports.SkillRepository
	cache  ports.SkillCache
	logger zerolog.Logger
}

func NewSkillCatalog(repo ports.SkillRepository, cache ports.SkillCache, logger zerolog.Logger) *SkillCatalog {
	return &SkillCatalog{repo: repo, cache: cache, logger: logger}
}

func (s *SkillCatalog) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	if s.cache != nil {
		skills, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("skill cache read failed")
		} else if hit {
			return skills, nil
		}
	}

	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, skills); err != nil {
			s.logger.Warn().Err(err).Msg("skill cache write failed")
		}
	}
	return skills, nil
}
