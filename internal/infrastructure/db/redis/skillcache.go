package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

const (
	skillCacheKey = "skills:catalog"
	skillCacheTTL = 5 * time.Minute
)

// SkillCache is a TTL'd cache of the full skill catalog. The catalog is small
// and read on every job form load, so one key holding the whole list is
// enough.
type SkillCache struct {
	client *redis.Client
}

func NewSkillCache(client *redis.Client) *SkillCache {
	return &SkillCache{client: client}
}

// Get returns the cached catalog and whether the key was present.
func (c *SkillCache) Get(ctx context.Context) ([]domain.Skill, bool, error) {
	raw, err := c.client.Get(ctx, skillCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("skill cache get: %w", err)
	}

	var skills []domain.Skill
	if err := json.Unmarshal(raw, &skills); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return skills, true, nil
}

// Set stores the catalog with the cache TTL.
func (c *SkillCache) Set(ctx context.Context, skills []domain.Skill) error {
	raw, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("skill cache marshal: %w", err)
	}
	return c.client.Set(ctx, skillCacheKey, raw, skillCacheTTL).Err()
}

// Invalidate drops the cached catalog, forcing the next read through to the
// repository.
func (c *SkillCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, skillCacheKey).Err()
}
