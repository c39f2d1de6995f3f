package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/talenthub/recruiting-api/internal/core/domain"
	"github.com/talenthub/recruiting-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs   []*domain.Job
	nextID int
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	clone := *job
	clone.ID = fmt.Sprintf("job%d", r.nextID)
	r.jobs = append(r.jobs, &clone)
	return &clone, nil
}

func (r *stubJobRepo) ListByHRProfile(_ context.Context, hrProfileID string) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if j.HRProfileID == hrProfileID {
			out = append(out, *j)
		}
	}
	return out, nil
}

type stubSkillRepo struct {
	skills map[string]*domain.Skill // keyed by lowercased name
	nextID int
}

func newStubSkillRepo() *stubSkillRepo {
	return &stubSkillRepo{skills: make(map[string]*domain.Skill)}
}

func (r *stubSkillRepo) List(_ context.Context) ([]domain.Skill, error) {
	var out []domain.Skill
	for _, s := range r.skills {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSkillRepo) FindOrCreate(_ context.Context, name, category string) (*domain.Skill, error) {
	key := strings.ToLower(name)
	if s, ok := r.skills[key]; ok {
		return s, nil
	}
	r.nextID++
	s := &domain.Skill{ID: fmt.Sprintf("sk%d", r.nextID), Name: name, Category: category}
	r.skills[key] = s
	return s, nil
}

func (r *stubSkillRepo) Upsert(_ context.Context, name, category string) error {
	_, err := r.FindOrCreate(context.Background(), name, category)
	return err
}

type stubProfileRepo struct {
	hrByUser map[string]*domain.HRProfile
}

func (r *stubProfileRepo) FindHRProfileByUserID(_ context.Context, userID string) (*domain.HRProfile, error) {
	if p, ok := r.hrByUser[userID]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) FindCandidateProfileByUserID(_ context.Context, userID string) (*domain.CandidateProfile, error) {
	return nil, domain.ErrProfileNotFound
}

func newTestJobService() (*JobService, *stubJobRepo, *stubSkillRepo) {
	jobs := &stubJobRepo{}
	skills := newStubSkillRepo()
	profiles := &stubProfileRepo{hrByUser: map[string]*domain.HRProfile{
		"u1": {ID: "hr1", UserID: "u1"},
	}}
	return NewJobService(jobs, skills, profiles, nil, zerolog.Nop()), jobs, skills
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestCreateJob_ResolvesSkillsAndDefaults(t *testing.T) {
	svc, _, skills := newTestJobService()
	_, _ = skills.FindOrCreate(context.Background(), "Go", "Core Tech")

	job, err := svc.CreateJob(context.Background(), ports.CreateJobInput{
		UserID:        "u1",
		Title:         "Backend Engineer",
		Description:   "Builds services",
		MinExperience: 3,
		Skills: []ports.JobSkillInput{
			{Name: "Go"},
			{Name: "PostgreSQL", Required: boolPtr(false), Weight: floatPtr(0.5)},
		},
	})
	if err != nil {
		t.Fatalf("create job failed: %v", err)
	}
	if job.HRProfileID != "hr1" {
		t.Fatalf("job not bound to caller profile: %+v", job)
	}
	if len(job.Skills) != 2 {
		t.Fatalf("expected 2 skill bindings, got %d", len(job.Skills))
	}
	if job.Skills[0].SkillID == "" || !job.Skills[0].Required || job.Skills[0].Weight != 1 {
		t.Fatalf("defaults not applied: %+v", job.Skills[0])
	}
	if job.Skills[1].Required || job.Skills[1].Weight != 0.5 {
		t.Fatalf("explicit values not honored: %+v", job.Skills[1])
	}
	// Unknown skill was created in the catalog.
	if _, ok := skills.skills["postgresql"]; !ok {
		t.Fatalf("expected new skill to be created")
	}
}

func TestCreateJob_ValidationFailures(t *testing.T) {
	svc, _, _ := newTestJobService()

	cases := []ports.CreateJobInput{
		{UserID: "u1", Description: "d", MinExperience: 1, Skills: []ports.JobSkillInput{{Name: "Go"}}},
		{UserID: "u1", Title: "t", MinExperience: 1, Skills: []ports.JobSkillInput{{Name: "Go"}}},
		{UserID: "u1", Title: "t", Description: "d", MinExperience: -1, Skills: []ports.JobSkillInput{{Name: "Go"}}},
		{UserID: "u1", Title: "t", Description: "d", MinExperience: 1},
		{UserID: "u1", Title: "t", Description: "d", MinExperience: 1, Skills: []ports.JobSkillInput{{Name: "  "}}},
		{UserID: "u1", Title: "t", Description: "d", MinExperience: 1, Skills: []ports.JobSkillInput{{Name: "Go", Weight: floatPtr(0)}}},
	}
	for i, input := range cases {
		if _, err := svc.CreateJob(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestCreateJob_NoHRProfile(t *testing.T) {
	svc, _, _ := newTestJobService()

	_, err := svc.CreateJob(context.Background(), ports.CreateJobInput{
		UserID:      "stranger",
		Title:       "t",
		Description: "d",
		Skills:      []ports.JobSkillInput{{Name: "Go"}},
	})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestListJobsForUser_OnlyOwnJobs(t *testing.T) {
	svc, jobs, _ := newTestJobService()
	jobs.jobs = []*domain.Job{
		{ID: "j1", HRProfileID: "hr1", Title: "mine"},
		{ID: "j2", HRProfileID: "hr2", Title: "theirs"},
	}

	got, err := svc.ListJobsForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "j1" {
		t.Fatalf("unexpected jobs: %+v", got)
	}
}

type flakySkillCache struct {
	skills        []domain.Skill
	hit           bool
	getErr        error
	sets          int
	invalidations int
}

func (c *flakySkillCache) Get(_ context.Context) ([]domain.Skill, bool, error) {
	return c.skills, c.hit, c.getErr
}

func (c *flakySkillCache) Set(_ context.Context, skills []domain.Skill) error {
	c.sets++
	return nil
}

func (c *flakySkillCache) Invalidate(_ context.Context) error {
	c.invalidations++
	return nil
}

func TestCreateJob_InvalidatesSkillCache(t *testing.T) {
	jobs := &stubJobRepo{}
	cache := &flakySkillCache{}
	profiles := &stubProfileRepo{hrByUser: map[string]*domain.HRProfile{
		"u1": {ID: "hr1", UserID: "u1"},
	}}
	svc := NewJobService(jobs, newStubSkillRepo(), profiles, cache, zerolog.Nop())

	_, err := svc.CreateJob(context.Background(), ports.CreateJobInput{
		UserID:        "u1",
		Title:         "Backend Engineer",
		Description:   "Builds services",
		MinExperience: 1,
		Skills:        []ports.JobSkillInput{{Name: "Go"}},
	})
	if err != nil {
		t.Fatalf("create job failed: %v", err)
	}
	if cache.invalidations != 1 {
		t.Fatalf("expected one cache invalidation, got %d", cache.invalidations)
	}
}

func TestSkillCatalog_CacheHitSkipsRepository(t *testing.T) {
	cache := &flakySkillCache{skills: []domain.Skill{{ID: "sk1", Name: "Go"}}, hit: true}
	catalog := NewSkillCatalog(newStubSkillRepo(), cache, zerolog.Nop())

	skills, err := catalog.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "Go" {
		t.Fatalf("expected cached skills, got %+v", skills)
	}
}

func TestSkillCatalog_CacheErrorFallsBack(t *testing.T) {
	repo := newStubSkillRepo()
	_, _ = repo.FindOrCreate(context.Background(), "Docker", "Core Tech")
	cache := &flakySkillCache{getErr: errors.New("redis down")}
	catalog := NewSkillCatalog(repo, cache, zerolog.Nop())

	skills, err := catalog.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected repository skills, got %+v", skills)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache refresh after miss")
	}
}
