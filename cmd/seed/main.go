package main

import (
	"context"
	"time"

	"github.com/talenthub/recruiting-api/internal/infrastructure/config"
	mongodb "github.com/talenthub/recruiting-api/internal/infrastructure/db/mongo"
	"github.com/talenthub/recruiting-api/pkg/logger"
)

const skillCategory = "Core Tech"

// catalog is the baseline skill set offered to HR users when composing job
// openings. Upserts are idempotent, so re-running the seeder is safe.
var catalog = []string{
	"Node.js", "React", "MongoDB", "PostgreSQL", "Docker",
	"AWS", "Python", "Django", "TypeScript", "Redis",
	"JavaScript", "Next.js", "Express.js", "NestJS", "GraphQL",
	"REST API", "MySQL", "SQLite", "Git", "GitHub",
	"CI/CD", "Kubernetes", "Linux", "Bash", "HTML",
	"CSS", "Tailwind CSS", "Sass", "Jest", "Cypress",
	"Playwright", "Java", "Spring Boot", "C#", ".NET",
	"Go", "PHP", "Laravel", "Firebase", "Terraform",
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	skillRepo := mongodb.NewSkillRepository(db)
	if err := skillRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create skill indexes")
	}

	for _, name := range catalog {
		if err := skillRepo.Upsert(ctx, name, skillCategory); err != nil {
			log.Fatal().Err(err).Str("skill", name).Msg("skill upsert failed")
		}
	}

	log.Info().Int("count", len(catalog)).Msg("skill catalog seeded")
}
