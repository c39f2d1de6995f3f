package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

const jobsCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type jobSkillDoc struct {
	SkillID  primitive.ObjectID `bson:"skill_id"`
	Name     string             `bson:"name"`
	Required bool               `bson:"required"`
	Weight   float64            `bson:"weight"`
}

type jobDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	HRProfileID   primitive.ObjectID `bson:"hr_profile_id"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description"`
	MinExperience int                `bson:"min_experience"`
	Skills        []jobSkillDoc      `bson:"skills"`
	CreatedAt     int64              `bson:"created_at"`
}

func (d *jobDoc) toDomain() domain.Job {
	skills := make([]domain.JobSkill, 0, len(d.Skills))
	for _, s := range d.Skills {
		skills = append(skills, domain.JobSkill{
			SkillID:  s.SkillID.Hex(),
			Name:     s.Name,
			Required: s.Required,
			Weight:   s.Weight,
		})
	}
	return domain.Job{
		ID:            d.ID.Hex(),
		HRProfileID:   d.HRProfileID.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		MinExperience: d.MinExperience,
		Skills:        skills,
		CreatedAt:     unixToTime(d.CreatedAt),
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	hrID, err := primitive.ObjectIDFromHex(job.HRProfileID)
	if err != nil {
		return nil, fmt.Errorf("invalid hr profile id: %w", err)
	}

	skills := make([]jobSkillDoc, 0, len(job.Skills))
	for _, s := range job.Skills {
		skillID, err := primitive.ObjectIDFromHex(s.SkillID)
		if err != nil {
			return nil, fmt.Errorf("invalid skill id: %w", err)
		}
		skills = append(skills, jobSkillDoc{
			SkillID:  skillID,
			Name:     s.Name,
			Required: s.Required,
			Weight:   s.Weight,
		})
	}

	doc := jobDoc{
		HRProfileID:   hrID,
		Title:         job.Title,
		Description:   job.Description,
		MinExperience: job.MinExperience,
		Skills:        skills,
		CreatedAt:     job.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *JobRepository) ListByHRProfile(ctx context.Context, hrProfileID string) ([]domain.Job, error) {
	hrID, err := primitive.ObjectIDFromHex(hrProfileID)
	if err != nil {
		return nil, fmt.Errorf("invalid hr profile id: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"hr_profile_id": hrID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []domain.Job
	for cursor.Next(ctx) {
		var doc jobDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}
