package mongo

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

const skillsCollection = "skills"

// SkillRepository persists the skill catalog. Uniqueness is enforced on the
// lowercased name key so "Go" and "go" are the same skill; the display name
// keeps the casing of the first writer.
type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(skillsCollection)}
}

func (r *SkillRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create skill index: %w", err)
	}
	return nil
}

type skillDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	NameKey  string             `bson:"name_key"`
	Category string             `bson:"category,omitempty"`
}

func (d *skillDoc) toDomain() domain.Skill {
	return domain.Skill{ID: d.ID.Hex(), Name: d.Name, Category: d.Category}
}

func (r *SkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_key", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer cursor.Close(ctx)

	var skills []domain.Skill
	for cursor.Next(ctx) {
		var doc skillDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode skill: %w", err)
		}
		skills = append(skills, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}
	return skills, nil
}

// FindOrCreate resolves a skill by its normalized name, inserting it when
// absent. The upsert makes concurrent first uses of the same name converge on
// a single document.
func (r *SkillRepository) FindOrCreate(ctx context.Context, name, category string) (*domain.Skill, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	setOnInsert := bson.M{"name": strings.TrimSpace(name)}
	if category != "" {
		setOnInsert["category"] = category
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc skillDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"name_key": key},
		bson.M{"$setOnInsert": setOnInsert},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("find or create skill: %w", err)
	}

	skill := doc.toDomain()
	return &skill, nil
}

// Upsert creates or refreshes a catalog entry, updating the category of an
// existing skill. Used by the seeder.
func (r *SkillRepository) Upsert(ctx context.Context, name, category string) error {
	key := strings.ToLower(strings.TrimSpace(name))

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"name_key": key},
		bson.M{
			"$set":         bson.M{"category": category},
			"$setOnInsert": bson.M{"name": strings.TrimSpace(name)},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert skill %q: %w", name, err)
	}
	return nil
}
