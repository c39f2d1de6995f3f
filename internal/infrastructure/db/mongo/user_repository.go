package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

const (
	usersCollection             = "users"
	hrProfilesCollection        = "hr_profiles"
	candidateProfilesCollection = "candidate_profiles"

	emailIndexName    = "email_unique"
	usernameIndexName = "username_unique"
)

// UserRepository persists identities and their role profiles. The client is
// kept next to the collections because CreateWithProfile runs a
// multi-document transaction.
type UserRepository struct {
	client            *mongo.Client
	users             *mongo.Collection
	hrProfiles        *mongo.Collection
	candidateProfiles *mongo.Collection
}

func NewUserRepository(client *mongo.Client, db *mongo.Database) *UserRepository {
	return &UserRepository{
		client:            client,
		users:             db.Collection(usersCollection),
		hrProfiles:        db.Collection(hrProfilesCollection),
		candidateProfiles: db.Collection(candidateProfilesCollection),
	}
}

// EnsureIndexes creates the unique indexes uniqueness checks rely on. The
// service-level lookups are advisory; these indexes are the authority under
// concurrent registration.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(emailIndexName),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(usernameIndexName),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	for _, coll := range []*mongo.Collection{r.hrProfiles, r.candidateProfiles} {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("create profile index: %w", err)
		}
	}
	return nil
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Fullname     string             `bson:"fullname"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	CreatedAt    int64              `bson:"created_at"`
}

type hrProfileDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Company   string             `bson:"company,omitempty"`
	CreatedAt int64              `bson:"created_at"`
}

type candidateProfileDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id"`
	YearsExperience int                `bson:"years_experience,omitempty"`
	CreatedAt       int64              `bson:"created_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Fullname:     d.Fullname,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		CreatedAt:    unixToTime(d.CreatedAt),
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByIdentifier matches the identifier against either the email or the
// username field.
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": identifier},
		bson.M{"username": identifier},
	}})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// CreateWithProfile inserts the user document and the profile document
// matching its role inside one transaction: if either write fails, neither
// persists. Requires the deployment to support sessions (replica set).
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		doc := userDoc{
			Username:     user.Username,
			Fullname:     user.Fullname,
			Email:        user.Email,
			PasswordHash: user.PasswordHash,
			Role:         string(user.Role),
			CreatedAt:    user.CreatedAt.Unix(),
		}

		res, err := r.users.InsertOne(sc, doc)
		if err != nil {
			return nil, err
		}
		userID := res.InsertedID.(primitive.ObjectID)

		switch user.Role {
		case domain.RoleHR:
			_, err = r.hrProfiles.InsertOne(sc, hrProfileDoc{
				UserID:    userID,
				CreatedAt: user.CreatedAt.Unix(),
			})
		case domain.RoleCandidate:
			_, err = r.candidateProfiles.InsertOne(sc, candidateProfileDoc{
				UserID:    userID,
				CreatedAt: user.CreatedAt.Unix(),
			})
		default:
			err = fmt.Errorf("no profile collection for role %q", user.Role)
		}
		if err != nil {
			return nil, err
		}
		return userID, nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyToConflict(err)
		}
		return nil, fmt.Errorf("create user with profile: %w", err)
	}

	created := *user
	created.ID = result.(primitive.ObjectID).Hex()
	return &created, nil
}

// duplicateKeyToConflict maps a unique index violation to the conflicting
// field using the index name carried in the server error message.
func duplicateKeyToConflict(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, usernameIndexName):
		return domain.ErrUsernameTaken
	default:
		return domain.ErrEmailTaken
	}
}

func (r *UserRepository) FindHRProfileByUserID(ctx context.Context, userID string) (*domain.HRProfile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var doc hrProfileDoc
	if err := r.hrProfiles.FindOne(ctx, bson.M{"user_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find hr profile: %w", err)
	}
	return &domain.HRProfile{
		ID:        doc.ID.Hex(),
		UserID:    doc.UserID.Hex(),
		Company:   doc.Company,
		CreatedAt: unixToTime(doc.CreatedAt),
	}, nil
}

func (r *UserRepository) FindCandidateProfileByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var doc candidateProfileDoc
	if err := r.candidateProfiles.FindOne(ctx, bson.M{"user_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find candidate profile: %w", err)
	}
	return &domain.CandidateProfile{
		ID:              doc.ID.Hex(),
		UserID:          doc.UserID.Hex(),
		YearsExperience: doc.YearsExperience,
		CreatedAt:       unixToTime(doc.CreatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
