package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devlink/social-api/internal/core/domain"
)

const profilesCollection = "profiles"

// ProfileRepository implements ports.ProfileRepository using MongoDB. One
// document per user, enforced by a unique index on the user field.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

type mongoProfile struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	User           string              `bson:"user"`
	Company        string              `bson:"company,omitempty"`
	Website        string              `bson:"website,omitempty"`
	Location       string              `bson:"location,omitempty"`
	Status         string              `bson:"status"`
	Skills         []string            `bson:"skills"`
	Bio            string              `bson:"bio,omitempty"`
	GithubUsername string              `bson:"githubusername,omitempty"`
	Social         domain.Social       `bson:"social"`
	Experience     []domain.Experience `bson:"experience"`
	Education      []domain.Education  `bson:"education"`
	UpdatedAt      time.Time           `bson:"updated_at"`
}

func (mp *mongoProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:             mp.ID.Hex(),
		User:           mp.User,
		Company:        mp.Company,
		Website:        mp.Website,
		Location:       mp.Location,
		Status:         mp.Status,
		Skills:         mp.Skills,
		Bio:            mp.Bio,
		GithubUsername: mp.GithubUsername,
		Social:         mp.Social,
		Experience:     mp.Experience,
		Education:      mp.Education,
		UpdatedAt:      mp.UpdatedAt,
	}
}

// Upsert creates the profile when absent, otherwise replaces the settable
// fields. Experience and education lists are only seeded on insert; upserts
// never touch them.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"company":        profile.Company,
			"website":        profile.Website,
			"location":       profile.Location,
			"status":         profile.Status,
			"skills":         profile.Skills,
			"bio":            profile.Bio,
			"githubusername": profile.GithubUsername,
			"social":         profile.Social,
			"updated_at":     profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"user":       profile.User,
			"experience": []domain.Experience{},
			"education":  []domain.Education{},
		},
	}

	var mp mongoProfile
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"user": profile.User}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)).Decode(&mp)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProfileRepository) FindByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	profiles := []*domain.Profile{}
	for cur.Next(ctx) {
		var mp mongoProfile
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		profiles = append(profiles, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// DeleteByUser removes the user's profile. Deleting an absent profile is not
// an error; the cascade delete stays best-effort.
func (r *ProfileRepository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"user": userID}); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// PushExperience prepends the entry for an existing profile. The profile
// existence check is the update filter itself; there is no auto-create.
func (r *ProfileRepository) PushExperience(ctx context.Context, userID string, entry domain.Experience) (*domain.Profile, error) {
	return r.push(ctx, userID, "experience", entry)
}

func (r *ProfileRepository) PullExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	return r.pull(ctx, userID, "experience", entryID)
}

func (r *ProfileRepository) PushEducation(ctx context.Context, userID string, entry domain.Education) (*domain.Profile, error) {
	return r.push(ctx, userID, "education", entry)
}

func (r *ProfileRepository) PullEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	return r.pull(ctx, userID, "education", entryID)
}

func (r *ProfileRepository) push(ctx context.Context, userID, field string, entry any) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$push": bson.M{field: bson.M{
		"$each":     []any{entry},
		"$position": 0,
	}}}

	var mp mongoProfile
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"user": userID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("push %s: %w", field, err)
	}
	return mp.toDomain(), nil
}

func (r *ProfileRepository) pull(ctx context.Context, userID, field, entryID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user": userID, field + ".id": entryID}
	update := bson.M{"$pull": bson.M{field: bson.M{"id": entryID}}}

	var mp mongoProfile
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Entry filter failed; find out whether the profile itself exists.
			n, cerr := r.coll.CountDocuments(ctx, bson.M{"user": userID})
			if cerr != nil {
				return nil, fmt.Errorf("profile lookup: %w", cerr)
			}
			if n == 0 {
				return nil, domain.ErrProfileNotFound
			}
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("pull %s: %w", field, err)
	}
	return mp.toDomain(), nil
}

// EnsureIndexes creates the unique per-user index.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: optionsUnique(),
	})
	return err
}
