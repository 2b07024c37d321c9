package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollectionName = "fitness_profiles"

type mongoFitnessProfileRepository struct {
	collection *mongo.Collection
}

func NewMongoFitnessProfileRepository(db *mongo.Database) repository.FitnessProfileRepository {
	return &mongoFitnessProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// GetByUserID retrieves the profile of a user.
func (r *mongoFitnessProfileRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.FitnessProfile, error) {
	return findOne[domain.FitnessProfile](ctx, r.collection, bson.M{"userId": userID})
}

// Upsert creates the user's profile or replaces its editable fields. CreatedAt and the ID are
// only written on insert.
func (r *mongoFitnessProfileRepository) Upsert(ctx context.Context, profile *domain.FitnessProfile) error {
	if profile.UserID == primitive.NilObjectID {
		return errors.New("profile requires a userId")
	}

	now := time.Now().UTC()
	filter := bson.M{"userId": profile.UserID}
	update := bson.M{
		"$set": bson.M{
			"age":               profile.Age,
			"weight":            profile.Weight,
			"targetWeight":      profile.TargetWeight,
			"trainingFrequency": profile.TrainingFrequency,
			"experienceLevel":   profile.ExperienceLevel,
			"goals":             profile.Goals,
			"musclePriorities":  profile.MusclePriorities,
			"trainingDays":      profile.TrainingDays,
			"updatedAt":         now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"createdAt": now,
		},
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after)
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(profile); err != nil {
		return err
	}
	return nil
}

// EnsureProfileIndexes creates the unique per-user index.
func EnsureProfileIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
