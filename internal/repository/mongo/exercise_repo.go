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

const exerciseCollectionName = "exercises"

type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates the catalog repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" || exercise.CoachID.IsZero() {
		return primitive.NilObjectID, errors.New("exercise name and coach ID are required")
	}

	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()
	exercise.UpdatedAt = exercise.CreatedAt

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	return insertedObjectID(result)
}

func (r *mongoExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	return findOne[domain.Exercise](ctx, r.collection, bson.M{"_id": id})
}

// GetByCoachID lists the coach's own exercises, newest first.
func (r *mongoExerciseRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[domain.Exercise](ctx, r.collection, bson.M{"coachId": coachID}, opts)
}

// List returns the catalog entries matching filter, sorted by muscle group then name.
func (r *mongoExerciseRepository) List(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "muscleGroupId", Value: 1}, {Key: "name", Value: 1}})
	return findAll[domain.Exercise](ctx, r.collection, exerciseQuery(filter), opts)
}

// exerciseQuery translates a catalog filter into a MongoDB query document.
func exerciseQuery(filter repository.ExerciseFilter) bson.M {
	query := bson.M{}
	if filter.MuscleGroupID != nil {
		query["muscleGroupId"] = *filter.MuscleGroupID
	}
	if filter.CompoundOnly {
		query["compound"] = true
	}
	if filter.MaxDifficulty != "" {
		allowed := bson.A{""}
		for _, level := range []domain.ExperienceLevel{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced} {
			if (domain.Exercise{Difficulty: level}).SuitableFor(filter.MaxDifficulty) {
				allowed = append(allowed, level)
			}
		}
		// unrated entries have no difficulty field at all
		query["$or"] = bson.A{
			bson.M{"difficulty": bson.M{"$in": allowed}},
			bson.M{"difficulty": bson.M{"$exists": false}},
		}
	}
	return query
}

// Update rewrites the editable fields. The coachId in the filter keeps ownership fixed.
func (r *mongoExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.ID.IsZero() {
		return errors.New("exercise ID is required for update")
	}

	exercise.UpdatedAt = time.Now().UTC()
	filter := bson.M{"_id": exercise.ID, "coachId": exercise.CoachID}
	update := bson.M{
		"$set": bson.M{
			"name":          exercise.Name,
			"description":   exercise.Description,
			"muscleGroupId": exercise.MuscleGroupID,
			"difficulty":    exercise.Difficulty,
			"equipment":     exercise.Equipment,
			"compound":      exercise.Compound,
			"updatedAt":     exercise.UpdatedAt,
		},
	}
	return matchedOrNotFound(r.collection.UpdateOne(ctx, filter, update))
}

func (r *mongoExerciseRepository) Delete(ctx context.Context, id, coachID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "coachId": coachID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureExerciseIndexes backs the owner listing and the catalog sort.
// A coach cannot register two exercises with the same name.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "muscleGroupId", Value: 1}, {Key: "name", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
