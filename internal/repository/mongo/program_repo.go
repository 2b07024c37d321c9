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

const programCollectionName = "training_programs"

// mongoProgramRepository implements repository.ProgramRepository
type mongoProgramRepository struct {
	collection *mongo.Collection
}

// NewMongoProgramRepository creates a new TrainingProgram repository.
func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		collection: db.Collection(programCollectionName),
	}
}

// Create inserts a new training program.
func (r *mongoProgramRepository) Create(ctx context.Context, program *domain.TrainingProgram) (primitive.ObjectID, error) {
	if program.UserID == primitive.NilObjectID || program.Name == "" || program.Template == "" {
		return primitive.NilObjectID, errors.New("program requires userId, name, and template")
	}
	program.ID = primitive.NewObjectID()
	if program.Status == "" {
		program.Status = domain.ProgramActive
	}
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, program)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedObjectID(result)
}

// GetByID retrieves a single training program by its ID.
func (r *mongoProgramRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingProgram, error) {
	return findOne[domain.TrainingProgram](ctx, r.collection, bson.M{"_id": id})
}

// GetByUserID retrieves all programs of a user, newest first.
func (r *mongoProgramRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingProgram, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[domain.TrainingProgram](ctx, r.collection, bson.M{"userId": userID}, findOptions)
}

// ArchiveActive archives every active program of the user other than keepID.
func (r *mongoProgramRepository) ArchiveActive(ctx context.Context, userID, keepID primitive.ObjectID) (int64, error) {
	filter := archiveFilter(userID, keepID)
	update := bson.M{"$set": bson.M{"status": domain.ProgramArchived, "updatedAt": time.Now().UTC()}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// UpdateStatus sets the status of a program owned by userID.
func (r *mongoProgramRepository) UpdateStatus(ctx context.Context, id, userID primitive.ObjectID, status domain.ProgramStatus) error {
	filter := bson.M{"_id": id, "userId": userID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}

	return matchedOrNotFound(r.collection.UpdateOne(ctx, filter, update))
}

// Delete removes a program owned by userID. Its sessions are not touched.
func (r *mongoProgramRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func archiveFilter(userID, keepID primitive.ObjectID) bson.M {
	return bson.M{
		"_id":    bson.M{"$ne": keepID},
		"userId": userID,
		"status": domain.ProgramActive,
	}
}

// EnsureProgramIndexes creates necessary indexes. Call during startup.
func EnsureProgramIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// listing and archiving both filter on the user, archiving also on status
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
