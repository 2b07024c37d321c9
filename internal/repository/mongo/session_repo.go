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

const sessionCollectionName = "training_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new TrainingSession repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// CreateMany inserts the sessions of a program in one round trip and fills in their IDs.
func (r *mongoSessionRepository) CreateMany(ctx context.Context, sessions []*domain.TrainingSession) error {
	if len(sessions) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(sessions))
	for _, s := range sessions {
		if s.ProgramID == primitive.NilObjectID || s.UserID == primitive.NilObjectID || s.Name == "" {
			return errors.New("session requires programId, userId, and name")
		}
		s.ID = primitive.NewObjectID()
		s.CreatedAt = now
		s.UpdatedAt = now
		docs = append(docs, s)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// GetByID retrieves a single session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSession, error) {
	return findOne[domain.TrainingSession](ctx, r.collection, bson.M{"_id": id})
}

// GetByProgramID retrieves all sessions of a program in sequence order.
func (r *mongoSessionRepository) GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingSession, error) {
	filter := bson.M{"programId": programID}
	findOptions := options.Find().SetSort(bson.D{{Key: "sequence", Value: 1}})
	return findAll[domain.TrainingSession](ctx, r.collection, filter, findOptions)
}

// GetCompletedByUserID retrieves the completed sessions of a user, most recent first.
func (r *mongoSessionRepository) GetCompletedByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingSession, error) {
	filter := bson.M{
		"userId":      userID,
		"completed":   true,
		"performedAt": bson.M{"$ne": nil},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "performedAt", Value: -1}})
	return findAll[domain.TrainingSession](ctx, r.collection, filter, findOptions)
}

// Complete stores the performance fields of a session that is not completed yet. Program, user
// and schedule are left as they are.
func (r *mongoSessionRepository) Complete(ctx context.Context, session *domain.TrainingSession) error {
	if session.ID == primitive.NilObjectID {
		return errors.New("session ID is required for update")
	}

	filter := sessionCompletionFilter(session)
	updateDoc := bson.M{
		"$set": bson.M{
			"completed":   true,
			"performedAt": session.PerformedAt,
			"duration":    session.Duration,
			"notes":       session.Notes,
			"sets":        session.Sets,
			"updatedAt":   time.Now().UTC(),
		},
	}

	return matchedOrNotFound(r.collection.UpdateOne(ctx, filter, updateDoc))
}

func sessionCompletionFilter(session *domain.TrainingSession) bson.M {
	return bson.M{
		"_id":       session.ID,
		"userId":    session.UserID,
		"completed": bson.M{"$ne": true},
	}
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "programId", Value: 1}, {Key: "sequence", Value: 1}},
			Options: options.Index(),
		},
		{
			// streak and stats queries
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "completed", Value: 1}, {Key: "performedAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
