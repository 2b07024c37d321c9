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

const leaderboardStatsCollectionName = "leaderboard_stats"

// mongoLeaderboardStatsRepository keeps one stats document per user, keyed by the user ID.
type mongoLeaderboardStatsRepository struct {
	collection *mongo.Collection
}

func NewMongoLeaderboardStatsRepository(db *mongo.Database) repository.LeaderboardStatsRepository {
	return &mongoLeaderboardStatsRepository{
		collection: db.Collection(leaderboardStatsCollectionName),
	}
}

// Upsert replaces the user's stats document, creating it if needed.
func (r *mongoLeaderboardStatsRepository) Upsert(ctx context.Context, stats *domain.LeaderboardStats) error {
	if stats.UserID == primitive.NilObjectID {
		return errors.New("leaderboard stats require a user ID")
	}
	stats.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": stats.UserID}
	_, err := r.collection.ReplaceOne(ctx, filter, stats, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoLeaderboardStatsRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.LeaderboardStats, error) {
	return findOne[domain.LeaderboardStats](ctx, r.collection, bson.M{"_id": userID})
}

// GetByUserIDs returns the stats documents that exist for the given users.
func (r *mongoLeaderboardStatsRepository) GetByUserIDs(ctx context.Context, userIDs []primitive.ObjectID) ([]domain.LeaderboardStats, error) {
	if len(userIDs) == 0 {
		return []domain.LeaderboardStats{}, nil
	}
	return findAll[domain.LeaderboardStats](ctx, r.collection, bson.M{"_id": bson.M{"$in": userIDs}})
}
