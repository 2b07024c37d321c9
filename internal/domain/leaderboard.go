package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeaderboardType string

const (
	LeaderboardTotalSessions LeaderboardType = "TOTAL_SESSIONS"
	LeaderboardCurrentStreak LeaderboardType = "CURRENT_STREAK"
	LeaderboardLevel         LeaderboardType = "LEVEL"
	LeaderboardTotalVolume   LeaderboardType = "TOTAL_VOLUME"
)

func (t LeaderboardType) Valid() bool {
	switch t {
	case LeaderboardTotalSessions, LeaderboardCurrentStreak, LeaderboardLevel, LeaderboardTotalVolume:
		return true
	}
	return false
}

// LeaderboardStats is the precomputed per-user aggregate the leaderboards read from.
type LeaderboardStats struct {
	UserID                 primitive.ObjectID `bson:"_id" json:"userId"` // One document per user
	TotalSessionsCompleted int                `bson:"totalSessionsCompleted" json:"totalSessionsCompleted"`
	CurrentStreak          int                `bson:"currentStreak" json:"currentStreak"`
	LongestStreak          int                `bson:"longestStreak" json:"longestStreak"`
	TotalVolume            float64            `bson:"totalVolume" json:"totalVolume"`
	AverageSessionDuration *float64           `bson:"averageSessionDuration,omitempty" json:"averageSessionDuration,omitempty"`
	LastWorkoutDate        *time.Time         `bson:"lastWorkoutDate,omitempty" json:"lastWorkoutDate,omitempty"`
	UpdatedAt              time.Time          `bson:"updatedAt" json:"updatedAt"`
}
