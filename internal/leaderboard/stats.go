package leaderboard

import (
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Aggregate computes the leaderboard stats of a user from their sessions. Sessions that are not
// completed are ignored; streaks only consider sessions with a performed time.
func Aggregate(userID primitive.ObjectID, sessions []domain.TrainingSession, now time.Time) domain.LeaderboardStats {
	stats := domain.LeaderboardStats{UserID: userID}

	var performed []time.Time
	durationSum, durationCount := 0, 0
	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		stats.TotalSessionsCompleted++

		for _, set := range s.Sets {
			stats.TotalVolume += set.Volume()
		}
		if s.Duration != nil {
			durationSum += *s.Duration
			durationCount++
		}
		if s.PerformedAt != nil {
			performed = append(performed, *s.PerformedAt)
			if stats.LastWorkoutDate == nil || s.PerformedAt.After(*stats.LastWorkoutDate) {
				last := *s.PerformedAt
				stats.LastWorkoutDate = &last
			}
		}
	}

	if durationCount > 0 {
		avg := float64(durationSum) / float64(durationCount)
		stats.AverageSessionDuration = &avg
	}

	streak := CalculateStreak(performed, now)
	stats.CurrentStreak = streak.Current
	stats.LongestStreak = streak.Longest
	return stats
}
