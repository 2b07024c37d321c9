package leaderboard

import (
	"sort"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is one row of a leaderboard.
type Entry struct {
	UserID        primitive.ObjectID `json:"userId"`
	UserName      string             `json:"userName"`
	Rank          int                `json:"rank"`
	Value         float64            `json:"value"`
	Level         int                `json:"level"`
	IsCurrentUser bool               `json:"isCurrentUser"`
}

// Value picks the figure a leaderboard of type t compares. Users without stats score 0.
func Value(t domain.LeaderboardType, u *domain.User, stats *domain.LeaderboardStats) float64 {
	if t == domain.LeaderboardLevel {
		return float64(u.Level)
	}
	if stats == nil {
		return 0
	}
	switch t {
	case domain.LeaderboardCurrentStreak:
		return float64(stats.CurrentStreak)
	case domain.LeaderboardTotalVolume:
		return stats.TotalVolume
	default:
		return float64(stats.TotalSessionsCompleted)
	}
}

// Rank orders entries by value, highest first, and assigns 1-based ranks. Equal values keep
// their input order.
func Rank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
}

// RankOf returns the rank of userID, or 0 when absent.
func RankOf(entries []Entry, userID primitive.ObjectID) int {
	for _, e := range entries {
		if e.UserID == userID {
			return e.Rank
		}
	}
	return 0
}
