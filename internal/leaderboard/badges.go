package leaderboard

import (
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

// Hours (UTC) that count towards the time of day badges.
const (
	earlyBeforeHour = 8
	lateFromHour    = 22
	timeOfDayTarget = 10
)

// BadgeStats are the counters badge requirements are checked against.
type BadgeStats struct {
	Sessions      int
	EarlySessions int
	LateSessions  int
}

type badgeRequirement struct {
	code domain.BadgeCode
	met  func(BadgeStats) bool
}

func minSessions(n int) func(BadgeStats) bool {
	return func(s BadgeStats) bool { return s.Sessions >= n }
}

var badgeRequirements = []badgeRequirement{
	{domain.BadgeFirstSession, minSessions(1)},
	{domain.BadgeSessions10, minSessions(10)},
	{domain.BadgeSessions50, minSessions(50)},
	{domain.BadgeSessions100, minSessions(100)},
	{domain.BadgeSessions500, minSessions(500)},
	{domain.BadgeEarlyBird, func(s BadgeStats) bool { return s.EarlySessions >= timeOfDayTarget }},
	{domain.BadgeNightOwl, func(s BadgeStats) bool { return s.LateSessions >= timeOfDayTarget }},
}

// CountBadgeStats counts the completed sessions and the ones performed early or late in the day.
func CountBadgeStats(sessions []domain.TrainingSession) BadgeStats {
	var stats BadgeStats
	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		stats.Sessions++
		if s.PerformedAt == nil {
			continue
		}
		switch hour := s.PerformedAt.UTC().Hour(); {
		case hour < earlyBeforeHour:
			stats.EarlySessions++
		case hour >= lateFromHour:
			stats.LateSessions++
		}
	}
	return stats
}

// NewBadges returns the badges whose requirement stats meet and that the user does not hold yet,
// in requirement order.
func NewBadges(user *domain.User, stats BadgeStats, now time.Time) []domain.UnlockedBadge {
	var unlocked []domain.UnlockedBadge
	for _, req := range badgeRequirements {
		if user.HasBadge(req.code) || !req.met(stats) {
			continue
		}
		unlocked = append(unlocked, domain.UnlockedBadge{Code: req.code, UnlockedAt: now})
	}
	return unlocked
}
