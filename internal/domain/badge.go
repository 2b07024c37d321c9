package domain

import "time"

// BadgeCode identifies an achievement.
type BadgeCode string

const (
	BadgeFirstSession BadgeCode = "FIRST_SESSION"
	BadgeSessions10   BadgeCode = "SESSIONS_10"
	BadgeSessions50   BadgeCode = "SESSIONS_50"
	BadgeSessions100  BadgeCode = "SESSIONS_100"
	BadgeSessions500  BadgeCode = "SESSIONS_500"
	BadgeEarlyBird    BadgeCode = "EARLY_BIRD"
	BadgeNightOwl     BadgeCode = "NIGHT_OWL"
)

// UnlockedBadge is a badge held by a user.
type UnlockedBadge struct {
	Code       BadgeCode `bson:"code" json:"code"`
	UnlockedAt time.Time `bson:"unlockedAt" json:"unlockedAt"`
}
