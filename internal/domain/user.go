package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleCoach  Role = "coach"
	RoleClient Role = "client"
)

// Starting values for the leveling system.
const (
	StartingLevel        = 1
	StartingNextLevelExp = 100
)

// User represents an account. Users are provisioned from the identity token on first request.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"` // Unique
	Role  Role               `bson:"role" json:"role"`

	// --- Leveling ---
	Level        int `bson:"level" json:"level"`
	Experience   int `bson:"experience" json:"experience"`
	NextLevelExp int `bson:"nextLevelExp" json:"nextLevelExp"`

	Badges []UnlockedBadge `bson:"badges,omitempty" json:"badges,omitempty"`

	// Accepted friendships are stored on both sides.
	FriendIDs []primitive.ObjectID `bson:"friendIds,omitempty" json:"friendIds,omitempty"`

	// --- Coach-specific ---
	ClientIDs []primitive.ObjectID `bson:"clientIds,omitempty" json:"clientIds,omitempty"`

	// --- Client-specific ---
	CoachID *primitive.ObjectID `bson:"coachId,omitempty" json:"coachId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// HasFriend reports whether id is in the user's friend list.
func (u *User) HasFriend(id primitive.ObjectID) bool {
	for _, f := range u.FriendIDs {
		if f == id {
			return true
		}
	}
	return false
}

// HasBadge reports whether the user unlocked code.
func (u *User) HasBadge(code BadgeCode) bool {
	for _, b := range u.Badges {
		if b.Code == code {
			return true
		}
	}
	return false
}
