package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a catalog movement that logged sets point at.
// Coaches own the entries they create, everyone can read them.
type Exercise struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID       primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	MuscleGroupID int                `bson:"muscleGroupId" json:"muscleGroupId"` // same ids as FitnessProfile.MusclePriorities
	Difficulty    ExperienceLevel    `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Equipment     string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Compound      bool               `bson:"compound" json:"compound"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SuitableFor reports whether a user of the given level can take the exercise on.
// Unrated exercises suit everyone.
func (e Exercise) SuitableFor(level ExperienceLevel) bool {
	if e.Difficulty == "" {
		return true
	}
	return experienceRank(e.Difficulty) <= experienceRank(level)
}

func experienceRank(l ExperienceLevel) int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	}
	return 0
}
