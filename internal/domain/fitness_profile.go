// internal/domain/fitness_profile.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FitnessProfile holds the attributes used to recommend and schedule programs.
// One profile per user.
type FitnessProfile struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	Age               int                `bson:"age" json:"age"`
	Weight            float64            `bson:"weight" json:"weight"`                                 // kg
	TargetWeight      *float64           `bson:"targetWeight,omitempty" json:"targetWeight,omitempty"` // kg, optional
	TrainingFrequency int                `bson:"trainingFrequency" json:"trainingFrequency"`           // sessions per week
	ExperienceLevel   ExperienceLevel    `bson:"experienceLevel" json:"experienceLevel"`
	Goals             []Goal             `bson:"goals" json:"goals"`
	MusclePriorities  []int              `bson:"musclePriorities,omitempty" json:"musclePriorities,omitempty"` // muscle-group ids
	TrainingDays      []WeekDay          `bson:"trainingDays,omitempty" json:"trainingDays,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
