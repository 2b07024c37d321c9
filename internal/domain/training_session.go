package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainingSession represents a single workout within a TrainingProgram.
type TrainingSession struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID     primitive.ObjectID `bson:"programId" json:"programId"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"` // Denormalized for streak/stat queries
	Name          string             `bson:"name" json:"name"`     // e.g., "Push", "Upper"
	Sequence      int                `bson:"sequence" json:"sequence"`
	ScheduledDate *time.Time         `bson:"scheduledDate,omitempty" json:"scheduledDate,omitempty"`
	PerformedAt   *time.Time         `bson:"performedAt,omitempty" json:"performedAt,omitempty"`
	Completed     bool               `bson:"completed" json:"completed"`
	Duration      *int               `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Sets          []SetPerformance   `bson:"sets,omitempty" json:"sets,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetPerformance is one logged set.
type SetPerformance struct {
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Reps       *int               `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight     *float64           `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	RPE        *float64           `bson:"rpe,omitempty" json:"rpe,omitempty"`
}

// Volume returns weight x reps, or 0 when either is missing.
func (s SetPerformance) Volume() float64 {
	if s.Reps == nil || s.Weight == nil {
		return 0
	}
	return *s.Weight * float64(*s.Reps)
}
