// internal/domain/training_program.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProgramStatus string

const (
	ProgramActive   ProgramStatus = "ACTIVE"
	ProgramArchived ProgramStatus = "ARCHIVED"
)

func (s ProgramStatus) Valid() bool {
	return s == ProgramActive || s == ProgramArchived
}

// TrainingProgram is a split template instantiated for a user. Creating a new one archives the
// previous active program.
type TrainingProgram struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"` // e.g., "Phase 1: Hypertrophy"
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Template    ProgramTemplate    `bson:"template" json:"template"`
	Status      ProgramStatus      `bson:"status" json:"status"`
	StartDate   *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"` // nil when auto scheduling is off
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
