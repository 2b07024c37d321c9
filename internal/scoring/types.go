// Package scoring ranks program templates against a user's fitness profile.
//
// Every function here is pure: it reads only its arguments and the static constraint table.
package scoring

import (
	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

// Profile is the subset of a fitness profile the scorer looks at.
type Profile struct {
	TrainingFrequency int                    `json:"trainingFrequency"`
	ExperienceLevel   domain.ExperienceLevel `json:"experienceLevel"`
	Goals             []domain.Goal          `json:"goals"`
	MusclePriorities  []int                  `json:"musclePriorities"`
	Age               int                    `json:"age"`
	Weight            float64                `json:"weight"`
	TargetWeight      *float64               `json:"targetWeight,omitempty"`
}

// FromFitnessProfile builds a scoring Profile from a stored profile.
func FromFitnessProfile(p *domain.FitnessProfile) Profile {
	return Profile{
		TrainingFrequency: p.TrainingFrequency,
		ExperienceLevel:   p.ExperienceLevel,
		Goals:             p.Goals,
		MusclePriorities:  p.MusclePriorities,
		Age:               p.Age,
		Weight:            p.Weight,
		TargetWeight:      p.TargetWeight,
	}
}

// TemplateScore is the result of scoring one template.
type TemplateScore struct {
	Template domain.ProgramTemplate `json:"template"`
	Score    float64                `json:"score"`
	Reasons  []string               `json:"reasons"`
}

// TemplateConstraints is the feasibility envelope of a template in sessions per week.
type TemplateConstraints struct {
	MinFrequency     int
	MaxFrequency     int
	OptimalFrequency []int
}

// RecoveryCapacity is derived from age.
type RecoveryCapacity string

const (
	RecoveryExcellent RecoveryCapacity = "EXCELLENT"
	RecoveryGood      RecoveryCapacity = "GOOD"
	RecoveryAverage   RecoveryCapacity = "AVERAGE"
	RecoveryReduced   RecoveryCapacity = "REDUCED"
)

// WeightIntent is derived from current and target weight.
type WeightIntent string

const (
	IntentBulk        WeightIntent = "BULK"
	IntentCut         WeightIntent = "CUT"
	IntentRecomp      WeightIntent = "RECOMP"
	IntentMaintenance WeightIntent = "MAINTENANCE"
)
