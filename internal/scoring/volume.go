package scoring

import (
	"fmt"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

// VolumeCapacity estimates weekly working sets per muscle group. Every case returns; there is
// no fallthrough between templates.
func VolumeCapacity(template domain.ProgramTemplate, trainingFrequency int) float64 {
	f := float64(trainingFrequency)
	switch template {
	case domain.TemplateFullBody:
		// per-session volume shrinks as sessions are added
		switch {
		case trainingFrequency <= 2:
			return f * 10
		case trainingFrequency == 3:
			return 12
		case trainingFrequency == 4:
			return 14
		default:
			return 15
		}
	case domain.TemplateUpperLower:
		return f * 3
	case domain.TemplatePushPullLegs:
		return f * 2.5
	case domain.TemplatePHAT:
		// the split templates get real capacities so they can compete with the others
		return f * 3
	case domain.TemplateBroSplit:
		return f * 2.5
	case domain.TemplateArnoldSplit:
		return f * 3
	case domain.TemplateCustom:
		return 0
	default:
		return 0
	}
}

// ScoreVolumeCapacity scores weekly sets per muscle against the user's goals. Muscle gain takes
// precedence over weight loss.
func ScoreVolumeCapacity(volume float64, goals []domain.Goal) (float64, string) {
	if hasGoal(goals, domain.GoalMuscleGain) {
		switch {
		case volume >= 12 && volume <= 20:
			return 15, fmt.Sprintf("Optimal volume for hypertrophy (%.0f sets/muscle/week)", volume)
		case volume >= 10:
			return 12, fmt.Sprintf("Enough volume for muscle gain (%.0f sets/muscle)", volume)
		default:
			return 7, fmt.Sprintf("Volume on the low side for muscle gain (%.0f sets/muscle)", volume)
		}
	}

	if hasGoal(goals, domain.GoalWeightLoss) {
		if volume >= 10 {
			return 12, "Volume suited to keeping muscle in a caloric deficit"
		}
		return 10, "Enough volume for weight loss"
	}

	if volume >= 8 {
		return 10, "Volume suited to the goal"
	}
	return 8, "Standard volume"
}

func hasGoal(goals []domain.Goal, goal domain.Goal) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}
