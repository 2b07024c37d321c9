package scoring

import (
	"fmt"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

// MuscleFrequency estimates how many times per week each muscle group is trained.
func MuscleFrequency(template domain.ProgramTemplate, trainingFrequency int) float64 {
	f := float64(trainingFrequency)
	switch template {
	case domain.TemplateFullBody:
		return f
	case domain.TemplateUpperLower:
		return f / 2
	case domain.TemplatePushPullLegs:
		return f / 3
	case domain.TemplatePHAT:
		// one power day and one hypertrophy day per muscle
		return 2
	case domain.TemplateBroSplit:
		if trainingFrequency >= 6 {
			return 1.2
		}
		return 1
	case domain.TemplateArnoldSplit:
		return 2
	case domain.TemplateCustom:
		return 0
	default:
		return 0
	}
}

// ScoreMuscleFrequency maps a per-muscle frequency to points. Bands are checked in order and the
// first match wins, so exactly 2 takes the optimal band.
func ScoreMuscleFrequency(frequency float64) (float64, string) {
	switch {
	case frequency == 2:
		return 20, "Each muscle trained 2x/week (optimal for hypertrophy)"
	case frequency >= 1.5 && frequency <= 2.5:
		return 15, fmt.Sprintf("Good muscle frequency (%.1fx/week)", frequency)
	case frequency == 1:
		return 10, "Each muscle trained 1x/week (maintenance)"
	case frequency < 1:
		return 5, fmt.Sprintf("Sub-optimal muscle frequency (%.1fx/week)", frequency)
	case frequency > 3 && frequency <= 4:
		return 12, fmt.Sprintf("High muscle frequency (%.1fx/week), advanced lifters only", frequency)
	case frequency > 4:
		return 8, fmt.Sprintf("Very high muscle frequency (%.1fx/week), overreaching risk", frequency)
	default:
		return 12, fmt.Sprintf("Acceptable muscle frequency (%.1fx/week)", frequency)
	}
}
