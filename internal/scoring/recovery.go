package scoring

import (
	"math"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

// RecoveryCapacityForAge buckets an age into a recovery capacity.
func RecoveryCapacityForAge(age int) RecoveryCapacity {
	switch {
	case age < 25:
		return RecoveryExcellent
	case age < 35:
		return RecoveryGood
	case age < 45:
		return RecoveryAverage
	default:
		return RecoveryReduced
	}
}

// ScoreRecovery scores how well a template and weekly frequency fit a recovery capacity.
func ScoreRecovery(template domain.ProgramTemplate, capacity RecoveryCapacity, trainingFrequency int) (float64, string) {
	switch capacity {
	case RecoveryExcellent, RecoveryGood:
		return 10, "Good recovery capacity"

	case RecoveryAverage:
		if template == domain.TemplatePushPullLegs && trainingFrequency >= 6 {
			return 5, "High volume may strain recovery (35-45)"
		}
		if template == domain.TemplateFullBody && trainingFrequency <= 3 {
			return 10, "Suited to average recovery"
		}
		return 8, "Compatible with average recovery"

	case RecoveryReduced:
		if template == domain.TemplateFullBody && trainingFrequency <= 3 {
			return 10, "Full Body leaves room to recover (45+)"
		}
		if template == domain.TemplateUpperLower && trainingFrequency == 4 {
			return 8, "Upper/Lower with good spacing between sessions"
		}
		if trainingFrequency >= 6 {
			return 3, "Very high volume is hard to recover from (45+)"
		}
		return 6, "Slower recovery to take into account (45+)"
	}

	return 8, ""
}

// WeightIntentFor derives the weight intent from current and target weight. A missing or zero
// target means maintenance.
func WeightIntentFor(currentWeight float64, targetWeight *float64) WeightIntent {
	if targetWeight == nil || *targetWeight == 0 {
		return IntentMaintenance
	}

	delta := *targetWeight - currentWeight
	switch {
	case delta > 5:
		return IntentBulk
	case delta < -5:
		return IntentCut
	case math.Abs(delta) > 2:
		return IntentRecomp
	default:
		return IntentMaintenance
	}
}

// ScoreWeightIntent scores a template against the weight intent using its volume capacity.
func ScoreWeightIntent(template domain.ProgramTemplate, intent WeightIntent, volumeCapacity float64) (float64, string) {
	switch intent {
	case IntentBulk:
		if volumeCapacity >= 15 {
			return 10, "High volume is ideal for a bulk"
		}
		return 7, "Volume suited to a bulk"

	case IntentCut:
		if template == domain.TemplateFullBody {
			return 10, "Full Body saves energy in a caloric deficit"
		}
		if volumeCapacity >= 10 && volumeCapacity <= 15 {
			return 8, "Volume suited to keeping muscle in a deficit"
		}
		return 7, "Compatible with weight loss"

	case IntentRecomp:
		if volumeCapacity >= 12 && volumeCapacity <= 18 {
			return 10, "Optimal volume for body recomposition"
		}
		return 8, "Suited to recomposition"
	}

	return 8, "Standard for maintenance"
}
