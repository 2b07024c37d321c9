package scoring

import (
	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

// Criterion weights. They sum to 100; the priority bonuses may exceed their nominal weight.
const (
	WeightFrequencyMatch   = 25.0
	WeightMuscleFrequency  = 20.0
	WeightVolumeCapacity   = 15.0
	WeightExperienceMatch  = 15.0
	WeightMusclePriorities = 15.0
	WeightRecoveryFactor   = 10.0
	WeightWeightIntent     = 10.0

	// OverFrequencyPenalty is subtracted when the user trains more often than the template allows.
	OverFrequencyPenalty = 20.0
	// frequencyDistancePenalty is removed from the frequency weight per session away from optimal.
	frequencyDistancePenalty = 5.0
)

type constraintEntry struct {
	template    domain.ProgramTemplate
	constraints TemplateConstraints
}

// constraintTable is kept as a slice so that iteration follows declaration order;
// ScoreTemplates relies on it for deterministic tie ordering.
var constraintTable = []constraintEntry{
	{domain.TemplateFullBody, TemplateConstraints{MinFrequency: 1, MaxFrequency: 6, OptimalFrequency: []int{1, 2}}},
	{domain.TemplateUpperLower, TemplateConstraints{MinFrequency: 4, MaxFrequency: 4, OptimalFrequency: []int{4}}},
	{domain.TemplatePushPullLegs, TemplateConstraints{MinFrequency: 3, MaxFrequency: 3, OptimalFrequency: []int{3}}},
	{domain.TemplatePHAT, TemplateConstraints{MinFrequency: 5, MaxFrequency: 5, OptimalFrequency: []int{5}}},
	{domain.TemplateBroSplit, TemplateConstraints{MinFrequency: 5, MaxFrequency: 6, OptimalFrequency: []int{5}}},
	{domain.TemplateArnoldSplit, TemplateConstraints{MinFrequency: 6, MaxFrequency: 6, OptimalFrequency: []int{6}}},
	{domain.TemplateCustom, TemplateConstraints{MinFrequency: 1, MaxFrequency: 7, OptimalFrequency: nil}},
}

// Constraints returns the feasibility envelope of a template. The second value is false for an
// unknown template.
func Constraints(template domain.ProgramTemplate) (TemplateConstraints, bool) {
	for _, e := range constraintTable {
		if e.template == template {
			c := e.constraints
			c.OptimalFrequency = append([]int(nil), e.constraints.OptimalFrequency...)
			return c, true
		}
	}
	return TemplateConstraints{}, false
}

func (c TemplateConstraints) isOptimal(frequency int) bool {
	for _, f := range c.OptimalFrequency {
		if f == frequency {
			return true
		}
	}
	return false
}

// closestOptimal returns the optimal frequency nearest to target. The first candidate wins a tie.
// With no optimal frequencies the target itself is returned.
func closestOptimal(optimal []int, target int) int {
	if len(optimal) == 0 {
		return target
	}
	best := optimal[0]
	for _, f := range optimal[1:] {
		if absInt(f-target) < absInt(best-target) {
			best = f
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
