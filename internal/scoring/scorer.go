package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

// ScoreTemplates scores every template except CUSTOM and returns them best first.
// Ties keep constraint table order.
func ScoreTemplates(profile Profile) []TemplateScore {
	scores := make([]TemplateScore, 0, len(constraintTable)-1)
	for _, e := range constraintTable {
		if e.template == domain.TemplateCustom {
			continue
		}
		scores = append(scores, scoreTemplate(e.template, e.constraints, profile))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// ScoreTemplate scores a single template. Unknown templates score 0.
func ScoreTemplate(template domain.ProgramTemplate, profile Profile) TemplateScore {
	c, ok := Constraints(template)
	if !ok {
		return TemplateScore{
			Template: template,
			Score:    0,
			Reasons:  []string{fmt.Sprintf("Unknown template %s", template)},
		}
	}
	return scoreTemplate(template, c, profile)
}

// Best returns the highest scored entry of a ScoreTemplates result.
func Best(scores []TemplateScore) (TemplateScore, bool) {
	if len(scores) == 0 {
		return TemplateScore{}, false
	}
	return scores[0], true
}

func scoreTemplate(template domain.ProgramTemplate, c TemplateConstraints, profile Profile) TemplateScore {
	frequency := profile.TrainingFrequency
	total := 0.0
	var reasons []string
	addReason := func(reason string) {
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	// feasibility
	if frequency < c.MinFrequency {
		return TemplateScore{
			Template: template,
			Score:    0,
			Reasons: []string{
				fmt.Sprintf("Not possible: %s needs at least %d sessions/week", template, c.MinFrequency),
			},
		}
	}
	if frequency > c.MaxFrequency {
		total -= OverFrequencyPenalty
		addReason(fmt.Sprintf("Too many sessions for this template (recommended max: %d)", c.MaxFrequency))
	}

	// frequency fit; optimal membership short-circuits the incompatibility gates
	if c.isOptimal(frequency) {
		total += WeightFrequencyMatch
		addReason(fmt.Sprintf("Ideal frequency for %s", template))
	} else {
		if incompatible := incompatibilityReasons(template, frequency); incompatible != nil {
			return TemplateScore{Template: template, Score: 0, Reasons: incompatible}
		}
		closest := closestOptimal(c.OptimalFrequency, frequency)
		distance := float64(absInt(closest - frequency))
		total += math.Max(0, WeightFrequencyMatch-distance*frequencyDistancePenalty)
		addReason(fmt.Sprintf("Acceptable frequency (optimal: %d sessions)", closest))
	}

	muscleFrequency := MuscleFrequency(template, frequency)
	score, reason := ScoreMuscleFrequency(muscleFrequency)
	total += score
	addReason(reason)

	volume := VolumeCapacity(template, frequency)
	score, reason = ScoreVolumeCapacity(volume, profile.Goals)
	total += score
	addReason(reason)

	score, reason = scoreExperience(template, profile.ExperienceLevel)
	total += score
	addReason(reason)

	if len(profile.MusclePriorities) > 0 {
		score, reason = scoreMusclePriorities(template, muscleFrequency)
		total += score
		addReason(reason)
	}

	score, reason = ScoreRecovery(template, RecoveryCapacityForAge(profile.Age), frequency)
	total += score
	addReason(reason)

	score, reason = ScoreWeightIntent(template, WeightIntentFor(profile.Weight, profile.TargetWeight), volume)
	total += score
	addReason(reason)

	return TemplateScore{
		Template: template,
		Score:    math.Max(0, total),
		Reasons:  reasons,
	}
}

// incompatibilityReasons returns the explanation when a split cannot be balanced over the given
// number of sessions, or nil when it can.
func incompatibilityReasons(template domain.ProgramTemplate, frequency int) []string {
	switch template {
	case domain.TemplatePushPullLegs:
		if frequency == 3 || frequency == 6 {
			return nil
		}
		return []string{
			fmt.Sprintf("PPL is incompatible with %d days/week", frequency),
			"PPL splits training into 3 parts (Push/Pull/Legs)",
			"It needs 3 days (one cycle) or 6 days (two full cycles)",
			fmt.Sprintf("With %d days the 3 parts cannot be balanced", frequency),
		}
	case domain.TemplateUpperLower:
		if frequency%2 == 0 {
			return nil
		}
		return []string{
			fmt.Sprintf("Upper/Lower is incompatible with %d days/week", frequency),
			"The split has 2 halves (upper body / lower body)",
			"It needs an even frequency (2, 4 or 6 days) to stay balanced",
			fmt.Sprintf("With %d days one half would be neglected", frequency),
		}
	case domain.TemplatePHAT:
		if frequency == 5 {
			return nil
		}
		return []string{
			fmt.Sprintf("PHAT is incompatible with %d days/week", frequency),
			"PHAT has a fixed 5-day structure",
			"2 power days followed by 3 hypertrophy days",
		}
	case domain.TemplateArnoldSplit:
		if frequency == 6 {
			return nil
		}
		return []string{
			fmt.Sprintf("Arnold split is incompatible with %d days/week", frequency),
			"Fixed structure of 3 antagonist pairs, each trained twice a week",
			"Chest+Back / Shoulders+Arms / Legs needs exactly 6 training days",
		}
	}
	return nil
}

// scoreExperience rewards templates that suit the user's level. Advanced splits given to less
// experienced users score negative.
func scoreExperience(template domain.ProgramTemplate, level domain.ExperienceLevel) (float64, string) {
	w := WeightExperienceMatch

	switch level {
	case domain.LevelBeginner:
		switch template {
		case domain.TemplateFullBody:
			return w, "Full Body is ideal to learn the movements (beginner)"
		case domain.TemplateUpperLower:
			return w * 0.6, "Upper/Lower is acceptable for a beginner"
		case domain.TemplatePushPullLegs:
			return w * 0.5, "PPL is possible but complex for a beginner"
		case domain.TemplatePHAT, domain.TemplateBroSplit, domain.TemplateArnoldSplit:
			return -30, "Template too advanced for a beginner (technique, volume, recovery)"
		}
		return w * 0.3, ""

	case domain.LevelIntermediate:
		switch template {
		case domain.TemplateUpperLower, domain.TemplatePushPullLegs:
			return w, "Well suited to an intermediate lifter"
		case domain.TemplateFullBody:
			return w * 0.8, "Full Body is still effective for an intermediate lifter"
		case domain.TemplatePHAT:
			return -20, "PHAT is too technical for an intermediate lifter (power + hypertrophy)"
		case domain.TemplateBroSplit, domain.TemplateArnoldSplit:
			return -25, "Advanced split needs experience (1x/week per muscle is risky)"
		}
		return w * 0.7, ""

	case domain.LevelAdvanced:
		switch template {
		case domain.TemplatePHAT, domain.TemplateBroSplit, domain.TemplateArnoldSplit:
			return w, "Advanced template suited to your level"
		case domain.TemplatePushPullLegs:
			return w * 0.9, "PPL is excellent for advanced lifters"
		case domain.TemplateUpperLower:
			return w * 0.7, "Upper/Lower works but offers less specialization"
		case domain.TemplateFullBody:
			return w * 0.5, "Full Body limits volume for an advanced lifter"
		}
		return w * 0.7, ""
	}

	return 0, ""
}

// scoreMusclePriorities rewards templates that can target priority muscles.
func scoreMusclePriorities(template domain.ProgramTemplate, muscleFrequency float64) (float64, string) {
	w := WeightMusclePriorities

	switch template {
	case domain.TemplateBroSplit, domain.TemplateArnoldSplit:
		return w * 1.4, "Maximal specialization to target priority muscles"
	case domain.TemplatePHAT:
		return w * 1.2, "PHAT targets priorities with both power and volume"
	case domain.TemplatePushPullLegs, domain.TemplateUpperLower:
		score := w
		reason := "Split makes it easier to target priority muscles"
		if muscleFrequency >= 2 {
			score += w * 0.3
			reason += " (2x/week optimal)"
		}
		return score, reason
	case domain.TemplateFullBody:
		return w * 0.4, "Full Body makes specific targeting harder"
	}
	return w * 0.6, ""
}
