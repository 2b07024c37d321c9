package scoring

import (
	"testing"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestScoreMuscleFrequency(t *testing.T) {
	tests := []struct {
		freq float64
		want float64
	}{
		{2, 20},
		{1.5, 15},
		{2.5, 15},
		{1, 10},
		{0.5, 5},
		{0, 5},
		{1.2, 12},
		{3, 12},
		{3.5, 12},
		{4, 12},
		{5, 8},
	}

	for _, tt := range tests {
		got, reason := ScoreMuscleFrequency(tt.freq)
		assert.Equal(t, tt.want, got, "frequency %.1f", tt.freq)
		assert.NotEmpty(t, reason)
	}
}

func TestMuscleFrequency(t *testing.T) {
	assert.Equal(t, 3.0, MuscleFrequency(domain.TemplateFullBody, 3))
	assert.Equal(t, 2.0, MuscleFrequency(domain.TemplateUpperLower, 4))
	assert.Equal(t, 1.0, MuscleFrequency(domain.TemplatePushPullLegs, 3))
	assert.Equal(t, 2.0, MuscleFrequency(domain.TemplatePHAT, 5))
	assert.Equal(t, 1.0, MuscleFrequency(domain.TemplateBroSplit, 5))
	assert.Equal(t, 1.2, MuscleFrequency(domain.TemplateBroSplit, 6))
	assert.Equal(t, 2.0, MuscleFrequency(domain.TemplateArnoldSplit, 6))
	assert.Zero(t, MuscleFrequency(domain.TemplateCustom, 4))
}

func TestVolumeCapacity(t *testing.T) {
	tests := []struct {
		name     string
		template domain.ProgramTemplate
		freq     int
		want     float64
	}{
		{"full body 1", domain.TemplateFullBody, 1, 10},
		{"full body 2", domain.TemplateFullBody, 2, 20},
		{"full body 3", domain.TemplateFullBody, 3, 12},
		{"full body 4", domain.TemplateFullBody, 4, 14},
		{"full body 5", domain.TemplateFullBody, 5, 15},
		{"full body 6", domain.TemplateFullBody, 6, 15},
		{"upper lower", domain.TemplateUpperLower, 4, 12},
		{"ppl", domain.TemplatePushPullLegs, 3, 7.5},
		{"phat", domain.TemplatePHAT, 5, 15},
		{"bro", domain.TemplateBroSplit, 5, 12.5},
		{"arnold", domain.TemplateArnoldSplit, 6, 18},
		{"custom", domain.TemplateCustom, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VolumeCapacity(tt.template, tt.freq))
		})
	}
}

func TestScoreVolumeCapacity(t *testing.T) {
	gain := []domain.Goal{domain.GoalMuscleGain}
	loss := []domain.Goal{domain.GoalWeightLoss}

	score, _ := ScoreVolumeCapacity(15, gain)
	assert.Equal(t, 15.0, score)
	score, _ = ScoreVolumeCapacity(22, gain)
	assert.Equal(t, 12.0, score)
	score, _ = ScoreVolumeCapacity(7.5, gain)
	assert.Equal(t, 7.0, score)

	score, _ = ScoreVolumeCapacity(12, loss)
	assert.Equal(t, 12.0, score)
	score, _ = ScoreVolumeCapacity(9, loss)
	assert.Equal(t, 10.0, score)

	// muscle gain wins over weight loss
	score, _ = ScoreVolumeCapacity(15, []domain.Goal{domain.GoalWeightLoss, domain.GoalMuscleGain})
	assert.Equal(t, 15.0, score)

	score, _ = ScoreVolumeCapacity(8, nil)
	assert.Equal(t, 10.0, score)
	score, _ = ScoreVolumeCapacity(7, []domain.Goal{domain.GoalEndurance})
	assert.Equal(t, 8.0, score)
}

func TestRecoveryCapacityForAge(t *testing.T) {
	assert.Equal(t, RecoveryExcellent, RecoveryCapacityForAge(24))
	assert.Equal(t, RecoveryGood, RecoveryCapacityForAge(25))
	assert.Equal(t, RecoveryGood, RecoveryCapacityForAge(34))
	assert.Equal(t, RecoveryAverage, RecoveryCapacityForAge(35))
	assert.Equal(t, RecoveryAverage, RecoveryCapacityForAge(44))
	assert.Equal(t, RecoveryReduced, RecoveryCapacityForAge(45))
}

func TestScoreRecovery(t *testing.T) {
	tests := []struct {
		name     string
		template domain.ProgramTemplate
		capacity RecoveryCapacity
		freq     int
		want     float64
	}{
		{"good", domain.TemplatePHAT, RecoveryGood, 5, 10},
		{"average ppl six", domain.TemplatePushPullLegs, RecoveryAverage, 6, 5},
		{"average full body", domain.TemplateFullBody, RecoveryAverage, 3, 10},
		{"average other", domain.TemplateUpperLower, RecoveryAverage, 4, 8},
		{"reduced full body", domain.TemplateFullBody, RecoveryReduced, 2, 10},
		{"reduced upper lower four", domain.TemplateUpperLower, RecoveryReduced, 4, 8},
		{"reduced six days", domain.TemplateArnoldSplit, RecoveryReduced, 6, 3},
		{"reduced other", domain.TemplatePHAT, RecoveryReduced, 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ScoreRecovery(tt.template, tt.capacity, tt.freq)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeightIntentFor(t *testing.T) {
	tests := []struct {
		name   string
		target *float64
		want   WeightIntent
	}{
		{"no target", nil, IntentMaintenance},
		{"zero target", float64Ptr(0), IntentMaintenance},
		{"bulk", float64Ptr(80), IntentBulk},
		{"cut", float64Ptr(60), IntentCut},
		{"small gain", float64Ptr(74), IntentRecomp},
		{"edge of bulk", float64Ptr(75), IntentRecomp},
		{"small loss", float64Ptr(65), IntentRecomp},
		{"close to current", float64Ptr(72), IntentMaintenance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightIntentFor(70, tt.target))
		})
	}
}

func TestScoreWeightIntent(t *testing.T) {
	score, _ := ScoreWeightIntent(domain.TemplateArnoldSplit, IntentBulk, 18)
	assert.Equal(t, 10.0, score)
	score, _ = ScoreWeightIntent(domain.TemplatePushPullLegs, IntentBulk, 7.5)
	assert.Equal(t, 7.0, score)

	score, _ = ScoreWeightIntent(domain.TemplateFullBody, IntentCut, 20)
	assert.Equal(t, 10.0, score)
	score, _ = ScoreWeightIntent(domain.TemplateUpperLower, IntentCut, 12)
	assert.Equal(t, 8.0, score)
	score, _ = ScoreWeightIntent(domain.TemplateArnoldSplit, IntentCut, 18)
	assert.Equal(t, 7.0, score)

	score, _ = ScoreWeightIntent(domain.TemplatePHAT, IntentRecomp, 15)
	assert.Equal(t, 10.0, score)
	score, _ = ScoreWeightIntent(domain.TemplatePushPullLegs, IntentRecomp, 7.5)
	assert.Equal(t, 8.0, score)

	score, _ = ScoreWeightIntent(domain.TemplatePHAT, IntentMaintenance, 15)
	assert.Equal(t, 8.0, score)
}

func TestClosestOptimal(t *testing.T) {
	assert.Equal(t, 2, closestOptimal([]int{1, 2}, 3))
	assert.Equal(t, 1, closestOptimal([]int{1, 2}, 0))
	assert.Equal(t, 2, closestOptimal([]int{2, 4}, 3))
	assert.Equal(t, 5, closestOptimal(nil, 5))
}

func TestConstraints_ReturnsCopy(t *testing.T) {
	c, ok := Constraints(domain.TemplateFullBody)
	assert.True(t, ok)
	c.OptimalFrequency[0] = 99

	again, _ := Constraints(domain.TemplateFullBody)
	assert.Equal(t, []int{1, 2}, again.OptimalFrequency)

	_, ok = Constraints(domain.ProgramTemplate("YOGA"))
	assert.False(t, ok)
}
