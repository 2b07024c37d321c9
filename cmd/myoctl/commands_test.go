package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/scoring"
	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is 2026-10-19.
var monday = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

func TestCommandsRegistered(t *testing.T) {
	assert.Equal(t, "score", scoreCmd.Use)
	assert.NotEmpty(t, scoreCmd.Short)
	assert.NotNil(t, scoreCmd.Run)

	assert.Equal(t, "schedule", scheduleCmd.Use)
	assert.NotEmpty(t, scheduleCmd.Short)
	assert.NotNil(t, scheduleCmd.Run)

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["score"])
	assert.True(t, names["schedule"])
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("json"))
}

func beginnerOpts() scoreOptions {
	return scoreOptions{
		frequency: 3,
		level:     "beginner",
		goals:     []string{"muscle_gain"},
		age:       22,
		weight:    70,
	}
}

func TestRunScore_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runScore(&buf, beginnerOpts(), true, false))

	var scores []scoring.TemplateScore
	require.NoError(t, json.Unmarshal(buf.Bytes(), &scores))
	require.NotEmpty(t, scores)
	assert.Equal(t, domain.TemplateFullBody, scores[0].Template)
	for _, s := range scores {
		assert.NotEqual(t, domain.TemplateCustom, s.Template)
	}
}

func TestRunScore_MatchesEngine(t *testing.T) {
	opts := beginnerOpts()
	profile, err := opts.profile()
	require.NoError(t, err)
	assert.Equal(t, domain.LevelBeginner, profile.ExperienceLevel)
	assert.Equal(t, []domain.Goal{domain.GoalMuscleGain}, profile.Goals)
	assert.Nil(t, profile.TargetWeight)

	var buf bytes.Buffer
	require.NoError(t, runScore(&buf, opts, true, false))
	var scores []scoring.TemplateScore
	require.NoError(t, json.Unmarshal(buf.Bytes(), &scores))
	assert.Equal(t, scoring.ScoreTemplates(profile), scores)
}

func TestRunScore_TopAndTarget(t *testing.T) {
	opts := beginnerOpts()
	opts.top = 2
	opts.target = 80

	profile, err := opts.profile()
	require.NoError(t, err)
	require.NotNil(t, profile.TargetWeight)
	assert.Equal(t, 80.0, *profile.TargetWeight)

	var buf bytes.Buffer
	require.NoError(t, runScore(&buf, opts, true, false))
	var scores []scoring.TemplateScore
	require.NoError(t, json.Unmarshal(buf.Bytes(), &scores))
	assert.Len(t, scores, 2)
}

func TestRunScore_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runScore(&buf, beginnerOpts(), false, false))

	out := buf.String()
	assert.Contains(t, out, "Templates for 3 sessions/week, BEGINNER")
	assert.Contains(t, out, "1. FULL_BODY")
	assert.Contains(t, out, "- ")
}

func TestRunScore_InvalidProfile(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*scoreOptions)
	}{
		{"frequency", func(o *scoreOptions) { o.frequency = 9 }},
		{"level", func(o *scoreOptions) { o.level = "expert" }},
		{"goal", func(o *scoreOptions) { o.goals = []string{"flexibility"} }},
		{"age", func(o *scoreOptions) { o.age = 0 }},
		{"weight", func(o *scoreOptions) { o.weight = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := beginnerOpts()
			tt.mutate(&opts)
			err := runScore(&bytes.Buffer{}, opts, false, false)
			assert.ErrorIs(t, err, service.ErrValidationFailed)
		})
	}
}

func TestRunSchedule_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := scheduleOptions{days: []string{"monday", " wednesday", "FRIDAY"}, count: 4}
	require.NoError(t, runSchedule(&buf, opts, monday, true, false))

	var got struct {
		StartDate string   `json:"startDate"`
		Sessions  []string `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2026-10-21", got.StartDate)
	assert.Equal(t, []string{"2026-10-21", "2026-10-23", "2026-10-26", "2026-10-28"}, got.Sessions)
}

func TestRunSchedule_RequestedStart(t *testing.T) {
	var buf bytes.Buffer
	opts := scheduleOptions{days: []string{"TUESDAY", "THURSDAY"}, start: "2026-10-22", count: 2}
	require.NoError(t, runSchedule(&buf, opts, monday, false, false))

	out := buf.String()
	assert.Contains(t, out, "Program starting Thu 2026-10-22")
	assert.Contains(t, out, "Session 1  Thu 2026-10-22")
	assert.Contains(t, out, "Session 2  Tue 2026-10-27")
}

func TestRunSchedule_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts scheduleOptions
	}{
		{"unknown day", scheduleOptions{days: []string{"FUNDAY"}, count: 1}},
		{"bad start", scheduleOptions{days: []string{"MONDAY"}, start: "21/10/2026", count: 1}},
		{"zero count", scheduleOptions{days: []string{"MONDAY"}, count: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, runSchedule(&bytes.Buffer{}, tt.opts, monday, false, false))
		})
	}
}

func TestRunSchedule_NoTrainingDays(t *testing.T) {
	err := runSchedule(&bytes.Buffer{}, scheduleOptions{days: []string{"CUSTOM"}, count: 3}, monday, false, false)
	assert.ErrorIs(t, err, errNoTrainingDays)

	err = runSchedule(&bytes.Buffer{}, scheduleOptions{count: 3}, monday, false, false)
	assert.ErrorIs(t, err, errNoTrainingDays)
}

func TestPrinter_Styled(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, true)
	p.Header("Title")
	assert.Contains(t, buf.String(), "Title")

	plainPrinter := newPrinter(&bytes.Buffer{}, false)
	assert.Equal(t, "x", plainPrinter.render(plainPrinter.good, "x"))
}
