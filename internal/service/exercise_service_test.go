package service

import (
	"context"
	"testing"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExerciseService_Lifecycle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	coachID := primitive.NewObjectID()

	squat, err := env.exerciseService.CreateExercise(ctx, coachID, ExerciseInput{Name: " Back Squat ", MuscleGroupID: 4, Compound: true, Equipment: " barbell "})
	require.NoError(t, err)
	assert.Equal(t, "Back Squat", squat.Name)
	assert.Equal(t, "barbell", squat.Equipment)
	assert.False(t, squat.ID.IsZero())

	_, err = env.exerciseService.CreateExercise(ctx, coachID, ExerciseInput{Name: "Bench Press", MuscleGroupID: 1})
	require.NoError(t, err)

	all, err := env.exerciseService.ListExercises(ctx, repository.ExerciseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	legs, err := env.exerciseService.ListExercises(ctx, repository.ExerciseFilter{MuscleGroupID: intPtr(4)})
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Equal(t, squat.ID, legs[0].ID)

	updated, err := env.exerciseService.UpdateExercise(ctx, coachID, squat.ID, ExerciseInput{Name: "Front Squat", MuscleGroupID: 4, Difficulty: domain.LevelAdvanced, Compound: true})
	require.NoError(t, err)
	assert.Equal(t, "Front Squat", updated.Name)

	got, err := env.exerciseService.GetExerciseByID(ctx, squat.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelAdvanced, got.Difficulty)

	beginner, err := env.exerciseService.ListExercises(ctx, repository.ExerciseFilter{MaxDifficulty: domain.LevelBeginner})
	require.NoError(t, err)
	require.Len(t, beginner, 1)
	assert.Equal(t, "Bench Press", beginner[0].Name)

	mine, err := env.exerciseService.GetExercisesByCoach(ctx, coachID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	require.NoError(t, env.exerciseService.DeleteExercise(ctx, coachID, squat.ID))
	_, err = env.exerciseService.GetExerciseByID(ctx, squat.ID)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestExerciseService_Ownership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	ex, err := env.exerciseService.CreateExercise(ctx, owner, ExerciseInput{Name: "Row", MuscleGroupID: 2})
	require.NoError(t, err)

	_, err = env.exerciseService.UpdateExercise(ctx, other, ex.ID, ExerciseInput{Name: "Row", MuscleGroupID: 2})
	assert.ErrorIs(t, err, ErrExerciseAccessDenied)

	err = env.exerciseService.DeleteExercise(ctx, other, ex.ID)
	assert.ErrorIs(t, err, ErrExerciseAccessDenied)

	err = env.exerciseService.DeleteExercise(ctx, owner, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestExerciseService_Validation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	coachID := primitive.NewObjectID()

	tests := []struct {
		name  string
		input ExerciseInput
	}{
		{"missing name", ExerciseInput{Name: " ", MuscleGroupID: 1}},
		{"missing muscle group", ExerciseInput{Name: "Curl"}},
		{"unknown difficulty", ExerciseInput{Name: "Curl", MuscleGroupID: 5, Difficulty: "EXPERT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.exerciseService.CreateExercise(ctx, coachID, tt.input)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}

	_, err := env.exerciseService.ListExercises(ctx, repository.ExerciseFilter{MaxDifficulty: "EXPERT"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestExerciseService_SuggestExercises(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	coachID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	_, err := env.exerciseService.SuggestExercises(ctx, userID, 0)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	input := validProfileInput()
	input.MusclePriorities = []int{2, 4}
	_, err = env.profileService.SaveProfile(ctx, userID, input)
	require.NoError(t, err)

	for _, in := range []ExerciseInput{
		{Name: "Bench Press", MuscleGroupID: 1, Compound: true},
		{Name: "Leg Extension", MuscleGroupID: 4},
		{Name: "Squat", MuscleGroupID: 4, Compound: true},
		{Name: "Row", MuscleGroupID: 2, Compound: true, Difficulty: domain.LevelBeginner},
		{Name: "Snatch", MuscleGroupID: 2, Compound: true, Difficulty: domain.LevelAdvanced},
	} {
		_, err := env.exerciseService.CreateExercise(ctx, coachID, in)
		require.NoError(t, err)
	}

	got, err := env.exerciseService.SuggestExercises(ctx, userID, 0)
	require.NoError(t, err)
	names := make([]string, len(got))
	for i, e := range got {
		names[i] = e.Name
	}
	// advanced lifts are hidden from a beginner
	assert.Equal(t, []string{"Row", "Squat", "Leg Extension", "Bench Press"}, names)

	top, err := env.exerciseService.SuggestExercises(ctx, userID, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}
