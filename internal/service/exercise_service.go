package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseInput carries the editable fields of a catalog exercise.
type ExerciseInput struct {
	Name          string
	Description   string
	MuscleGroupID int
	Difficulty    domain.ExperienceLevel
	Equipment     string
	Compound      bool
}

type ExerciseService interface {
	CreateExercise(ctx context.Context, coachID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error)
	// SuggestExercises lists the catalog entries suited to the user's level, prioritized
	// muscle groups first.
	SuggestExercises(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.Exercise, error)
	GetExercisesByCoach(ctx context.Context, coachID primitive.ObjectID) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID) error
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	profiles     ProfileService
}

func NewExerciseService(exerciseRepo repository.ExerciseRepository, profiles ProfileService) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		profiles:     profiles,
	}
}

func validateExerciseInput(input ExerciseInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
	case input.MuscleGroupID <= 0:
		return fmt.Errorf("%w: muscle group id must be positive", ErrValidationFailed)
	case input.Difficulty != "" && !input.Difficulty.Valid():
		return fmt.Errorf("%w: unknown difficulty %q", ErrValidationFailed, input.Difficulty)
	}
	return nil
}

func (in ExerciseInput) applyTo(e *domain.Exercise) {
	e.Name = strings.TrimSpace(in.Name)
	e.Description = in.Description
	e.MuscleGroupID = in.MuscleGroupID
	e.Difficulty = in.Difficulty
	e.Equipment = strings.TrimSpace(in.Equipment)
	e.Compound = in.Compound
}

// CreateExercise adds an exercise owned by the coach to the catalog.
func (s *exerciseService) CreateExercise(ctx context.Context, coachID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if err := validateExerciseInput(input); err != nil {
		return nil, err
	}
	if coachID.IsZero() {
		return nil, errors.New("coach ID is required to create an exercise")
	}

	exercise := &domain.Exercise{CoachID: coachID}
	input.applyTo(exercise)

	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: you already have an exercise named %q", ErrValidationFailed, exercise.Name)
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	if filter.MaxDifficulty != "" && !filter.MaxDifficulty.Valid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrValidationFailed, filter.MaxDifficulty)
	}
	return s.exerciseRepo.List(ctx, filter)
}

func (s *exerciseService) SuggestExercises(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.Exercise, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exerciseRepo.List(ctx, repository.ExerciseFilter{MaxDifficulty: profile.ExperienceLevel})
	if err != nil {
		return nil, err
	}

	priority := make(map[int]int, len(profile.MusclePriorities))
	for i, id := range profile.MusclePriorities {
		if _, seen := priority[id]; !seen {
			priority[id] = i
		}
	}
	rank := func(e domain.Exercise) int {
		if p, ok := priority[e.MuscleGroupID]; ok {
			return p
		}
		return len(priority)
	}

	sort.SliceStable(exercises, func(i, j int) bool {
		ri, rj := rank(exercises[i]), rank(exercises[j])
		if ri != rj {
			return ri < rj
		}
		if exercises[i].Compound != exercises[j].Compound {
			return exercises[i].Compound
		}
		return exercises[i].Name < exercises[j].Name
	})

	if limit > 0 && len(exercises) > limit {
		exercises = exercises[:limit]
	}
	return exercises, nil
}

// GetExercisesByCoach lists the exercises the coach created.
func (s *exerciseService) GetExercisesByCoach(ctx context.Context, coachID primitive.ObjectID) ([]domain.Exercise, error) {
	if coachID.IsZero() {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.exerciseRepo.GetByCoachID(ctx, coachID)
}

// UpdateExercise replaces the editable fields of one of the coach's exercises.
func (s *exerciseService) UpdateExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if err := validateExerciseInput(input); err != nil {
		return nil, err
	}

	existing, err := s.owned(ctx, coachID, exerciseID)
	if err != nil {
		return nil, err
	}

	input.applyTo(existing)
	if err = s.exerciseRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *exerciseService) DeleteExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID) error {
	if _, err := s.owned(ctx, coachID, exerciseID); err != nil {
		return err
	}

	if err := s.exerciseRepo.Delete(ctx, exerciseID, coachID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}

// owned loads the exercise and checks that coachID created it.
func (s *exerciseService) owned(ctx context.Context, coachID, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	existing, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if existing.CoachID != coachID {
		return nil, ErrExerciseAccessDenied
	}
	return existing, nil
}
