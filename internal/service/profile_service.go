package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileInput carries the editable fields of a fitness profile.
type ProfileInput struct {
	Age               int
	Weight            float64
	TargetWeight      *float64
	TrainingFrequency int
	ExperienceLevel   domain.ExperienceLevel
	Goals             []domain.Goal
	MusclePriorities  []int
	TrainingDays      []domain.WeekDay
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.FitnessProfile, error)
	SaveProfile(ctx context.Context, userID primitive.ObjectID, input ProfileInput) (*domain.FitnessProfile, error)
}

type profileService struct {
	profileRepo repository.FitnessProfileRepository
}

func NewProfileService(profileRepo repository.FitnessProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.FitnessProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) SaveProfile(ctx context.Context, userID primitive.ObjectID, input ProfileInput) (*domain.FitnessProfile, error) {
	if err := ValidateProfileInput(input); err != nil {
		return nil, err
	}

	profile := &domain.FitnessProfile{
		UserID:            userID,
		Age:               input.Age,
		Weight:            input.Weight,
		TargetWeight:      input.TargetWeight,
		TrainingFrequency: input.TrainingFrequency,
		ExperienceLevel:   input.ExperienceLevel,
		Goals:             input.Goals,
		MusclePriorities:  input.MusclePriorities,
		TrainingDays:      dedupeDays(input.TrainingDays),
	}
	if profile.Goals == nil {
		profile.Goals = []domain.Goal{}
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ValidateProfileInput rejects values the scorer cannot make sense of.
func ValidateProfileInput(input ProfileInput) error {
	switch {
	case input.TrainingFrequency < 1 || input.TrainingFrequency > 7:
		return fmt.Errorf("%w: training frequency must be between 1 and 7", ErrValidationFailed)
	case input.Age <= 0:
		return fmt.Errorf("%w: age must be positive", ErrValidationFailed)
	case input.Weight <= 0:
		return fmt.Errorf("%w: weight must be positive", ErrValidationFailed)
	case input.TargetWeight != nil && *input.TargetWeight < 0:
		return fmt.Errorf("%w: target weight cannot be negative", ErrValidationFailed)
	case !input.ExperienceLevel.Valid():
		return fmt.Errorf("%w: unknown experience level %q", ErrValidationFailed, input.ExperienceLevel)
	}
	for _, g := range input.Goals {
		if !g.Valid() {
			return fmt.Errorf("%w: unknown goal %q", ErrValidationFailed, g)
		}
	}
	for _, d := range input.TrainingDays {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown training day %q", ErrValidationFailed, d)
		}
	}
	return nil
}

func dedupeDays(days []domain.WeekDay) []domain.WeekDay {
	if len(days) == 0 {
		return nil
	}
	seen := make(map[domain.WeekDay]bool, len(days))
	out := make([]domain.WeekDay, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
