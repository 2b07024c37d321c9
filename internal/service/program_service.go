package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/leaderboard"
	"github.com/yulannn/Myo-Fitness-sub004/internal/metrics"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"
	"github.com/yulannn/Myo-Fitness-sub004/internal/schedule"
	"github.com/yulannn/Myo-Fitness-sub004/internal/scoring"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateProgramInput describes a new program. An empty Template takes the best recommendation.
type CreateProgramInput struct {
	Name        string
	Description string
	Template    domain.ProgramTemplate
	StartDate   *time.Time
}

// CompleteSessionInput is what the user logs when finishing a session.
type CompleteSessionInput struct {
	PerformedAt *time.Time
	Duration    *int
	Notes       string
	Sets        []domain.SetPerformance
}

// ProgramWithSessions is a program and its generated sessions.
type ProgramWithSessions struct {
	Program  *domain.TrainingProgram  `json:"program"`
	Sessions []domain.TrainingSession `json:"sessions"`
}

// SessionCompletion reports a completed session, the user's new level and the badges it unlocked.
type SessionCompletion struct {
	Session   *domain.TrainingSession `json:"session"`
	Progress  leaderboard.Progress    `json:"progress"`
	LeveledUp bool                    `json:"leveledUp"`
	NewBadges []domain.UnlockedBadge  `json:"newBadges,omitempty"`
}

// progressAttempts bounds the retries of a level update that lost a race.
const progressAttempts = 5

type ProgramService interface {
	CreateProgram(ctx context.Context, userID primitive.ObjectID, input CreateProgramInput) (*ProgramWithSessions, error)
	ListPrograms(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingProgram, error)
	// UpdateProgramStatus changes a program's status. Activating one archives the others.
	UpdateProgramStatus(ctx context.Context, userID, programID primitive.ObjectID, status domain.ProgramStatus) error
	ListSessions(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.TrainingSession, error)
	CompleteSession(ctx context.Context, userID, sessionID primitive.ObjectID, input CompleteSessionInput) (*SessionCompletion, error)
}

type programService struct {
	profiles        ProfileService
	recommendations RecommendationService
	leaderboards    LeaderboardService
	userRepo        repository.UserRepository
	programRepo     repository.ProgramRepository
	sessionRepo     repository.SessionRepository
	metrics         *metrics.Manager
	now             func() time.Time
}

func NewProgramService(
	profiles ProfileService,
	recommendations RecommendationService,
	leaderboards LeaderboardService,
	userRepo repository.UserRepository,
	programRepo repository.ProgramRepository,
	sessionRepo repository.SessionRepository,
	m *metrics.Manager,
	now func() time.Time,
) ProgramService {
	if now == nil {
		now = time.Now
	}
	return &programService{
		profiles:        profiles,
		recommendations: recommendations,
		leaderboards:    leaderboards,
		userRepo:        userRepo,
		programRepo:     programRepo,
		sessionRepo:     sessionRepo,
		metrics:         m,
		now:             now,
	}
}

func (s *programService) CreateProgram(ctx context.Context, userID primitive.ObjectID, input CreateProgramInput) (*ProgramWithSessions, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	template := input.Template
	if template == "" {
		best, ok := scoring.Best(s.recommendations.Score(scoring.FromFitnessProfile(profile)))
		if !ok || best.Score <= 0 {
			return nil, ErrNoTemplateAvailable
		}
		template = best.Template
	} else if !template.Valid() {
		return nil, fmt.Errorf("%w: unknown template %q", ErrValidationFailed, template)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = fmt.Sprintf("%s program", template)
	}

	now := s.now()
	start := schedule.DetermineStartDate(input.StartDate, profile.TrainingDays, now)
	dates := schedule.GenerateSessionDates(start, profile.TrainingDays, profile.TrainingFrequency)

	program := &domain.TrainingProgram{
		UserID:      userID,
		Name:        name,
		Description: input.Description,
		Template:    template,
		Status:      domain.ProgramActive,
		StartDate:   start,
	}
	if _, err := s.programRepo.Create(ctx, program); err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}

	names := SessionNames(template, profile.TrainingFrequency)
	sessions := make([]*domain.TrainingSession, 0, len(names))
	for i, n := range names {
		session := &domain.TrainingSession{
			ProgramID: program.ID,
			UserID:    userID,
			Name:      n,
			Sequence:  i + 1,
		}
		// fewer dates than sessions leaves the rest unscheduled
		if i < len(dates) {
			d := dates[i]
			session.ScheduledDate = &d
		}
		sessions = append(sessions, session)
	}
	if err := s.sessionRepo.CreateMany(ctx, sessions); err != nil {
		if delErr := s.programRepo.Delete(ctx, program.ID, userID); delErr != nil {
			log.WithField("program_id", program.ID.Hex()).Errorf("remove program without sessions: %s", delErr)
		}
		return nil, fmt.Errorf("create sessions: %w", err)
	}

	// the previous program stays active until the new one is complete
	if _, err := s.programRepo.ArchiveActive(ctx, userID, program.ID); err != nil {
		return nil, fmt.Errorf("archive active programs: %w", err)
	}

	log.WithFields(log.Fields{
		"user_id":    userID.Hex(),
		"program_id": program.ID.Hex(),
		"template":   template,
		"scheduled":  len(dates),
	}).Info("training program created")

	out := &ProgramWithSessions{Program: program, Sessions: make([]domain.TrainingSession, 0, len(sessions))}
	for _, session := range sessions {
		out.Sessions = append(out.Sessions, *session)
	}
	return out, nil
}

func (s *programService) ListPrograms(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingProgram, error) {
	return s.programRepo.GetByUserID(ctx, userID)
}

func (s *programService) UpdateProgramStatus(ctx context.Context, userID, programID primitive.ObjectID, status domain.ProgramStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidationFailed, status)
	}
	if _, err := s.ownedProgram(ctx, userID, programID); err != nil {
		return err
	}

	if err := s.programRepo.UpdateStatus(ctx, programID, userID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	if status == domain.ProgramActive {
		if _, err := s.programRepo.ArchiveActive(ctx, userID, programID); err != nil {
			return fmt.Errorf("archive active programs: %w", err)
		}
	}
	return nil
}

func (s *programService) ListSessions(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.TrainingSession, error) {
	if _, err := s.ownedProgram(ctx, userID, programID); err != nil {
		return nil, err
	}
	return s.sessionRepo.GetByProgramID(ctx, programID)
}

// ownedProgram loads a program and hides programs of other users behind ErrProgramNotFound.
func (s *programService) ownedProgram(ctx context.Context, userID, programID primitive.ObjectID) (*domain.TrainingProgram, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if program.UserID != userID {
		return nil, ErrProgramNotFound
	}
	return program, nil
}

func (s *programService) CompleteSession(ctx context.Context, userID, sessionID primitive.ObjectID, input CompleteSessionInput) (*SessionCompletion, error) {
	if err := validateCompletion(input); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	if session.Completed {
		return nil, ErrSessionAlreadyCompleted
	}

	performedAt := s.now().UTC()
	if input.PerformedAt != nil {
		performedAt = input.PerformedAt.UTC()
	}
	session.Completed = true
	session.PerformedAt = &performedAt
	session.Duration = input.Duration
	session.Notes = input.Notes
	session.Sets = input.Sets

	if err := s.sessionRepo.Complete(ctx, session); err != nil {
		// the session was loaded above, so only a concurrent completion can miss it
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionAlreadyCompleted
		}
		return nil, err
	}
	s.metrics.CounterSessionsCompleted.Inc()

	user, before, after, err := s.grantExperience(ctx, userID, leaderboard.SessionExperience)
	if err != nil {
		return nil, fmt.Errorf("update level: %w", err)
	}

	// the nightly refresh catches up if this fails
	if _, err := s.leaderboards.UpdateUserStats(ctx, userID); err != nil {
		log.WithField("user_id", userID.Hex()).Warnf("refresh stats after session: %s", err)
	}

	return &SessionCompletion{
		Session:   session,
		Progress:  after,
		LeveledUp: after.Level > before.Level,
		NewBadges: s.unlockBadges(ctx, user),
	}, nil
}

// grantExperience adds gained to the user's progress. A write that lost against another grant is
// retried on a fresh read.
func (s *programService) grantExperience(ctx context.Context, userID primitive.ObjectID, gained int) (*domain.User, leaderboard.Progress, leaderboard.Progress, error) {
	for attempt := 1; ; attempt++ {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, leaderboard.Progress{}, leaderboard.Progress{}, err
		}
		before := leaderboard.ProgressOf(user)
		after := leaderboard.ApplyExperience(before, gained)

		err = s.userRepo.UpdateProgress(ctx, userID, repository.ProgressUpdate{
			From: repository.ProgressLevel(before),
			To:   repository.ProgressLevel(after),
		})
		if err == nil {
			return user, before, after, nil
		}
		if !errors.Is(err, repository.ErrUpdateFailed) || attempt == progressAttempts {
			return nil, leaderboard.Progress{}, leaderboard.Progress{}, err
		}
		log.WithFields(log.Fields{"user_id": userID.Hex(), "attempt": attempt}).Debug("level changed concurrently, retrying")
	}
}

// unlockBadges stores the badges the user's completed sessions now qualify for. Failures are
// logged; the next completion checks again.
func (s *programService) unlockBadges(ctx context.Context, user *domain.User) []domain.UnlockedBadge {
	logger := log.WithField("user_id", user.ID.Hex())

	sessions, err := s.sessionRepo.GetCompletedByUserID(ctx, user.ID)
	if err != nil {
		logger.Warnf("load sessions for badges: %s", err)
		return nil
	}
	unlocked := leaderboard.NewBadges(user, leaderboard.CountBadgeStats(sessions), s.now().UTC())
	if len(unlocked) == 0 {
		return nil
	}
	if err := s.userRepo.AddBadges(ctx, user.ID, unlocked); err != nil {
		logger.Warnf("store badges: %s", err)
		return nil
	}
	for _, b := range unlocked {
		logger.WithField("badge", b.Code).Info("badge unlocked")
	}
	return unlocked
}

func validateCompletion(input CompleteSessionInput) error {
	if input.Duration != nil && *input.Duration < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrValidationFailed)
	}
	for _, set := range input.Sets {
		if set.ExerciseID == primitive.NilObjectID {
			return fmt.Errorf("%w: every set needs an exercise", ErrValidationFailed)
		}
		if set.Reps != nil && *set.Reps < 0 {
			return fmt.Errorf("%w: reps cannot be negative", ErrValidationFailed)
		}
		if set.Weight != nil && *set.Weight < 0 {
			return fmt.Errorf("%w: weight cannot be negative", ErrValidationFailed)
		}
	}
	return nil
}
