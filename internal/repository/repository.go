package repository

import (
	"context"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
	ListIDs(ctx context.Context) ([]primitive.ObjectID, error)
	AddClientIDToCoach(ctx context.Context, coachID, clientID primitive.ObjectID) error
	GetClientsByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error)
	SetCoachForClient(ctx context.Context, clientID, coachID primitive.ObjectID) error
	// AddFriend records friendID on userID's side only; callers link both sides.
	AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) error
	// UpdateProgress writes the leveling fields only while the stored ones still equal update.From.
	// It returns ErrUpdateFailed when they have moved on.
	UpdateProgress(ctx context.Context, id primitive.ObjectID, update ProgressUpdate) error
	// AddBadges appends the badges the user does not hold yet.
	AddBadges(ctx context.Context, id primitive.ObjectID, badges []domain.UnlockedBadge) error
}

// ProgressLevel is the leveling state stored on a user.
type ProgressLevel struct {
	Level        int
	Experience   int
	NextLevelExp int
}

// ProgressUpdate moves a user from one leveling state to the next.
type ProgressUpdate struct {
	From ProgressLevel
	To   ProgressLevel
}

// FitnessProfileRepository stores one fitness profile per user.
type FitnessProfileRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.FitnessProfile, error)
	Upsert(ctx context.Context, profile *domain.FitnessProfile) error
}

// ExerciseFilter narrows a catalog listing. Zero values match everything.
type ExerciseFilter struct {
	MuscleGroupID *int
	// MaxDifficulty keeps exercises rated at or below this level, plus unrated ones.
	MaxDifficulty domain.ExperienceLevel
	CompoundOnly  bool
}

// ExerciseRepository stores the exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Exercise, error)
	List(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	// Delete only matches exercises owned by coachID.
	Delete(ctx context.Context, id, coachID primitive.ObjectID) error
}

// ProgramRepository defines the interface for interacting with training programs.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.TrainingProgram) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingProgram, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingProgram, error)
	// ArchiveActive archives every active program of the user except keepID and returns how many
	// were changed.
	ArchiveActive(ctx context.Context, userID, keepID primitive.ObjectID) (int64, error)
	UpdateStatus(ctx context.Context, id, userID primitive.ObjectID, status domain.ProgramStatus) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// SessionRepository defines the interface for interacting with training sessions.
type SessionRepository interface {
	CreateMany(ctx context.Context, sessions []*domain.TrainingSession) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSession, error)
	GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingSession, error)
	// GetCompletedByUserID returns completed sessions, most recently performed first.
	GetCompletedByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingSession, error)
	// Complete only matches sessions that are not completed yet, so a second completion of the
	// same session returns ErrNotFound.
	Complete(ctx context.Context, session *domain.TrainingSession) error
}

// LeaderboardStatsRepository stores the precomputed leaderboard aggregates.
type LeaderboardStatsRepository interface {
	Upsert(ctx context.Context, stats *domain.LeaderboardStats) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.LeaderboardStats, error)
	GetByUserIDs(ctx context.Context, userIDs []primitive.ObjectID) ([]domain.LeaderboardStats, error)
}
