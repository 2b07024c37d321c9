package service

import (
	"testing"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/metrics"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testNow is Monday 2026-10-19, mid afternoon.
var testNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

type testEnv struct {
	users     *userRepoMock
	profiles  *profileRepoMock
	exercises *exerciseRepoMock
	programs  *programRepoMock
	sessions  *sessionRepoMock
	stats     *statsRepoMock
	metrics   *metrics.Manager

	userService           UserService
	profileService        ProfileService
	recommendationService RecommendationService
	leaderboardService    LeaderboardService
	programService        ProgramService
	socialService         SocialService
	coachingService       CoachingService
	exerciseService       ExerciseService
}

func newTestEnv(users ...*domain.User) *testEnv {
	env := &testEnv{
		users:     newUserRepoMock(users...),
		profiles:  newProfileRepoMock(),
		exercises: newExerciseRepoMock(),
		programs:  newProgramRepoMock(),
		sessions:  newSessionRepoMock(),
		stats:     newStatsRepoMock(),
		metrics:   metrics.NewTestManager(),
	}
	now := func() time.Time { return testNow }

	env.userService = NewUserService(env.users)
	env.profileService = NewProfileService(env.profiles)
	env.recommendationService = NewRecommendationService(env.profileService, 1, time.Minute, env.metrics)
	env.leaderboardService = NewLeaderboardService(env.users, env.sessions, env.stats, env.metrics, now)
	env.programService = NewProgramService(
		env.profileService,
		env.recommendationService,
		env.leaderboardService,
		env.users,
		env.programs,
		env.sessions,
		env.metrics,
		now,
	)
	env.socialService = NewSocialService(env.users)
	env.coachingService = NewCoachingService(env.users, env.recommendationService)
	env.exerciseService = NewExerciseService(env.exercises, env.profileService)
	return env
}

func newUser(email string, role domain.Role) *domain.User {
	return &domain.User{
		Name:         email,
		Email:        email,
		Role:         role,
		Level:        domain.StartingLevel,
		NextLevelExp: domain.StartingNextLevelExp,
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
