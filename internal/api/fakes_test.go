package api

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/metrics"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"
	"github.com/yulannn/Myo-Fitness-sub004/internal/scoring"
	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

// fakeUserService provisions users in memory.
type fakeUserService struct {
	users map[string]*domain.User
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: make(map[string]*domain.User)}
}

func (f *fakeUserService) Resolve(_ context.Context, identity service.Identity) (*domain.User, error) {
	email := strings.ToLower(identity.Email)
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	role := identity.Role
	if role != domain.RoleCoach {
		role = domain.RoleClient
	}
	u := &domain.User{
		ID:           primitive.NewObjectID(),
		Name:         identity.Name,
		Email:        email,
		Role:         role,
		Level:        domain.StartingLevel,
		NextLevelExp: domain.StartingNextLevelExp,
	}
	f.users[email] = u
	return u, nil
}

func (f *fakeUserService) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, service.ErrUserNotFound
}

// The fakes below embed the interface; methods a test does not set panic when called.

type fakeRecommendationService struct {
	service.RecommendationService
	recommend func(userID primitive.ObjectID) ([]scoring.TemplateScore, error)
}

func (f *fakeRecommendationService) Recommend(_ context.Context, userID primitive.ObjectID) ([]scoring.TemplateScore, error) {
	return f.recommend(userID)
}

type fakeProgramService struct {
	service.ProgramService
	create   func(userID primitive.ObjectID, input service.CreateProgramInput) (*service.ProgramWithSessions, error)
	complete func(userID, sessionID primitive.ObjectID, input service.CompleteSessionInput) (*service.SessionCompletion, error)
}

func (f *fakeProgramService) CreateProgram(_ context.Context, userID primitive.ObjectID, input service.CreateProgramInput) (*service.ProgramWithSessions, error) {
	return f.create(userID, input)
}

func (f *fakeProgramService) CompleteSession(_ context.Context, userID, sessionID primitive.ObjectID, input service.CompleteSessionInput) (*service.SessionCompletion, error) {
	return f.complete(userID, sessionID, input)
}

type fakeLeaderboardService struct {
	service.LeaderboardService
	friends func(userID primitive.ObjectID, t domain.LeaderboardType) (*service.LeaderboardView, error)
}

func (f *fakeLeaderboardService) GetFriendsLeaderboard(_ context.Context, userID primitive.ObjectID, t domain.LeaderboardType) (*service.LeaderboardView, error) {
	return f.friends(userID, t)
}

type fakeCoachingService struct {
	service.CoachingService
	clients func(coachID primitive.ObjectID) ([]domain.User, error)
}

func (f *fakeCoachingService) GetManagedClients(_ context.Context, coachID primitive.ObjectID) ([]domain.User, error) {
	return f.clients(coachID)
}

type fakeExerciseService struct {
	service.ExerciseService
	list    func(filter repository.ExerciseFilter) ([]domain.Exercise, error)
	suggest func(userID primitive.ObjectID, limit int) ([]domain.Exercise, error)
}

func (f *fakeExerciseService) ListExercises(_ context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	return f.list(filter)
}

func (f *fakeExerciseService) SuggestExercises(_ context.Context, userID primitive.ObjectID, limit int) ([]domain.Exercise, error) {
	return f.suggest(userID, limit)
}

type testServer struct {
	router   *gin.Engine
	users    *fakeUserService
	metrics  *metrics.Manager
	registry *prometheus.Registry
}

func newTestServer(services Services) *testServer {
	users := newFakeUserService()
	services.Users = users
	m, reg := metrics.NewTestManagerAndRegistry()

	router := gin.New()
	SetupRoutes(router, testSecret, services, m, reg)
	return &testServer{router: router, users: users, metrics: m, registry: reg}
}

func signToken(t *testing.T, claims jwtClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// bearer returns a valid Authorization header value for the identity.
func bearer(t *testing.T, email string, role domain.Role) string {
	t.Helper()
	return "Bearer " + signToken(t, jwtClaims{
		Email: email,
		Name:  "Test User",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)
}
