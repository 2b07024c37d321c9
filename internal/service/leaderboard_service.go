package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/leaderboard"
	"github.com/yulannn/Myo-Fitness-sub004/internal/metrics"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaderboardView is a ranked leaderboard among the caller and their friends.
type LeaderboardView struct {
	Type              domain.LeaderboardType `json:"type"`
	Entries           []leaderboard.Entry    `json:"entries"`
	CurrentUserRank   int                    `json:"currentUserRank,omitempty"`
	TotalParticipants int                    `json:"totalParticipants"`
}

type LeaderboardService interface {
	GetFriendsLeaderboard(ctx context.Context, userID primitive.ObjectID, t domain.LeaderboardType) (*LeaderboardView, error)
	GetUserStats(ctx context.Context, userID primitive.ObjectID) (*domain.LeaderboardStats, error)
	// UpdateUserStats recomputes and stores the stats of one user.
	UpdateUserStats(ctx context.Context, userID primitive.ObjectID) (*domain.LeaderboardStats, error)
	// UpdateAllUsersStats refreshes every user. A failing user does not stop the run.
	UpdateAllUsersStats(ctx context.Context) (updated int, failed int, err error)
}

type leaderboardService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	statsRepo   repository.LeaderboardStatsRepository
	metrics     *metrics.Manager
	now         func() time.Time
}

func NewLeaderboardService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	statsRepo repository.LeaderboardStatsRepository,
	m *metrics.Manager,
	now func() time.Time,
) LeaderboardService {
	if now == nil {
		now = time.Now
	}
	return &leaderboardService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		statsRepo:   statsRepo,
		metrics:     m,
		now:         now,
	}
}

func (s *leaderboardService) GetFriendsLeaderboard(ctx context.Context, userID primitive.ObjectID, t domain.LeaderboardType) (*LeaderboardView, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown leaderboard type %q", ErrValidationFailed, t)
	}

	me, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	participantIDs := append([]primitive.ObjectID{}, me.FriendIDs...)
	participantIDs = append(participantIDs, me.ID)

	users, err := s.userRepo.GetByIDs(ctx, participantIDs)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	stats, err := s.statsRepo.GetByUserIDs(ctx, participantIDs)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	statsByUser := make(map[primitive.ObjectID]*domain.LeaderboardStats, len(stats))
	for i := range stats {
		statsByUser[stats[i].UserID] = &stats[i]
	}

	entries := make([]leaderboard.Entry, 0, len(users))
	for i := range users {
		u := &users[i]
		entries = append(entries, leaderboard.Entry{
			UserID:        u.ID,
			UserName:      u.Name,
			Value:         leaderboard.Value(t, u, statsByUser[u.ID]),
			Level:         u.Level,
			IsCurrentUser: u.ID == userID,
		})
	}
	leaderboard.Rank(entries)

	return &LeaderboardView{
		Type:              t,
		Entries:           entries,
		CurrentUserRank:   leaderboard.RankOf(entries, userID),
		TotalParticipants: len(entries),
	}, nil
}

func (s *leaderboardService) GetUserStats(ctx context.Context, userID primitive.ObjectID) (*domain.LeaderboardStats, error) {
	stats, err := s.statsRepo.GetByUserID(ctx, userID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	// not refreshed yet
	return s.UpdateUserStats(ctx, userID)
}

func (s *leaderboardService) UpdateUserStats(ctx context.Context, userID primitive.ObjectID) (*domain.LeaderboardStats, error) {
	sessions, err := s.sessionRepo.GetCompletedByUserID(ctx, userID)
	if err != nil {
		s.metrics.CounterLeaderboardRefreshes.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load completed sessions: %w", err)
	}

	stats := leaderboard.Aggregate(userID, sessions, s.now())
	if err := s.statsRepo.Upsert(ctx, &stats); err != nil {
		s.metrics.CounterLeaderboardRefreshes.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("store leaderboard stats: %w", err)
	}

	s.metrics.CounterLeaderboardRefreshes.WithLabelValues("ok").Inc()
	log.WithField("user_id", userID.Hex()).Debug("leaderboard stats updated")
	return &stats, nil
}

func (s *leaderboardService) UpdateAllUsersStats(ctx context.Context) (int, int, error) {
	start := time.Now()
	defer func() {
		s.metrics.HistStatsRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	ids, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list users: %w", err)
	}

	updated, failed := 0, 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return updated, failed, err
		}
		if _, err := s.UpdateUserStats(ctx, id); err != nil {
			failed++
			log.WithField("user_id", id.Hex()).Errorf("update leaderboard stats: %s", err)
			continue
		}
		updated++
	}

	log.Infof("leaderboard stats refreshed: %d updated, %d failed", updated, failed)
	return updated, failed, nil
}
