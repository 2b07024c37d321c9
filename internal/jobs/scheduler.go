package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

// StatsRefresher recomputes the leaderboard stats of every user.
type StatsRefresher interface {
	UpdateAllUsersStats(ctx context.Context) (updated int, failed int, err error)
}

// Scheduler runs the periodic background jobs.
type Scheduler struct {
	cron      *cron.Cron
	refresher StatsRefresher
	timeout   time.Duration
}

func NewScheduler(refresher StatsRefresher, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		timeout:   timeout,
	}
}

// ScheduleLeaderboardRefresh registers the refresh on a standard 5-field crontab spec.
// An empty spec leaves the job disabled.
func (s *Scheduler) ScheduleLeaderboardRefresh(spec string) error {
	if spec == "" {
		log.Warn("leaderboard refresh disabled: no schedule configured")
		return nil
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return fmt.Errorf("parse leaderboard refresh spec %q: %w", spec, err)
	}
	s.cron.Schedule(schedule, cron.FuncJob(s.RefreshLeaderboards))
	log.Infof("leaderboard refresh scheduled: %s", spec)
	return nil
}

// RefreshLeaderboards is the job body; it is bounded by the scheduler timeout.
func (s *Scheduler) RefreshLeaderboards() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	updated, failed, err := s.refresher.UpdateAllUsersStats(ctx)
	if err != nil {
		log.Errorf("leaderboard refresh aborted after %d users: %s", updated+failed, err)
		return
	}
	if failed > 0 {
		log.Warnf("leaderboard refresh: %d users failed", failed)
	}
}

// Jobs returns the number of registered jobs.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
