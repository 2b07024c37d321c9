package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type refresherMock struct {
	calls    int
	deadline bool
	err      error
}

func (r *refresherMock) UpdateAllUsersStats(ctx context.Context) (int, int, error) {
	r.calls++
	_, r.deadline = ctx.Deadline()
	return 3, 1, r.err
}

func TestScheduler_ScheduleLeaderboardRefresh(t *testing.T) {
	s := NewScheduler(&refresherMock{}, time.Minute)

	require.NoError(t, s.ScheduleLeaderboardRefresh(""))
	assert.Equal(t, 0, s.Jobs())

	require.NoError(t, s.ScheduleLeaderboardRefresh("0 3 * * *"))
	assert.Equal(t, 1, s.Jobs())

	assert.Error(t, s.ScheduleLeaderboardRefresh("every night"))
	assert.Equal(t, 1, s.Jobs())
}

func TestScheduler_RefreshLeaderboards(t *testing.T) {
	refresher := &refresherMock{}
	s := NewScheduler(refresher, time.Minute)

	s.RefreshLeaderboards()
	assert.Equal(t, 1, refresher.calls)
	assert.True(t, refresher.deadline)

	refresher.err = errors.New("mongo down")
	s.RefreshLeaderboards()
	assert.Equal(t, 2, refresher.calls)
}

func TestScheduler_NoTimeout(t *testing.T) {
	refresher := &refresherMock{}
	NewScheduler(refresher, 0).RefreshLeaderboards()
	assert.False(t, refresher.deadline)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(&refresherMock{}, time.Minute)
	require.NoError(t, s.ScheduleLeaderboardRefresh("0 3 * * *"))

	s.Start()
	s.Stop()
}
