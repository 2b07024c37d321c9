// Package leaderboard holds the pure calculations behind the leaderboards: streaks, levels and
// ranking.
package leaderboard

import (
	"sort"
	"time"
)

// Streak counts consecutive training days.
type Streak struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}

// CalculateStreak computes the streaks of a user from the times their sessions were performed.
// Days are taken in now's location and several sessions on one day count once: a second session
// on the same day neither extends nor breaks a run. The current streak is the most recent run of
// consecutive days, and only while it ends today or yesterday.
func CalculateStreak(performedAt []time.Time, now time.Time) Streak {
	if len(performedAt) == 0 {
		return Streak{}
	}

	loc := now.Location()
	days := make([]int64, 0, len(performedAt))
	for _, t := range performedAt {
		days = append(days, dayNumber(t.In(loc)))
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	var runs []int
	run := 1
	for i := 1; i < len(days); i++ {
		switch days[i-1] - days[i] {
		case 0:
			// same day, keep the run going
			continue
		case 1:
			run++
		default:
			runs = append(runs, run)
			run = 1
		}
	}
	runs = append(runs, run)

	s := Streak{}
	for _, r := range runs {
		if r > s.Longest {
			s.Longest = r
		}
	}
	if dayNumber(now)-days[0] <= 1 {
		s.Current = runs[0]
	}
	return s
}

// dayNumber maps the calendar date of t to a day count, ignoring DST shifts.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
