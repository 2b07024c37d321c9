// Package schedule turns configured training weekdays into calendar dates.
//
// An empty set of training days means automatic scheduling is off. That is a valid state and the
// functions report it with nil results rather than errors.
package schedule

import (
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

var weekdays = map[domain.WeekDay]time.Weekday{
	domain.Sunday:    time.Sunday,
	domain.Monday:    time.Monday,
	domain.Tuesday:   time.Tuesday,
	domain.Wednesday: time.Wednesday,
	domain.Thursday:  time.Thursday,
	domain.Friday:    time.Friday,
	domain.Saturday:  time.Saturday,
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextOccurrence returns the next date falling on day, at midnight. When inclusive is true and
// from already falls on day, from's own date is returned. CUSTOM returns from unchanged.
func NextOccurrence(from time.Time, day domain.WeekDay, inclusive bool) time.Time {
	target, ok := weekdays[day]
	if !ok {
		return from
	}

	start := Midnight(from)
	delta := int(target) - int(start.Weekday())
	if delta < 0 || (delta == 0 && !inclusive) {
		delta += 7
	}
	return start.AddDate(0, 0, delta)
}

// NextSessionDate returns the earliest training day strictly after from's date. It returns nil
// when no schedulable day is configured.
func NextSessionDate(from time.Time, days []domain.WeekDay) *time.Time {
	var earliest *time.Time
	for _, d := range days {
		if _, ok := weekdays[d]; !ok {
			continue
		}
		next := NextOccurrence(from, d, false)
		if earliest == nil || next.Before(*earliest) {
			earliest = &next
		}
	}
	return earliest
}

// DetermineStartDate picks the first session date of a program. A requested date that falls on
// a training day is kept; otherwise the next training day after it is used. Without a request
// the next training day after now is used.
func DetermineStartDate(requested *time.Time, days []domain.WeekDay, now time.Time) *time.Time {
	if len(days) == 0 {
		return nil
	}

	if requested == nil {
		return NextSessionDate(Midnight(now), days)
	}

	start := Midnight(*requested)
	for _, d := range days {
		if wd, ok := weekdays[d]; ok && wd == start.Weekday() {
			return &start
		}
	}
	return NextSessionDate(start, days)
}

// GenerateSessionDates returns up to n dates: start followed by successive training days. It
// returns nil when start is nil or no days are configured.
func GenerateSessionDates(start *time.Time, days []domain.WeekDay, n int) []time.Time {
	if start == nil || len(days) == 0 || n <= 0 {
		return nil
	}

	current := Midnight(*start)
	dates := make([]time.Time, 0, n)
	dates = append(dates, current)
	for i := 1; i < n; i++ {
		next := NextSessionDate(current, days)
		if next == nil {
			break
		}
		dates = append(dates, *next)
		current = *next
	}
	return dates
}

// Weekdays parses a list of weekday names, skipping empty entries.
func Weekdays(names []string) ([]domain.WeekDay, bool) {
	out := make([]domain.WeekDay, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		d := domain.WeekDay(n)
		if !d.Valid() {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}
