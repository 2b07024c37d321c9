package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/schedule"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

type scheduleOptions struct {
	days  []string
	start string
	count int
}

var scheduleOpts scheduleOptions

// nowFunc is swapped out by tests.
var nowFunc = time.Now

var errNoTrainingDays = errors.New("no schedulable training days, sessions would be left undated")

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Preview session dates for a set of training days",
	Long: `Computes the start date and the first session dates a new program would get
for the given training days. Without --start the first training day after
today is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSchedule(cmd.OutOrStdout(), scheduleOpts, nowFunc(), viper.GetBool("json"), !viper.GetBool("plain")); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	f := scheduleCmd.Flags()
	f.StringSliceVarP(&scheduleOpts.days, "days", "d", []string{"MONDAY", "WEDNESDAY", "FRIDAY"}, "Training days")
	f.StringVarP(&scheduleOpts.start, "start", "s", "", "Requested start date (YYYY-MM-DD)")
	f.IntVarP(&scheduleOpts.count, "count", "c", 6, "Number of sessions to schedule")
}

func runSchedule(w io.Writer, opts scheduleOptions, now time.Time, asJSON, styled bool) error {
	names := make([]string, len(opts.days))
	for i, d := range opts.days {
		names[i] = strings.ToUpper(strings.TrimSpace(d))
	}
	days, ok := schedule.Weekdays(names)
	if !ok {
		return fmt.Errorf("unknown training day in %v", opts.days)
	}
	if opts.count < 1 {
		return fmt.Errorf("count must be positive, got %d", opts.count)
	}

	var requested *time.Time
	if opts.start != "" {
		t, err := time.ParseInLocation(dateLayout, opts.start, now.Location())
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", opts.start, err)
		}
		requested = &t
	}

	start := schedule.DetermineStartDate(requested, days, now)
	if start == nil {
		return errNoTrainingDays
	}
	dates := schedule.GenerateSessionDates(start, days, opts.count)

	if asJSON {
		out := make([]string, len(dates))
		for i, d := range dates {
			out[i] = d.Format(dateLayout)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"startDate": start.Format(dateLayout),
			"sessions":  out,
		})
	}

	p := newPrinter(w, styled)
	p.Header(fmt.Sprintf("Program starting %s", start.Format("Mon 2006-01-02")))
	for i, d := range dates {
		p.Linef("Session %d  %s", i+1, p.render(p.good, d.Format("Mon 2006-01-02")))
	}
	return nil
}
