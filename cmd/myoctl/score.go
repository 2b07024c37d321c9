package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/scoring"
	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type scoreOptions struct {
	frequency  int
	level      string
	goals      []string
	priorities []int
	age        int
	weight     float64
	target     float64
	top        int
}

var scoreOpts scoreOptions

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Rank program templates for a profile",
	Long: `Scores every program template against the given profile and prints them
best first, together with the reasons behind each score.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(cmd.OutOrStdout(), scoreOpts, viper.GetBool("json"), !viper.GetBool("plain")); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	f := scoreCmd.Flags()
	f.IntVarP(&scoreOpts.frequency, "frequency", "f", 3, "Training sessions per week")
	f.StringVarP(&scoreOpts.level, "level", "l", string(domain.LevelBeginner), "Experience level (BEGINNER|INTERMEDIATE|ADVANCED)")
	f.StringSliceVarP(&scoreOpts.goals, "goals", "g", nil, "Goals (MUSCLE_GAIN,WEIGHT_LOSS,ENDURANCE,MAINTENANCE)")
	f.IntSliceVarP(&scoreOpts.priorities, "priorities", "p", nil, "Prioritized muscle-group ids")
	f.IntVar(&scoreOpts.age, "age", 25, "Age in years")
	f.Float64Var(&scoreOpts.weight, "weight", 75, "Current weight in kg")
	f.Float64Var(&scoreOpts.target, "target", 0, "Target weight in kg, 0 for none")
	f.IntVarP(&scoreOpts.top, "top", "n", 0, "Only print the n best templates, 0 for all")
}

// profile validates the options the same way the API validates a saved profile.
func (o scoreOptions) profile() (scoring.Profile, error) {
	input := service.ProfileInput{
		Age:               o.age,
		Weight:            o.weight,
		TrainingFrequency: o.frequency,
		ExperienceLevel:   domain.ExperienceLevel(strings.ToUpper(o.level)),
		MusclePriorities:  o.priorities,
	}
	if o.target > 0 {
		target := o.target
		input.TargetWeight = &target
	}
	for _, g := range o.goals {
		input.Goals = append(input.Goals, domain.Goal(strings.ToUpper(strings.TrimSpace(g))))
	}
	if err := service.ValidateProfileInput(input); err != nil {
		return scoring.Profile{}, err
	}

	return scoring.Profile{
		TrainingFrequency: input.TrainingFrequency,
		ExperienceLevel:   input.ExperienceLevel,
		Goals:             input.Goals,
		MusclePriorities:  input.MusclePriorities,
		Age:               input.Age,
		Weight:            input.Weight,
		TargetWeight:      input.TargetWeight,
	}, nil
}

func runScore(w io.Writer, opts scoreOptions, asJSON, styled bool) error {
	profile, err := opts.profile()
	if err != nil {
		return err
	}

	scores := scoring.ScoreTemplates(profile)
	if opts.top > 0 && opts.top < len(scores) {
		scores = scores[:opts.top]
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(scores)
	}

	p := newPrinter(w, styled)
	p.Header(fmt.Sprintf("Templates for %d sessions/week, %s", profile.TrainingFrequency, profile.ExperienceLevel))
	for i, s := range scores {
		style := p.good
		if s.Score == 0 {
			style = p.weak
		}
		p.Linef("%d. %-16s %s", i+1, s.Template, p.render(style, fmt.Sprintf("%6.1f", s.Score)))
		for _, reason := range s.Reasons {
			p.Linef("     %s", p.render(p.muted, "- "+reason))
		}
	}
	return nil
}
