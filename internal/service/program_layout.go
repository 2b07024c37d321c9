package service

import (
	"fmt"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

// splitRotation lists the session names a template cycles through.
var splitRotation = map[domain.ProgramTemplate][]string{
	domain.TemplateFullBody:     {"Full Body A", "Full Body B"},
	domain.TemplateUpperLower:   {"Upper", "Lower"},
	domain.TemplatePushPullLegs: {"Push", "Pull", "Legs"},
	domain.TemplatePHAT: {
		"Upper Power", "Lower Power", "Back & Shoulders Hypertrophy",
		"Lower Hypertrophy", "Chest & Arms Hypertrophy",
	},
	domain.TemplateBroSplit:    {"Chest", "Back", "Shoulders", "Legs", "Arms", "Abs & Calves"},
	domain.TemplateArnoldSplit: {"Chest & Back", "Shoulders & Arms", "Legs"},
}

// SessionNames names the n weekly sessions of a template. CUSTOM sessions are numbered.
func SessionNames(template domain.ProgramTemplate, n int) []string {
	names := make([]string, 0, n)
	rotation := splitRotation[template]
	for i := 0; i < n; i++ {
		if len(rotation) == 0 {
			names = append(names, fmt.Sprintf("Session %d", i+1))
			continue
		}
		names = append(names, rotation[i%len(rotation)])
	}
	return names
}
