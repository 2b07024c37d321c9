package domain

// ProgramTemplate is a named workout split.
type ProgramTemplate string

const (
	TemplateFullBody     ProgramTemplate = "FULL_BODY"
	TemplateUpperLower   ProgramTemplate = "UPPER_LOWER"
	TemplatePushPullLegs ProgramTemplate = "PUSH_PULL_LEGS"
	TemplatePHAT         ProgramTemplate = "PHAT"
	TemplateBroSplit     ProgramTemplate = "BRO_SPLIT"
	TemplateArnoldSplit  ProgramTemplate = "ARNOLD_SPLIT"
	TemplateCustom       ProgramTemplate = "CUSTOM"
)

var allTemplates = []ProgramTemplate{
	TemplateFullBody,
	TemplateUpperLower,
	TemplatePushPullLegs,
	TemplatePHAT,
	TemplateBroSplit,
	TemplateArnoldSplit,
	TemplateCustom,
}

// AllTemplates returns every template in declaration order.
func AllTemplates() []ProgramTemplate {
	out := make([]ProgramTemplate, len(allTemplates))
	copy(out, allTemplates)
	return out
}

func (t ProgramTemplate) Valid() bool {
	for _, known := range allTemplates {
		if t == known {
			return true
		}
	}
	return false
}

// ExperienceLevel of the user in resistance training.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "BEGINNER"
	LevelIntermediate ExperienceLevel = "INTERMEDIATE"
	LevelAdvanced     ExperienceLevel = "ADVANCED"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Goal string

const (
	GoalMuscleGain  Goal = "MUSCLE_GAIN"
	GoalWeightLoss  Goal = "WEIGHT_LOSS"
	GoalEndurance   Goal = "ENDURANCE"
	GoalMaintenance Goal = "MAINTENANCE"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalMuscleGain, GoalWeightLoss, GoalEndurance, GoalMaintenance:
		return true
	}
	return false
}

// WeekDay of a configured training day. WeekDayCustom means "no automatic scheduling".
type WeekDay string

const (
	Sunday    WeekDay = "SUNDAY"
	Monday    WeekDay = "MONDAY"
	Tuesday   WeekDay = "TUESDAY"
	Wednesday WeekDay = "WEDNESDAY"
	Thursday  WeekDay = "THURSDAY"
	Friday    WeekDay = "FRIDAY"
	Saturday  WeekDay = "SATURDAY"

	WeekDayCustom WeekDay = "CUSTOM"
)

func (d WeekDay) Valid() bool {
	switch d {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, WeekDayCustom:
		return true
	}
	return false
}
