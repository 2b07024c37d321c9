package leaderboard

import (
	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
)

// SessionExperience is granted for every completed session.
const SessionExperience = 50

const levelGrowth = 1.2

// Progress is a user's position on the leveling curve.
type Progress struct {
	Level        int `json:"level"`
	Experience   int `json:"experience"`
	NextLevelExp int `json:"nextLevelExp"`
}

// ApplyExperience adds gained experience and carries the surplus over as many level-ups as it
// pays for. Each level costs 20% more than the previous one, rounded down.
func ApplyExperience(p Progress, gained int) Progress {
	if p.NextLevelExp < 1 {
		p.NextLevelExp = domain.StartingNextLevelExp
	}
	if p.Level < domain.StartingLevel {
		p.Level = domain.StartingLevel
	}

	p.Experience += gained
	for p.Experience >= p.NextLevelExp {
		p.Experience -= p.NextLevelExp
		p.Level++
		p.NextLevelExp = int(float64(p.NextLevelExp) * levelGrowth)
	}
	return p
}

// ProgressOf reads the leveling fields of a user.
func ProgressOf(u *domain.User) Progress {
	return Progress{Level: u.Level, Experience: u.Experience, NextLevelExp: u.NextLevelExp}
}

// ToNextLevel is the experience still missing for the next level.
func (p Progress) ToNextLevel() int {
	return p.NextLevelExp - p.Experience
}
