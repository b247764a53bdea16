package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/crawlhq/crawl-api/internal/errors"
)

// percentDieSides gives progression draws hundredth-of-a-percent
// granularity so the whole engine shares one random source.
const percentDieSides = 10000

// ProgressionResult records whether exercising a skill leveled it up.
type ProgressionResult struct {
	LeveledUp bool
	OldLevel  int32
	NewLevel  int32
}

// ProgressionChance returns the level-up chance, in percent, for a skill at
// the given level: 100/(level+10). Strictly decreasing, always in (0, 100].
func ProgressionChance(level int32) float64 {
	return 100.0 / (float64(level) + 10.0)
}

// ProcessSkillProgression draws against the progression chance for a skill
// at the given level. On success the level rises by 1, capped at
// MaxSkillLevel. Progression is the sole source of character growth and is
// evaluated every time a skill is exercised, hit or miss.
func ProcessSkillProgression(roller dice.Roller, level int32) (*ProgressionResult, error) {
	result := &ProgressionResult{OldLevel: level, NewLevel: level}
	if level >= MaxSkillLevel {
		return result, nil
	}

	draw, err := roller.Roll(percentDieSides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll progression draw")
	}

	// draw-1 maps [1,10000] onto a uniform [0,100) percent in 0.01 steps.
	percent := float64(draw-1) / 100.0
	if percent < ProgressionChance(level) {
		result.LeveledUp = true
		result.NewLevel = level + 1
	}

	return result, nil
}
