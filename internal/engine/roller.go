// Package engine implements the combat resolution rules: dice rolls, attack
// and defense contests, damage, skill progression, derived stats, and
// initiative. Everything here is pure math over an injected dice.Roller, so
// outcomes are fully deterministic in tests.
package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// toolkitRoller adapts rpg-toolkit dice rolls to the dice.Roller interface.
type toolkitRoller struct{}

// NewRoller returns the production roller.
func NewRoller() dice.Roller {
	return &toolkitRoller{}
}

func (r *toolkitRoller) Roll(size int) (int, error) {
	roll, err := dice.NewRoll(1, size)
	if err != nil {
		return 0, err
	}
	return roll.GetValue(), nil
}

func (r *toolkitRoller) RollN(count, size int) ([]int, error) {
	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}
