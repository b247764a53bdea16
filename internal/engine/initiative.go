package engine

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// InitiativeEntry is one participant's position in the acting order.
type InitiativeEntry struct {
	Combatant Combatant
	Roll      int32
	Total     int32
}

// RollInitiative rolls a die + floor(perception/10) for each participant and
// returns entries sorted by total, highest first. The sort is stable, so
// ties keep the order participants were passed in.
func RollInitiative(roller dice.Roller, participants []Combatant) ([]InitiativeEntry, error) {
	entries := make([]InitiativeEntry, 0, len(participants))
	for _, p := range participants {
		roll, err := RollDie(roller)
		if err != nil {
			return nil, err
		}
		entries = append(entries, InitiativeEntry{
			Combatant: p,
			Roll:      roll,
			Total:     roll + p.SkillLevel(SkillPerception)/10,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})

	return entries, nil
}
