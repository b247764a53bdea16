package engine

// Derived stat base values.
const (
	baseHP     = 20
	baseEnergy = 10
)

// TotalSkillLevels sums every skill level a combatant has invested.
func TotalSkillLevels(skills map[string]int32) int32 {
	var total int32
	for _, level := range skills {
		total += level
	}
	return total
}

// MaxHP derives the health ceiling from total skill investment:
// 20 + floor(total/10). Recompute whenever skills change; never cache.
func MaxHP(skills map[string]int32) int32 {
	return baseHP + TotalSkillLevels(skills)/10
}

// MaxEnergy derives the energy ceiling from total skill investment:
// 10 + floor(total/20). Recompute whenever skills change; never cache.
func MaxEnergy(skills map[string]int32) int32 {
	return baseEnergy + TotalSkillLevels(skills)/20
}
