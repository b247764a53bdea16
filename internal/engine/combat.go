package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
)

// Core combat constants.
const (
	// DieSides is the size of the contest die.
	DieSides = 20
	// CriticalRoll doubles damage on a hit.
	CriticalRoll = 20
	// FumbleRoll marks the minimal outcome.
	FumbleRoll = 1
	// UntrainedPenalty applies when attacking with a level-0 skill.
	UntrainedPenalty = -5
	// SkillCheckDifficulty is the fixed threshold for standalone skill checks.
	SkillCheckDifficulty = 16
	// MaxSkillLevel caps every skill.
	MaxSkillLevel = 100
)

// Defense and initiative skill identifiers. Defense uses the best of the
// three defensive skills; initiative scales with perception.
const (
	SkillDodge      = "dodge"
	SkillShieldUse  = "shield_use"
	SkillParry      = "parry"
	SkillPerception = "perception"
)

// Combatant is the view of a character or enemy the engine needs. Both
// entities.Character and entities.Enemy satisfy it.
type Combatant interface {
	core.Entity
	SkillLevel(skillID string) int32
	CurrentHealth() int32
}

// Compile-time checks that both entity kinds are combatants.
var (
	_ Combatant = (*entities.Character)(nil)
	_ Combatant = (*entities.Enemy)(nil)
)

// Modifiers adjust a roll or damage computation. ItemBonus, Buffs and
// Debuffs apply to contest rolls; AbilityBonus applies to damage.
type Modifiers struct {
	ItemBonus    int32
	Buffs        int32
	Debuffs      int32
	AbilityBonus int32
}

// RollResult is the breakdown of one contest roll.
type RollResult struct {
	Roll     int32
	Total    int32
	Critical bool
	Fumble   bool
}

// RollDie rolls the contest die, returning a value in [1, DieSides].
func RollDie(roller dice.Roller) (int32, error) {
	v, err := roller.Roll(DieSides)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll die")
	}
	return int32(v), nil
}

// AttackRoll rolls a skill contest: die + skill level + item bonus + buffs
// - debuffs, with the untrained penalty at skill level 0.
func AttackRoll(roller dice.Roller, skillLevel int32, mods Modifiers) (*RollResult, error) {
	roll, err := RollDie(roller)
	if err != nil {
		return nil, err
	}

	total := roll + skillLevel + mods.ItemBonus + mods.Buffs - mods.Debuffs
	if skillLevel == 0 {
		total += UntrainedPenalty
	}

	return &RollResult{
		Roll:     roll,
		Total:    total,
		Critical: roll == CriticalRoll,
		Fumble:   roll == FumbleRoll,
	}, nil
}

// DefenseSkillLevel returns the best of the defender's defensive skills.
func DefenseSkillLevel(defender Combatant) int32 {
	level := defender.SkillLevel(SkillDodge)
	if l := defender.SkillLevel(SkillShieldUse); l > level {
		level = l
	}
	if l := defender.SkillLevel(SkillParry); l > level {
		level = l
	}
	return level
}

// DefenseRoll rolls the defender's contest using the best defensive skill.
func DefenseRoll(roller dice.Roller, defender Combatant, mods Modifiers) (*RollResult, error) {
	return AttackRoll(roller, DefenseSkillLevel(defender), mods)
}

// Damage computes hit damage: floor(skillLevel/5) + weapon damage + ability
// bonus, doubled on a critical, never below 1.
func Damage(skillLevel, weaponDamage int32, critical bool, mods Modifiers) int32 {
	dmg := skillLevel/5 + weaponDamage + mods.AbilityBonus
	if critical {
		dmg *= 2
	}
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// AttackOutcome is the full breakdown of one resolved attack. The engine
// never mutates the defender; applying ActualDamage is the caller's
// explicit, auditable step.
type AttackOutcome struct {
	AttackRoll   *RollResult
	DefenseRoll  *RollResult
	Hit          bool
	Damage       int32
	ActualDamage int32
	Critical     bool
	Fumble       bool
}

// ResolveAttack rolls the attacker's contest with skillID against the
// defender's defense. The attack hits when its total meets or exceeds the
// defense total; damage is clamped to the defender's remaining health.
func ResolveAttack(
	roller dice.Roller,
	attacker, defender Combatant,
	skillID string,
	weaponDamage int32,
	attackMods, defenseMods Modifiers,
) (*AttackOutcome, error) {
	skillLevel := attacker.SkillLevel(skillID)

	atk, err := AttackRoll(roller, skillLevel, attackMods)
	if err != nil {
		return nil, err
	}
	def, err := DefenseRoll(roller, defender, defenseMods)
	if err != nil {
		return nil, err
	}

	outcome := &AttackOutcome{
		AttackRoll:  atk,
		DefenseRoll: def,
		Hit:         atk.Total >= def.Total,
		Critical:    atk.Critical,
		Fumble:      atk.Fumble,
	}

	if outcome.Hit {
		outcome.Damage = Damage(skillLevel, weaponDamage, atk.Critical, attackMods)
		outcome.ActualDamage = outcome.Damage
		if hp := defender.CurrentHealth(); outcome.ActualDamage > hp {
			outcome.ActualDamage = hp
		}
		if outcome.ActualDamage < 0 {
			outcome.ActualDamage = 0
		}
	}

	return outcome, nil
}

// ApplyDamage reduces a character's health, clamped at 0, and advances the
// lifecycle when health reaches 0: active characters are knocked out,
// knocked-out characters die. Returns the damage actually applied.
func ApplyDamage(c *entities.Character, amount int32) int32 {
	if amount <= 0 {
		return 0
	}

	actual := amount
	if actual > c.CurrentHP {
		actual = c.CurrentHP
	}
	c.CurrentHP -= actual

	if c.CurrentHP == 0 {
		switch c.Status {
		case entities.CharacterStatusActive:
			c.Status = entities.CharacterStatusKnockedOut
		case entities.CharacterStatusKnockedOut:
			c.Status = entities.CharacterStatusDead
		}
	}

	return actual
}

// ApplyHealing raises a character's health, clamped at the maximum. Healing
// never resurrects: dead characters receive nothing, and a knocked-out
// character's status is untouched. Returns the healing actually applied.
func ApplyHealing(c *entities.Character, amount int32) int32 {
	if amount <= 0 || c.Status == entities.CharacterStatusDead {
		return 0
	}

	actual := amount
	if c.CurrentHP+actual > c.MaxHP {
		actual = c.MaxHP - c.CurrentHP
	}
	c.CurrentHP += actual
	return actual
}

// ApplyEnemyDamage reduces an enemy's health, clamped at 0. Returns the
// damage actually applied.
func ApplyEnemyDamage(e *entities.Enemy, amount int32) int32 {
	if amount <= 0 {
		return 0
	}

	actual := amount
	if actual > e.CurrentHP {
		actual = e.CurrentHP
	}
	e.CurrentHP -= actual
	return actual
}
