package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/crawlhq/crawl-api/internal/engine"
	"github.com/crawlhq/crawl-api/internal/entities"
)

// scriptedRoller returns a fixed sequence of rolls so contests are
// deterministic in tests.
type scriptedRoller struct {
	rolls []int
	next  int
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	if r.next >= len(r.rolls) {
		return 0, fmt.Errorf("scripted roller exhausted after %d rolls", len(r.rolls))
	}
	v := r.rolls[r.next]
	r.next++
	return v, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
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

type CombatTestSuite struct {
	suite.Suite
}

func TestCombatSuite(t *testing.T) {
	suite.Run(t, new(CombatTestSuite))
}

func (s *CombatTestSuite) TestRollDieRange() {
	roller := engine.NewRoller()
	for i := 0; i < 1000; i++ {
		v, err := engine.RollDie(roller)
		s.Require().NoError(err)
		s.Require().GreaterOrEqual(v, int32(1))
		s.Require().LessOrEqual(v, int32(engine.DieSides))
	}
}

func (s *CombatTestSuite) TestAttackRollUntrainedPenalty() {
	// Skill level 0 attacks take a -5 penalty: roll 12 totals 7.
	roller := &scriptedRoller{rolls: []int{12}}

	result, err := engine.AttackRoll(roller, 0, engine.Modifiers{})
	s.Require().NoError(err)
	s.Assert().Equal(int32(12), result.Roll)
	s.Assert().Equal(int32(7), result.Total)
	s.Assert().False(result.Critical)
	s.Assert().False(result.Fumble)
}

func (s *CombatTestSuite) TestAttackRollModifiers() {
	roller := &scriptedRoller{rolls: []int{10}}

	result, err := engine.AttackRoll(roller, 15, engine.Modifiers{
		ItemBonus: 2,
		Buffs:     3,
		Debuffs:   1,
	})
	s.Require().NoError(err)
	s.Assert().Equal(int32(10+15+2+3-1), result.Total)
}

func (s *CombatTestSuite) TestAttackRollCriticalAndFumble() {
	roller := &scriptedRoller{rolls: []int{20, 1}}

	crit, err := engine.AttackRoll(roller, 10, engine.Modifiers{})
	s.Require().NoError(err)
	s.Assert().True(crit.Critical)
	s.Assert().False(crit.Fumble)

	fumble, err := engine.AttackRoll(roller, 10, engine.Modifiers{})
	s.Require().NoError(err)
	s.Assert().True(fumble.Fumble)
	s.Assert().False(fumble.Critical)
}

func (s *CombatTestSuite) TestDefenseUsesBestDefensiveSkill() {
	defender := &entities.Character{
		Skills: map[string]int32{
			engine.SkillDodge:     3,
			engine.SkillShieldUse: 8,
			engine.SkillParry:     5,
		},
	}
	s.Assert().Equal(int32(8), engine.DefenseSkillLevel(defender))

	// Untrained defenders roll with level 0 and take the penalty.
	s.Assert().Equal(int32(0), engine.DefenseSkillLevel(&entities.Enemy{}))
}

func (s *CombatTestSuite) TestDamage() {
	testCases := []struct {
		name         string
		skillLevel   int32
		weaponDamage int32
		critical     bool
		mods         engine.Modifiers
		expected     int32
	}{
		{
			name:       "floors at one",
			skillLevel: 0,
			expected:   1,
		},
		{
			name:         "critical doubles",
			skillLevel:   25,
			weaponDamage: 3,
			critical:     true,
			expected:     16, // (25/5 + 3) * 2
		},
		{
			name:         "ability bonus included",
			skillLevel:   10,
			weaponDamage: 2,
			mods:         engine.Modifiers{AbilityBonus: 3},
			expected:     7,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, engine.Damage(tc.skillLevel, tc.weaponDamage, tc.critical, tc.mods))
		})
	}
}

func (s *CombatTestSuite) TestResolveAttackMiss() {
	// Untrained attacker rolls 12 for a total of 7; defender with dodge 3
	// rolls 6 for a total of 9. 7 < 9 misses with no damage.
	roller := &scriptedRoller{rolls: []int{12, 6}}

	attacker := &entities.Character{ID: "char_1", Skills: map[string]int32{}}
	defender := &entities.Enemy{
		ID:        "enemy_1",
		CurrentHP: 10,
		Skills:    map[string]int32{engine.SkillDodge: 3},
	}

	outcome, err := engine.ResolveAttack(roller, attacker, defender, "swordsmanship", 1, engine.Modifiers{}, engine.Modifiers{})
	s.Require().NoError(err)
	s.Assert().Equal(int32(7), outcome.AttackRoll.Total)
	s.Assert().Equal(int32(9), outcome.DefenseRoll.Total)
	s.Assert().False(outcome.Hit)
	s.Assert().Zero(outcome.Damage)
	s.Assert().Zero(outcome.ActualDamage)
	s.Assert().Equal(int32(10), defender.CurrentHP, "engine must not mutate the defender")
}

func (s *CombatTestSuite) TestResolveAttackClampsActualDamage() {
	// Critical for 16 damage against an enemy with 5 health left.
	roller := &scriptedRoller{rolls: []int{20, 2}}

	attacker := &entities.Character{ID: "char_1", Skills: map[string]int32{"swordsmanship": 25}}
	defender := &entities.Enemy{ID: "enemy_1", CurrentHP: 5, Skills: map[string]int32{}}

	outcome, err := engine.ResolveAttack(roller, attacker, defender, "swordsmanship", 3, engine.Modifiers{}, engine.Modifiers{})
	s.Require().NoError(err)
	s.Assert().True(outcome.Hit)
	s.Assert().True(outcome.Critical)
	s.Assert().Equal(int32(16), outcome.Damage)
	s.Assert().Equal(int32(5), outcome.ActualDamage)
	s.Assert().LessOrEqual(outcome.ActualDamage, defender.CurrentHP)
}

func (s *CombatTestSuite) TestApplyDamageLifecycle() {
	c := &entities.Character{
		CurrentHP: 10,
		MaxHP:     20,
		Status:    entities.CharacterStatusActive,
	}

	s.Assert().Equal(int32(4), engine.ApplyDamage(c, 4))
	s.Assert().Equal(int32(6), c.CurrentHP)
	s.Assert().Equal(entities.CharacterStatusActive, c.Status)

	// Reaching 0 the first time knocks out; overkill is clamped.
	s.Assert().Equal(int32(6), engine.ApplyDamage(c, 99))
	s.Assert().Equal(int32(0), c.CurrentHP)
	s.Assert().Equal(entities.CharacterStatusKnockedOut, c.Status)

	// Hit while knocked out kills.
	engine.ApplyDamage(c, 3)
	s.Assert().Equal(entities.CharacterStatusDead, c.Status)
}

func (s *CombatTestSuite) TestApplyHealing() {
	c := &entities.Character{
		CurrentHP: 5,
		MaxHP:     20,
		Status:    entities.CharacterStatusActive,
	}

	s.Assert().Equal(int32(15), engine.ApplyHealing(c, 15))
	s.Assert().Equal(int32(20), c.CurrentHP)

	// Already at the ceiling.
	s.Assert().Equal(int32(0), engine.ApplyHealing(c, 5))

	// Healing never resurrects.
	dead := &entities.Character{CurrentHP: 0, MaxHP: 20, Status: entities.CharacterStatusDead}
	s.Assert().Equal(int32(0), engine.ApplyHealing(dead, 10))
	s.Assert().Equal(entities.CharacterStatusDead, dead.Status)

	// Knocked-out characters regain health but not their feet.
	down := &entities.Character{CurrentHP: 0, MaxHP: 20, Status: entities.CharacterStatusKnockedOut}
	s.Assert().Equal(int32(10), engine.ApplyHealing(down, 10))
	s.Assert().Equal(entities.CharacterStatusKnockedOut, down.Status)
}

func (s *CombatTestSuite) TestApplyEnemyDamage() {
	e := &entities.Enemy{CurrentHP: 5, MaxHP: 10}

	s.Assert().Equal(int32(5), engine.ApplyEnemyDamage(e, 8))
	s.Assert().Equal(int32(0), e.CurrentHP)
	s.Assert().False(e.IsAlive())
}
