package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/crawlhq/crawl-api/internal/engine"
	"github.com/crawlhq/crawl-api/internal/entities"
)

type InitiativeTestSuite struct {
	suite.Suite
}

func TestInitiativeSuite(t *testing.T) {
	suite.Run(t, new(InitiativeTestSuite))
}

func (s *InitiativeTestSuite) TestOrderedByTotalDescending() {
	sharp := &entities.Character{ID: "char_sharp", Skills: map[string]int32{engine.SkillPerception: 30}}
	dull := &entities.Character{ID: "char_dull", Skills: map[string]int32{}}
	beast := &entities.Enemy{ID: "enemy_beast", Skills: map[string]int32{engine.SkillPerception: 10}}

	// sharp: 5+3=8, dull: 10+0=10, beast: 4+1=5
	roller := &scriptedRoller{rolls: []int{5, 10, 4}}

	order, err := engine.RollInitiative(roller, []engine.Combatant{sharp, dull, beast})
	s.Require().NoError(err)
	s.Require().Len(order, 3)
	s.Assert().Equal("char_dull", order[0].Combatant.GetID())
	s.Assert().Equal("char_sharp", order[1].Combatant.GetID())
	s.Assert().Equal("enemy_beast", order[2].Combatant.GetID())
}

func (s *InitiativeTestSuite) TestTiesKeepSubmissionOrder() {
	first := &entities.Character{ID: "char_first", Skills: map[string]int32{}}
	second := &entities.Character{ID: "char_second", Skills: map[string]int32{}}
	third := &entities.Character{ID: "char_third", Skills: map[string]int32{}}

	roller := &scriptedRoller{rolls: []int{7, 7, 7}}

	order, err := engine.RollInitiative(roller, []engine.Combatant{first, second, third})
	s.Require().NoError(err)
	s.Assert().Equal("char_first", order[0].Combatant.GetID())
	s.Assert().Equal("char_second", order[1].Combatant.GetID())
	s.Assert().Equal("char_third", order[2].Combatant.GetID())
}
