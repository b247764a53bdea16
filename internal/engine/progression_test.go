package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/crawlhq/crawl-api/internal/engine"
)

type ProgressionTestSuite struct {
	suite.Suite
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) TestChanceStrictlyDecreasing() {
	prev := 101.0
	for level := int32(0); level <= engine.MaxSkillLevel; level++ {
		chance := engine.ProgressionChance(level)
		s.Require().Greater(chance, 0.0, "level %d", level)
		s.Require().LessOrEqual(chance, 100.0, "level %d", level)
		s.Require().Less(chance, prev, "level %d", level)
		prev = chance
	}

	s.Assert().InDelta(10.0, engine.ProgressionChance(0), 0.0001)
	s.Assert().InDelta(5.0, engine.ProgressionChance(10), 0.0001)
}

func (s *ProgressionTestSuite) TestLevelUpOnLowDraw() {
	// Level 0 has a 10% chance; a draw of 1 maps to 0.00%, below 10.
	roller := &scriptedRoller{rolls: []int{1}}

	result, err := engine.ProcessSkillProgression(roller, 0)
	s.Require().NoError(err)
	s.Assert().True(result.LeveledUp)
	s.Assert().Equal(int32(0), result.OldLevel)
	s.Assert().Equal(int32(1), result.NewLevel)
}

func (s *ProgressionTestSuite) TestNoLevelUpOnHighDraw() {
	// A draw of 10000 maps to 99.99%, above any chance.
	roller := &scriptedRoller{rolls: []int{10000}}

	result, err := engine.ProcessSkillProgression(roller, 0)
	s.Require().NoError(err)
	s.Assert().False(result.LeveledUp)
	s.Assert().Equal(int32(0), result.NewLevel)
}

func (s *ProgressionTestSuite) TestBoundaryDraw() {
	// Level 10 has a 5% chance. Draw 501 maps to exactly 5.00, which is
	// not below the chance; draw 500 maps to 4.99, which is.
	miss, err := engine.ProcessSkillProgression(&scriptedRoller{rolls: []int{501}}, 10)
	s.Require().NoError(err)
	s.Assert().False(miss.LeveledUp)

	hit, err := engine.ProcessSkillProgression(&scriptedRoller{rolls: []int{500}}, 10)
	s.Require().NoError(err)
	s.Assert().True(hit.LeveledUp)
	s.Assert().Equal(int32(11), hit.NewLevel)
}

func (s *ProgressionTestSuite) TestCappedAtMax() {
	roller := &scriptedRoller{rolls: []int{1}}

	result, err := engine.ProcessSkillProgression(roller, engine.MaxSkillLevel)
	s.Require().NoError(err)
	s.Assert().False(result.LeveledUp)
	s.Assert().Equal(int32(engine.MaxSkillLevel), result.NewLevel)
	s.Assert().Zero(roller.next, "capped skills must not consume a draw")
}
