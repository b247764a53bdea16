package intent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/crawlhq/crawl-api/internal/clients/intent"
	"github.com/crawlhq/crawl-api/internal/entities"
)

type KeywordClassifierTestSuite struct {
	suite.Suite
	classifier *intent.KeywordClassifier
	ctx        context.Context
}

func (s *KeywordClassifierTestSuite) SetupTest() {
	s.classifier = intent.NewKeywordClassifier()
	s.ctx = context.Background()
}

func (s *KeywordClassifierTestSuite) interpret(text string) *entities.Intent {
	output, err := s.classifier.Interpret(s.ctx, &intent.InterpretInput{
		Text:    text,
		Skills:  []string{"swordsmanship", "arcana", "lockpicking"},
		Enemies: []string{"Crypt Rat", "Skeleton Guard"},
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Intent)
	return output.Intent
}

func (s *KeywordClassifierTestSuite) TestAttackWithTarget() {
	got := s.interpret("attack the rat with my sword")

	s.Equal(entities.IntentAttack, got.Type)
	s.Equal("Crypt Rat", got.Target)
}

func (s *KeywordClassifierTestSuite) TestAttackMatchesFullName() {
	got := s.interpret("strike the skeleton guard")

	s.Equal(entities.IntentAttack, got.Type)
	s.Equal("Skeleton Guard", got.Target)
}

func (s *KeywordClassifierTestSuite) TestAttackWithSkill() {
	got := s.interpret("attack using swordsmanship")

	s.Equal(entities.IntentAttack, got.Type)
	s.Equal("swordsmanship", got.Skill)
}

func (s *KeywordClassifierTestSuite) TestMoveWithDirection() {
	got := s.interpret("go north")

	s.Equal(entities.IntentMove, got.Type)
	s.Equal("north", got.Target)
}

func (s *KeywordClassifierTestSuite) TestBareDirection() {
	got := s.interpret("north")

	s.Equal(entities.IntentMove, got.Type)
	s.Equal("north", got.Target)
}

func (s *KeywordClassifierTestSuite) TestDefendMapsToDodge() {
	got := s.interpret("defend myself")

	s.Equal(entities.IntentUseSkill, got.Type)
	s.Equal("dodge", got.Skill)
}

func (s *KeywordClassifierTestSuite) TestCastMapsToSkill() {
	got := s.interpret("cast arcana")

	s.Equal(entities.IntentUseSkill, got.Type)
	s.Equal("arcana", got.Skill)
}

func (s *KeywordClassifierTestSuite) TestUseItem() {
	got := s.interpret("drink the healing potion")

	s.Equal(entities.IntentUseItem, got.Type)
	s.Equal("healing potion", got.Target)
}

func (s *KeywordClassifierTestSuite) TestInteract() {
	got := s.interpret("look around the room")

	s.Equal(entities.IntentInteract, got.Type)
}

func (s *KeywordClassifierTestSuite) TestUnknown() {
	got := s.interpret("florble the gribnak")

	s.Equal(entities.IntentUnknown, got.Type)
	s.Less(got.Confidence, 0.5)
}

func (s *KeywordClassifierTestSuite) TestEmptyInput() {
	output, err := s.classifier.Interpret(s.ctx, &intent.InterpretInput{Text: "   "})
	s.Require().NoError(err)
	s.Equal(entities.IntentUnknown, output.Intent.Type)
}

func TestKeywordClassifierTestSuite(t *testing.T) {
	suite.Run(t, new(KeywordClassifierTestSuite))
}
