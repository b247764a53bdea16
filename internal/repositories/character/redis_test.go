package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/pkg/clock"
	"github.com/crawlhq/crawl-api/internal/repositories/character"
	"github.com/crawlhq/crawl-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) newCharacter(id string) *entities.Character {
	return &entities.Character{
		ID:        id,
		PlayerID:  "player_1",
		Name:      "Brennis",
		CurrentHP: 20,
		MaxHP:     20,
		Energy:    10,
		MaxEnergy: 10,
		Skills:    map[string]int32{"swordsmanship": 5},
		Inventory: []string{"healing_potion"},
		Status:    entities.CharacterStatusActive,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: s.newCharacter("char_1"),
	})
	s.Require().NoError(err)
	s.Equal(s.now, created.Character.CreatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Brennis", got.Character.Name)
	s.Equal(int32(5), got.Character.Skills["swordsmanship"])
	s.Equal(entities.CharacterStatusActive, got.Character.Status)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicateFails() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_1")})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_1")})
	s.Require().NoError(err)

	char := s.newCharacter("char_1")
	char.CurrentHP = 12
	char.Skills["swordsmanship"] = 6
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(int32(12), got.Character.CurrentHP)
	s.Equal(int32(6), got.Character.Skills["swordsmanship"])
}

func (s *RedisRepositoryTestSuite) TestUpdateMissingFails() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.newCharacter("ghost")})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteRemovesFromPlayerIndex() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(listed.Characters)
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	first := s.newCharacter("char_1")
	second := s.newCharacter("char_2")
	second.Name = "Maett"
	other := s.newCharacter("char_3")
	other.PlayerID = "player_2"

	for _, char := range []*entities.Character{first, second, other} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Len(listed.Characters, 2)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
