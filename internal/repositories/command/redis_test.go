package command_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/repositories/command"
	"github.com/crawlhq/crawl-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    command.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := command.NewRedis(&command.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) newCommand(id, characterID string, tick int32) *entities.Command {
	return &entities.Command{
		ID:             id,
		GameInstanceID: "game_1",
		CharacterID:    characterID,
		Tick:           tick,
		Input:          "attack the rat",
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, command.CreateInput{
		Command: s.newCommand("cmd_1", "char_1", 3),
	})
	s.Require().NoError(err)
	s.False(created.Command.SubmittedAt.IsZero())

	got, err := s.repo.Get(s.ctx, command.GetInput{ID: "cmd_1"})
	s.Require().NoError(err)
	s.Equal("attack the rat", got.Command.Input)
	s.Equal(int32(3), got.Command.Tick)
}

func (s *RedisRepositoryTestSuite) TestSecondSubmissionSameTickRejected() {
	_, err := s.repo.Create(s.ctx, command.CreateInput{
		Command: s.newCommand("cmd_1", "char_1", 3),
	})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, command.CreateInput{
		Command: s.newCommand("cmd_2", "char_1", 3),
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	// A later tick is a fresh slot
	_, err = s.repo.Create(s.ctx, command.CreateInput{
		Command: s.newCommand("cmd_3", "char_1", 4),
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestListForTickPreservesSubmissionOrder() {
	for i := 0; i < 5; i++ {
		_, err := s.repo.Create(s.ctx, command.CreateInput{
			Command: s.newCommand(
				fmt.Sprintf("cmd_%d", i),
				fmt.Sprintf("char_%d", i),
				7,
			),
		})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListForTick(s.ctx, command.ListForTickInput{
		GameInstanceID: "game_1",
		Tick:           7,
	})
	s.Require().NoError(err)
	s.Require().Len(listed.Commands, 5)
	for i, cmd := range listed.Commands {
		s.Equal(fmt.Sprintf("cmd_%d", i), cmd.ID)
	}
}

func (s *RedisRepositoryTestSuite) TestListForTickEmpty() {
	listed, err := s.repo.ListForTick(s.ctx, command.ListForTickInput{
		GameInstanceID: "game_1",
		Tick:           99,
	})
	s.Require().NoError(err)
	s.Empty(listed.Commands)
}

func (s *RedisRepositoryTestSuite) TestUpdateAttachesResult() {
	_, err := s.repo.Create(s.ctx, command.CreateInput{
		Command: s.newCommand("cmd_1", "char_1", 3),
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, command.GetInput{ID: "cmd_1"})
	s.Require().NoError(err)

	cmd := got.Command
	cmd.Intent = &entities.Intent{Type: entities.IntentAttack, Confidence: 0.9}
	cmd.Result = &entities.ActionResult{
		Type:    entities.ActionResultAttack,
		ActorID: "char_1",
		Success: true,
		Message: "You hit the Crypt Rat for 4 damage.",
	}
	_, err = s.repo.Update(s.ctx, command.UpdateInput{Command: cmd})
	s.Require().NoError(err)

	got, err = s.repo.Get(s.ctx, command.GetInput{ID: "cmd_1"})
	s.Require().NoError(err)
	s.Require().NotNil(got.Command.Result)
	s.True(got.Command.Result.Success)
	s.Equal(entities.IntentAttack, got.Command.Intent.Type)
}

func (s *RedisRepositoryTestSuite) TestDeleteForTickDestroysTick() {
	_, err := s.repo.Create(s.ctx, command.CreateInput{Command: s.newCommand("cmd_1", "char_1", 3)})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, command.CreateInput{Command: s.newCommand("cmd_2", "char_2", 3)})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, command.CreateInput{Command: s.newCommand("cmd_3", "char_1", 4)})
	s.Require().NoError(err)

	_, err = s.repo.DeleteForTick(s.ctx, command.DeleteForTickInput{
		GameInstanceID: "game_1",
		Tick:           3,
	})
	s.Require().NoError(err)

	listed, err := s.repo.ListForTick(s.ctx, command.ListForTickInput{GameInstanceID: "game_1", Tick: 3})
	s.Require().NoError(err)
	s.Empty(listed.Commands)

	_, err = s.repo.Get(s.ctx, command.GetInput{ID: "cmd_1"})
	s.True(errors.IsNotFound(err))

	// The submission guard goes with the tick
	_, err = s.repo.Create(s.ctx, command.CreateInput{Command: s.newCommand("cmd_4", "char_1", 3)})
	s.NoError(err)

	// Other ticks are untouched
	listed, err = s.repo.ListForTick(s.ctx, command.ListForTickInput{GameInstanceID: "game_1", Tick: 4})
	s.Require().NoError(err)
	s.Len(listed.Commands, 1)
}

func (s *RedisRepositoryTestSuite) TestDeleteForTickEmpty() {
	_, err := s.repo.DeleteForTick(s.ctx, command.DeleteForTickInput{
		GameInstanceID: "game_1",
		Tick:           9,
	})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissingFails() {
	_, err := s.repo.Update(s.ctx, command.UpdateInput{
		Command: s.newCommand("ghost", "char_1", 1),
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
