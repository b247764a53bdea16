package instance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/repositories/instance"
	"github.com/crawlhq/crawl-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    instance.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := instance.NewRedis(&instance.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) newInstance(id string) *entities.GameInstance {
	return &entities.GameInstance{
		ID:           id,
		DungeonID:    "dungeon_sunken_crypt",
		CharacterIDs: []string{"char_1", "char_2"},
		CurrentTick:  0,
		TickInterval: 30 * time.Second,
		State:        entities.GameStateActive,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	_, err := s.repo.Create(s.ctx, instance.CreateInput{Instance: s.newInstance("game_1")})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, instance.GetInput{ID: "game_1"})
	s.Require().NoError(err)
	s.Equal(int32(0), got.Instance.CurrentTick)
	s.Equal(entities.GameStateActive, got.Instance.State)
	s.Equal(30*time.Second, got.Instance.TickInterval)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicateFails() {
	_, err := s.repo.Create(s.ctx, instance.CreateInput{Instance: s.newInstance("game_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, instance.CreateInput{Instance: s.newInstance("game_1")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateWithExpectedTick() {
	_, err := s.repo.Create(s.ctx, instance.CreateInput{Instance: s.newInstance("game_1")})
	s.Require().NoError(err)

	updated := s.newInstance("game_1")
	updated.CurrentTick = 1
	_, err = s.repo.UpdateWithExpectedTick(s.ctx, instance.UpdateWithExpectedTickInput{
		Instance:     updated,
		ExpectedTick: 0,
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, instance.GetInput{ID: "game_1"})
	s.Require().NoError(err)
	s.Equal(int32(1), got.Instance.CurrentTick)
}

func (s *RedisRepositoryTestSuite) TestUpdateWithStaleTickAborts() {
	_, err := s.repo.Create(s.ctx, instance.CreateInput{Instance: s.newInstance("game_1")})
	s.Require().NoError(err)

	first := s.newInstance("game_1")
	first.CurrentTick = 1
	_, err = s.repo.UpdateWithExpectedTick(s.ctx, instance.UpdateWithExpectedTickInput{
		Instance:     first,
		ExpectedTick: 0,
	})
	s.Require().NoError(err)

	// A second invocation that read the instance at tick 0 loses the race
	second := s.newInstance("game_1")
	second.CurrentTick = 1
	_, err = s.repo.UpdateWithExpectedTick(s.ctx, instance.UpdateWithExpectedTickInput{
		Instance:     second,
		ExpectedTick: 0,
	})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))

	got, err := s.repo.Get(s.ctx, instance.GetInput{ID: "game_1"})
	s.Require().NoError(err)
	s.Equal(int32(1), got.Instance.CurrentTick)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissingFails() {
	_, err := s.repo.UpdateWithExpectedTick(s.ctx, instance.UpdateWithExpectedTickInput{
		Instance:     s.newInstance("ghost"),
		ExpectedTick: 0,
	})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestTerminalStateLeavesActiveIndex() {
	_, err := s.repo.Create(s.ctx, instance.CreateInput{Instance: s.newInstance("game_1")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, instance.CreateInput{Instance: s.newInstance("game_2")})
	s.Require().NoError(err)

	listed, err := s.repo.ListActive(s.ctx, instance.ListActiveInput{})
	s.Require().NoError(err)
	s.Len(listed.Instances, 2)

	done := s.newInstance("game_1")
	done.CurrentTick = 1
	done.State = entities.GameStateCompleted
	_, err = s.repo.UpdateWithExpectedTick(s.ctx, instance.UpdateWithExpectedTickInput{
		Instance:     done,
		ExpectedTick: 0,
	})
	s.Require().NoError(err)

	listed, err = s.repo.ListActive(s.ctx, instance.ListActiveInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.Instances, 1)
	s.Equal("game_2", listed.Instances[0].ID)

	// The record itself survives for reads
	got, err := s.repo.Get(s.ctx, instance.GetInput{ID: "game_1"})
	s.Require().NoError(err)
	s.Equal(entities.GameStateCompleted, got.Instance.State)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
