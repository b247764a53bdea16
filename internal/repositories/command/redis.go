package command

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/pkg/clock"
	redisclient "github.com/crawlhq/crawl-api/internal/redis"
)

const (
	commandKeyPrefix = "command:"

	// Error messages
	errCommandNil      = "command cannot be nil"
	errCommandIDEmpty  = "command ID cannot be empty"
	errInstanceIDEmpty = "game instance ID cannot be empty"
	errCharacterEmpty  = "character ID cannot be empty"
)

// tickListKey holds the ordered command IDs for one instance tick.
func tickListKey(instanceID string, tick int32) string {
	return fmt.Sprintf("command:tick:%s:%d", instanceID, tick)
}

// submittedKey guards against a character submitting twice in one tick.
func submittedKey(instanceID string, tick int32, characterID string) string {
	return fmt.Sprintf("command:submitted:%s:%d:%s", instanceID, tick, characterID)
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis command repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed command repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Command == nil {
		return nil, errors.InvalidArgument(errCommandNil)
	}
	cmd := input.Command
	if cmd.ID == "" {
		return nil, errors.InvalidArgument(errCommandIDEmpty)
	}
	if cmd.GameInstanceID == "" {
		return nil, errors.InvalidArgument(errInstanceIDEmpty)
	}
	if cmd.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterEmpty)
	}

	// One command per character per tick. The guard key is claimed first
	// so two racing submissions cannot both land in the tick list.
	guard := submittedKey(cmd.GameInstanceID, cmd.Tick, cmd.CharacterID)
	claimed, err := r.client.SetNX(ctx, guard, cmd.ID, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to claim submission slot")
	}
	if !claimed {
		return nil, errors.AlreadyExistsf(
			"character %s already submitted a command for tick %d", cmd.CharacterID, cmd.Tick)
	}

	cmd.SubmittedAt = r.clock.Now()

	data, err := json.Marshal(cmd)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal command")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, commandKeyPrefix+cmd.ID, data, 0)
	pipe.RPush(ctx, tickListKey(cmd.GameInstanceID, cmd.Tick), cmd.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create command")
	}

	return &CreateOutput{Command: cmd}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCommandIDEmpty)
	}

	result, err := r.client.Get(ctx, commandKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("command with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get command")
	}

	var cmd entities.Command
	if err := json.Unmarshal([]byte(result), &cmd); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal command")
	}

	return &GetOutput{Command: &cmd}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Command == nil {
		return nil, errors.InvalidArgument(errCommandNil)
	}
	if input.Command.ID == "" {
		return nil, errors.InvalidArgument(errCommandIDEmpty)
	}

	key := commandKeyPrefix + input.Command.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("command with ID %s not found", input.Command.ID)
	}

	data, err := json.Marshal(input.Command)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal command")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update command")
	}

	return &UpdateOutput{Command: input.Command}, nil
}

func (r *redisRepository) ListForTick(ctx context.Context, input ListForTickInput) (*ListForTickOutput, error) {
	if input.GameInstanceID == "" {
		return nil, errors.InvalidArgument(errInstanceIDEmpty)
	}

	ids, err := r.client.LRange(ctx, tickListKey(input.GameInstanceID, input.Tick), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list commands for tick")
	}

	commands := make([]*entities.Command, 0, len(ids))
	for _, id := range ids {
		output, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			return nil, err
		}
		commands = append(commands, output.Command)
	}

	return &ListForTickOutput{Commands: commands}, nil
}

func (r *redisRepository) DeleteForTick(ctx context.Context, input DeleteForTickInput) (*DeleteForTickOutput, error) {
	if input.GameInstanceID == "" {
		return nil, errors.InvalidArgument(errInstanceIDEmpty)
	}

	listKey := tickListKey(input.GameInstanceID, input.Tick)
	ids, err := r.client.LRange(ctx, listKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list commands for tick")
	}

	// The guard keys are derived from the stored commands so the whole
	// tick can be removed in one shot.
	keys := []string{listKey}
	for _, id := range ids {
		output, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				keys = append(keys, commandKeyPrefix+id)
				continue
			}
			return nil, err
		}
		cmd := output.Command
		keys = append(keys,
			commandKeyPrefix+cmd.ID,
			submittedKey(cmd.GameInstanceID, cmd.Tick, cmd.CharacterID),
		)
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete commands for tick")
	}

	return &DeleteForTickOutput{}, nil
}
