package instance

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/pkg/clock"
	redisclient "github.com/crawlhq/crawl-api/internal/redis"
)

const (
	instanceKeyPrefix = "instance:"
	activeIndexKey    = "instance:active"

	// Error messages
	errInstanceNil     = "instance cannot be nil"
	errInstanceIDEmpty = "instance ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis instance repository.
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

// NewRedis creates a new Redis-backed instance repository
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
	if input.Instance == nil {
		return nil, errors.InvalidArgument(errInstanceNil)
	}
	if input.Instance.ID == "" {
		return nil, errors.InvalidArgument(errInstanceIDEmpty)
	}

	key := instanceKeyPrefix + input.Instance.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("instance with ID %s already exists", input.Instance.ID)
	}

	now := r.clock.Now()
	input.Instance.CreatedAt = now
	input.Instance.LastActivityAt = now

	data, err := json.Marshal(input.Instance)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal instance")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, activeIndexKey, input.Instance.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create instance")
	}

	return &CreateOutput{Instance: input.Instance}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errInstanceIDEmpty)
	}

	result, err := r.client.Get(ctx, instanceKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("instance with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get instance")
	}

	var inst entities.GameInstance
	if err := json.Unmarshal([]byte(result), &inst); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal instance")
	}

	return &GetOutput{Instance: &inst}, nil
}

func (r *redisRepository) UpdateWithExpectedTick(ctx context.Context, input UpdateWithExpectedTickInput) (*UpdateWithExpectedTickOutput, error) {
	if input.Instance == nil {
		return nil, errors.InvalidArgument(errInstanceNil)
	}
	if input.Instance.ID == "" {
		return nil, errors.InvalidArgument(errInstanceIDEmpty)
	}

	key := instanceKeyPrefix + input.Instance.ID
	input.Instance.LastActivityAt = r.clock.Now()

	data, err := json.Marshal(input.Instance)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal instance")
	}

	txErr := r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("instance with ID %s not found", input.Instance.ID)
			}
			return errors.Wrapf(err, "failed to get instance")
		}

		var current entities.GameInstance
		if err := json.Unmarshal([]byte(stored), &current); err != nil {
			return errors.Wrapf(err, "failed to unmarshal instance")
		}

		if current.CurrentTick != input.ExpectedTick {
			return errors.Abortedf(
				"instance %s is at tick %d, expected %d",
				input.Instance.ID, current.CurrentTick, input.ExpectedTick)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			if !input.Instance.IsActive() {
				pipe.SRem(ctx, activeIndexKey, input.Instance.ID)
			}
			return nil
		})
		return err
	}, key)

	if txErr != nil {
		// A concurrent write between GET and EXEC surfaces as TxFailedErr.
		if txErr == redis.TxFailedErr {
			return nil, errors.Abortedf("instance %s changed during update", input.Instance.ID)
		}
		if _, ok := txErr.(*errors.Error); ok {
			return nil, txErr
		}
		return nil, errors.Wrapf(txErr, "failed to update instance")
	}

	return &UpdateWithExpectedTickOutput{Instance: input.Instance}, nil
}

func (r *redisRepository) ListActive(ctx context.Context, _ ListActiveInput) (*ListActiveOutput, error) {
	ids, err := r.client.SMembers(ctx, activeIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list active instances")
	}

	instances := make([]*entities.GameInstance, 0, len(ids))
	for _, id := range ids {
		output, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry, skip it
				continue
			}
			return nil, err
		}
		instances = append(instances, output.Instance)
	}

	return &ListActiveOutput{Instances: instances}, nil
}
