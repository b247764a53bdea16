package room

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	redisclient "github.com/crawlhq/crawl-api/internal/redis"
)

const (
	errRoomNil         = "room cannot be nil"
	errInstanceIDEmpty = "game instance ID cannot be empty"
)

func roomKey(instanceID string, roomIndex int32) string {
	return fmt.Sprintf("room:%s:%d", instanceID, roomIndex)
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis room repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Room == nil {
		return nil, errors.InvalidArgument(errRoomNil)
	}
	if input.GameInstanceID == "" {
		return nil, errors.InvalidArgument(errInstanceIDEmpty)
	}

	data, err := json.Marshal(input.Room)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal room")
	}

	key := roomKey(input.GameInstanceID, input.RoomIndex)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save room")
	}

	return &SaveOutput{Room: input.Room}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.GameInstanceID == "" {
		return nil, errors.InvalidArgument(errInstanceIDEmpty)
	}

	key := roomKey(input.GameInstanceID, input.RoomIndex)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf(
				"no live room state for instance %s room %d", input.GameInstanceID, input.RoomIndex)
		}
		return nil, errors.Wrapf(err, "failed to get room")
	}

	var room entities.Room
	if err := json.Unmarshal([]byte(result), &room); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal room")
	}

	return &GetOutput{Room: &room}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.GameInstanceID == "" {
		return nil, errors.InvalidArgument(errInstanceIDEmpty)
	}

	key := roomKey(input.GameInstanceID, input.RoomIndex)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete room")
	}

	return &DeleteOutput{}, nil
}
