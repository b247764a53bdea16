package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on a local
// interface rather than on the driver directly. The universal client covers
// both single-instance and failover deployments, and it exposes Watch, which
// the instance repository needs for its compare-and-set tick commit.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
