package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can be handed a
// single node, a cluster or a sentinel-backed client interchangeably
type Client interface {
	redis.UniversalClient
}
