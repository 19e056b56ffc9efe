// redis.go — go-redis v9 adapter implementing the tierstore.Backend
// interface. Drop this file alongside store.go; nothing else needs to
// change.
package tierstore

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

// tierKey is the single Redis key holding the viewer's tier string.
const tierKey = "ceylonflix:tier"

// RedisBackend wraps a go-redis client and satisfies the Backend interface.
type RedisBackend struct {
	c *goredis.Client
}

// NewRedisBackend creates a RedisBackend from a go-redis Client.
func NewRedisBackend(c *goredis.Client) *RedisBackend {
	return &RedisBackend{c: c}
}

func (b *RedisBackend) Load(ctx context.Context) (string, error) {
	val, err := b.c.Get(ctx, tierKey).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	return val, err
}

func (b *RedisBackend) Save(ctx context.Context, tier string) error {
	// No expiry: the tier never expires automatically within or across
	// sessions.
	return b.c.Set(ctx, tierKey, tier, 0).Err()
}
