// Package idempotency implements ports.IdempotencyStore on Redis so that replayed
// create requests are recognized across service instances.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// maxClaimAttempts bounds the retries when a binding expires between SETNX and GET.
const maxClaimAttempts = 3

// releaseScript deletes the key only while it still holds the given id.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore keeps key -> order id bindings as Redis strings with a TTL.
type RedisStore struct {
	client      redis.Cmdable
	serviceName string
	ttl         time.Duration
}

// NewRedisStore stores bindings under "<serviceName>:idempotency:<key>" for ttl.
func NewRedisStore(client redis.Cmdable, serviceName string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:      client,
		serviceName: serviceName,
		ttl:         ttl,
	}
}

// Claim binds key to id with SET NX. When the key is taken it returns the bound id
// and false.
func (s *RedisStore) Claim(ctx context.Context, key string, id kernel.UUID) (kernel.UUID, bool, error) {
	redisKey := s.key(key)

	for range maxClaimAttempts {
		ok, err := s.client.SetNX(ctx, redisKey, id.String(), s.ttl).Result()
		if err != nil {
			return kernel.UUID{}, false, fmt.Errorf("setnx %s: %w", redisKey, err)
		}
		if ok {
			return id, true, nil
		}

		raw, err := s.client.Get(ctx, redisKey).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return kernel.UUID{}, false, fmt.Errorf("get %s: %w", redisKey, err)
		}

		bound, err := kernel.UUIDFromString(raw)
		if err != nil {
			return kernel.UUID{}, false, fmt.Errorf("decode %s: %w", redisKey, err)
		}
		return bound, false, nil
	}

	return kernel.UUID{}, false, fmt.Errorf("claim %s: binding kept expiring", redisKey)
}

// Release deletes the binding of key, but only while it still holds id.
func (s *RedisStore) Release(ctx context.Context, key string, id kernel.UUID) error {
	redisKey := s.key(key)
	if err := releaseScript.Run(ctx, s.client, []string{redisKey}, id.String()).Err(); err != nil {
		return fmt.Errorf("release %s: %w", redisKey, err)
	}
	return nil
}

func (s *RedisStore) key(key string) string {
	return fmt.Sprintf("%s:idempotency:%s", s.serviceName, key)
}
