package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionKey is the single well-known key the snapshot lives under.
const sessionKey = "storefront:session"

const defaultRedisTimeout = 5 * time.Second

// RedisVault stores the session blob under one redis key. Intended for
// deployments where the client state should survive the local filesystem,
// e.g. kiosk fleets sharing a profile.
type RedisVault struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisVault(client *redis.Client, ttl time.Duration) *RedisVault {
	return &RedisVault{client: client, ttl: ttl}
}

func (v *RedisVault) Load() ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultRedisTimeout)
	defer cancel()

	data, err := v.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}

		return nil, false, err
	}

	return data, true, nil
}

func (v *RedisVault) Save(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultRedisTimeout)
	defer cancel()

	return v.client.Set(ctx, sessionKey, data, v.ttl).Err()
}

func (v *RedisVault) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultRedisTimeout)
	defer cancel()

	return v.client.Del(ctx, sessionKey).Err()
}
