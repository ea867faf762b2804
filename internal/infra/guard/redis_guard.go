package guard

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
)

const keyPrefix = "gamershub:submission:"

// releaseScript deletes the lock only while it still holds our token, so an
// expired holder never frees a newer submission's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisGuard(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisGuard {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisGuard{client: client, ttl: ttl, log: log}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), bool, error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		return nil, false, errors.Wrap(err, "acquire submission guard")
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := releaseScript.Run(ctx, g.client, []string{redisKey}, token).Err(); err != nil {
			g.log.Warn("submission guard release failed",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	return release, true, nil
}

var _ domain.Guard = (*RedisGuard)(nil)
