package lock

import (
	"context"
	"errors"
	"time"

	"loket-backend/internal/config"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	defaultTTL   = 30 * time.Second
	retryBackoff = 50 * time.Millisecond
	maxRetries   = 20
)

// RedisLocker takes an in-process lock and then a Redis lock on the same
// key, so replicas of the server serialise too. When Redis cannot grant the
// lock the caller proceeds under the local lock only; the row lock taken by
// the repository still orders concurrent writers.
type RedisLocker struct {
	locker *redislock.Client
	local  *KeyedMutex
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{
		locker: redislock.New(client),
		local:  NewKeyedMutex(),
		ttl:    defaultTTL,
	}
}

func (r *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	unlockLocal, err := r.local.Lock(ctx, key)
	if err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	lk, err := r.locker.Obtain(ctx, "lock:"+key, r.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(retryBackoff), maxRetries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		logger.WithFields(logrus.Fields{"module": "lock", "key": key}).
			Warn("could not obtain redis lock; proceeding with local lock")
		return unlockLocal, nil
	} else if err != nil {
		logger.WithFields(logrus.Fields{"module": "lock", "key": key}).
			Warn("error obtaining redis lock; proceeding with local lock: " + err.Error())
		return unlockLocal, nil
	}

	return func() {
		// The request context may already be cancelled; release on a fresh one.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = lk.Release(releaseCtx)
		unlockLocal()
	}, nil
}

// New returns a Redis-backed locker when client is not nil and an
// in-process one otherwise.
func New(client *redis.Client) Locker {
	if client == nil {
		return NewKeyedMutex()
	}
	return NewRedisLocker(client)
}
