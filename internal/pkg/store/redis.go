// internal/pkg/store/redis.go
package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis is the production Store. Every execution context (process, tab,
// replica) sharing the same Redis database sees the same namespace, which is
// what makes cross-context cart/stock synchronization work.
type Redis struct {
	client  *redis.Client
	log     *logrus.Logger
	timeout time.Duration
}

// NewRedis creates a Redis-backed store
func NewRedis(client *redis.Client, log *logrus.Logger) *Redis {
	if client == nil {
		panic("store: nil redis client")
	}
	if log == nil {
		log = logrus.New()
	}

	return &Redis{
		client:  client,
		log:     log,
		timeout: 3 * time.Second,
	}
}

// Read returns the value for key. Missing keys and backend failures both
// report absent; failures are additionally logged.
func (r *Redis) Read(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		r.log.WithError(err).WithField("key", key).Warn("store read failed")
		return "", false
	}

	return value, true
}

// Write stores value under key with no expiration. Failures are logged and
// swallowed; the caller's in-memory state stays usable for the current
// request even if it will not survive a reload.
func (r *Redis) Write(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		r.log.WithError(err).WithField("key", key).Warn("store write failed")
	}
}
