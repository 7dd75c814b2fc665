// internal/pkg/bus/redis.go
package bus

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis is the cross-context Bus. Signals published in one process reach
// subscribers in every process attached to the same Redis database, the way
// a storage event reaches every open tab of the same origin. Publish
// failures are logged and swallowed; a missed signal only delays a re-read.
type Redis struct {
	client *redis.Client
	log    *logrus.Logger
	prefix string
}

// NewRedis creates a Redis Pub/Sub backed bus. Channel names are prefixed
// so multiple storefronts can share one Redis database.
func NewRedis(client *redis.Client, prefix string, log *logrus.Logger) *Redis {
	if client == nil {
		panic("bus: nil redis client")
	}
	if log == nil {
		log = logrus.New()
	}

	return &Redis{
		client: client,
		log:    log,
		prefix: prefix,
	}
}

func (r *Redis) channel(topic string) string {
	return r.prefix + ":" + topic
}

// Publish broadcasts payload on topic
func (r *Redis) Publish(topic, payload string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := r.client.Publish(ctx, r.channel(topic), payload).Err(); err != nil {
		r.log.WithError(err).WithField("topic", topic).Warn("bus publish failed")
	}
}

// Subscribe registers fn for topic. The returned function closes the
// underlying subscription and stops the delivery goroutine.
func (r *Redis) Subscribe(topic string, fn Handler) func() {
	sub := r.client.Subscribe(context.Background(), r.channel(topic))

	go func() {
		for msg := range sub.Channel() {
			fn(msg.Payload)
		}
	}()

	return func() {
		if err := sub.Close(); err != nil {
			r.log.WithError(err).WithField("topic", topic).Warn("bus unsubscribe failed")
		}
	}
}
