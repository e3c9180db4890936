package watch

//go:generate go run go.uber.org/mock/mockgen -source=./watch.go -destination=./mocks/watch_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"lagoon/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName       = "watch"
	otelChannelAttrName = "watch.channel"
)

// Watcher delivers live updates on a named channel. Subscribers receive every
// payload published after they subscribe, until they call the returned
// unsubscribe function. Delivery stops after unsubscribe; a payload already in
// flight is not interrupted.
type Watcher interface {
	Publish(ctx context.Context, channel string, payload any) error
	Subscribe(ctx context.Context, channel string, fn func(payload []byte)) (func(), error)
}

type redisWatcher struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisWatcher(client *redis.Client, ot otel.Otel) Watcher {
	return &redisWatcher{
		client: client,
		otel:   ot,
	}
}

// Publish implements Watcher.
func (w *redisWatcher) Publish(ctx context.Context, channel string, payload any) (err error) {
	ctx, scope := w.otel.NewScope(ctx, otelScopeName, otelScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelChannelAttrName, channel)

	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("failed to marshal watch payload")

		return fmt.Errorf("failed to marshal watch payload: %w", err)
	}

	if err = w.client.Publish(ctx, channel, data).Err(); err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("failed to publish watch payload")

		return fmt.Errorf("failed to publish watch payload: %w", err)
	}

	return nil
}

// Subscribe implements Watcher.
func (w *redisWatcher) Subscribe(ctx context.Context, channel string, fn func(payload []byte)) (func(), error) {
	_, scope := w.otel.NewScope(ctx, otelScopeName, otelScopeName+".Subscribe")
	defer scope.End()

	scope.SetAttribute(otelChannelAttrName, channel)

	// The subscription outlives the subscribing request's context on purpose:
	// the unsubscribe function is the sole cancellation path.
	sub := w.client.Subscribe(context.WithoutCancel(ctx), channel)

	go func() {
		for msg := range sub.Channel() {
			fn([]byte(msg.Payload))
		}
	}()

	var once sync.Once

	unsubscribe := func() {
		once.Do(func() {
			if err := sub.Close(); err != nil {
				log.Error().Err(err).Str("channel", channel).Msg("failed to close watch subscription")
			}
		})
	}

	return unsubscribe, nil
}
