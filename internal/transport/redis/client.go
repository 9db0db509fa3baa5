package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Publisher - sends game events to a Redis pub/sub channel for external renderers.
type Publisher struct {
	client  *redis.Client
	channel string
}

// Connect - opens a client and checks the server answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return conn, nil
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
	}
}

// Publish - encodes the event as JSON and publishes it.
func (that *Publisher) Publish(ctx context.Context, event entity.Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Kind, err)
	}

	return nil
}

func (that *Publisher) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
