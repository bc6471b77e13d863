package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher publishes every alert on a Redis channel so other
// processes can follow the same notification stream.
type RedisPublisher struct {
	Client  *redis.Client
	Channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{Client: client, Channel: channel}
}

func (p *RedisPublisher) Alert(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := p.Client.Publish(ctx, p.Channel, data).Err(); err != nil {
		return fmt.Errorf("erro ao publicar alerta no Redis: %w", err)
	}
	return nil
}
