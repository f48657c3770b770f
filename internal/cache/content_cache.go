package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

// ContentCache holds the display content table in Redis
type ContentCache interface {
	Get(ctx context.Context) (model.Content, error)
	Set(ctx context.Context, content model.Content) error
	Invalidate(ctx context.Context) error
}

type contentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewContentCache creates a new content cache
func NewContentCache(client *redis.Client, ttl time.Duration) ContentCache {
	return &contentCache{
		client: client,
		ttl:    ttl,
	}
}

const contentKey = "content:table"

// Get returns nil, nil on a miss
func (c *contentCache) Get(ctx context.Context) (model.Content, error) {
	data, err := c.client.Get(ctx, contentKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var content model.Content
	if err := json.Unmarshal([]byte(data), &content); err != nil {
		return nil, err
	}
	return content, nil
}

func (c *contentCache) Set(ctx context.Context, content model.Content) error {
	data, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, contentKey, data, c.ttl).Err()
}

func (c *contentCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, contentKey).Err()
}
