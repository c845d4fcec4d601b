// Package redis wraps the go-redis client and the event idempotency guard
// built on it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client with health checking.
type Client struct {
	*redis.Client
}

// New creates a Redis client from a URL. Returns nil if the URL is empty
// (Redis not configured); callers must handle the nil case.
func New(ctx context.Context, url string) (*Client, error) {
	if url == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &Client{Client: client}, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

// IdempotencyGuard remembers event keys with a TTL so redelivered messages
// can be skipped cheaply.
type IdempotencyGuard struct {
	client    *Client
	retention time.Duration
}

func NewIdempotencyGuard(client *Client, retention time.Duration) *IdempotencyGuard {
	return &IdempotencyGuard{client: client, retention: retention}
}

// FirstSeen returns true only the first time key is observed within the
// retention window.
func (g *IdempotencyGuard) FirstSeen(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, "punsj:sett:"+key, 1, g.retention).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency setnx: %w", err)
	}
	return ok, nil
}
