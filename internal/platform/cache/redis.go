// Package cache wires the redis client backing the activity feed.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// New creates a redis client for addr and verifies connectivity.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("platform/cache: ping: %w", err)
	}

	return client, nil
}

// NewEmbedded starts an in-process redis server and returns a client bound to
// it. The embedded server keeps its data in this process only, so the feed is
// as volatile as the rest of the store. The returned func shuts it down.
func NewEmbedded(ctx context.Context) (*redis.Client, func(), error) {
	srv, err := miniredis.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("platform/cache: embedded redis: %w", err)
	}
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	if err := client.Ping(ctx).Err(); err != nil {
		srv.Close()
		return nil, nil, fmt.Errorf("platform/cache: ping: %w", err)
	}
	stop := func() {
		_ = client.Close()
		srv.Close()
	}
	return client, stop, nil
}
