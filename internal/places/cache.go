package places

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/awolk/sms-directions/internal/models"
)

// CachedResolver wraps a Resolver with a redis cache keyed on the query text
// and the bias coordinate (or its absence). Redis keeps the cache safe to
// share across concurrent requests; cache failures are logged and treated as
// misses, never surfaced to the caller.
type CachedResolver struct {
	inner  Resolver
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedResolver(inner Resolver, redisURL string, ttl time.Duration, logger *zap.Logger) (*CachedResolver, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &CachedResolver{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func cacheKey(query string, bias *models.LatLng) string {
	if bias == nil {
		return fmt.Sprintf("place:%s|nobias", query)
	}
	return fmt.Sprintf("place:%s|%.5f,%.5f", query, bias.Latitude, bias.Longitude)
}

func (c *CachedResolver) Resolve(ctx context.Context, query string, bias *models.LatLng) (*models.ResolvedPlace, error) {
	key := cacheKey(query, bias)

	data, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var place models.ResolvedPlace
		if jsonErr := json.Unmarshal([]byte(data), &place); jsonErr == nil {
			return &place, nil
		}
		c.logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	} else if err != redis.Nil {
		c.logger.Warn("place cache read failed", zap.String("key", key), zap.Error(err))
	}

	place, err := c.inner.Resolve(ctx, query, bias)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(place); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.logger.Warn("place cache write failed", zap.String("key", key), zap.Error(setErr))
		}
	}

	return place, nil
}

func (c *CachedResolver) Close() error {
	return c.client.Close()
}
