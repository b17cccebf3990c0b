// Package cache decorates the weather provider with a time-based cache.
package cache

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
	"github.com/GustaveMAG/vienna-vibe/internal/core/ports"
)

// CachedWeather wraps a WeatherProvider and serves repeated requests from
// memory until the entry is older than the TTL. Errors are never cached.
type CachedWeather struct {
	provider ports.WeatherProvider
	ttl      time.Duration
	now      func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	hits    int
	misses  int
}

type cacheEntry struct {
	value    any
	storedAt time.Time
}

var _ ports.WeatherProvider = (*CachedWeather)(nil)

func NewCachedWeather(provider ports.WeatherProvider, ttl time.Duration) *CachedWeather {
	return &CachedWeather{
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]cacheEntry),
	}
}

func (c *CachedWeather) Current(ctx context.Context) (domain.Observation, error) {
	v, err := c.load(ctx, "current", func(ctx context.Context) (any, error) {
		return c.provider.Current(ctx)
	})
	if err != nil {
		return domain.Observation{}, err
	}
	return v.(domain.Observation), nil
}

func (c *CachedWeather) Daily(ctx context.Context, days int) ([]domain.DailyForecast, error) {
	v, err := c.load(ctx, fmt.Sprintf("daily:%d", days), func(ctx context.Context) (any, error) {
		return c.provider.Daily(ctx, days)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.DailyForecast), nil
}

func (c *CachedWeather) Hourly(ctx context.Context, date string, days int) ([]domain.HourlyForecast, error) {
	v, err := c.load(ctx, fmt.Sprintf("hourly:%s:%d", date, days), func(ctx context.Context) (any, error) {
		return c.provider.Hourly(ctx, date, days)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.HourlyForecast), nil
}

// Stats returns cache hit and miss counts.
func (c *CachedWeather) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *CachedWeather) load(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	now := c.now()

	c.mu.Lock()
	entry, found := c.entries[key]
	if found && now.Sub(entry.storedAt) < c.ttl {
		c.hits++
		c.mu.Unlock()
		log.Printf("DEBUG weather cache: hit %s (age %s)", key, now.Sub(entry.storedAt).Round(time.Second))
		return entry.value, nil
	}
	c.misses++
	c.mu.Unlock()

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, storedAt: now}
	c.mu.Unlock()

	return value, nil
}
