package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avelez-dev/agencia-backend/config"
	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache is a cache-aside store for the catalog listings. Writers
// invalidate; readers repopulate on miss.
type RedisCache struct {
	client     *redis.Client
	catalogTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, catalogTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogTTL: catalogTTL,
	}
}

func (c *RedisCache) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	if err := c.get(ctx, hotelsKey, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (c *RedisCache) SetHotels(ctx context.Context, hotels []domain.Hotel) error {
	return c.set(ctx, hotelsKey, hotels)
}

func (c *RedisCache) InvalidateHotels(ctx context.Context) error {
	return c.client.Del(ctx, hotelsKey).Err()
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	var flights []domain.Flight
	if err := c.get(ctx, flightsKey, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	return c.set(ctx, flightsKey, flights)
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey).Err()
}

func (c *RedisCache) get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *RedisCache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.catalogTTL).Err()
}

const (
	hotelsKey  = "cache:hotels"
	flightsKey = "cache:flights"
)
