package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const keyPrefix = "fx:rates:"

// Cache кэширует курсы валют в Redis
// Недоступность Redis не считается ошибкой: курсы запрашиваются напрямую у источника
type Cache struct {
	client RedisClient
	source RateSource
	key    string
	ttl    time.Duration
	log    Logger
}

// NewCache создает кэш курсов для базовой валюты base
func NewCache(client RedisClient, source RateSource, base string, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		client: client,
		source: source,
		key:    keyPrefix + strings.ToUpper(base),
		ttl:    ttl,
		log:    log,
	}
}

// Rates возвращает курсы из кэша или из источника, сохраняя их в кэш
func (c *Cache) Rates(ctx context.Context) (map[string]decimal.Decimal, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var cached map[string]decimal.Decimal
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil && len(cached) > 0 {
			return cached, nil
		}
		c.log.Warn("Rates cache: corrupted entry %s, refetching", c.key)
	case errors.Is(err, redis.Nil):
		c.log.Info("Rates cache: miss for %s", c.key)
	default:
		c.log.Warn("Rates cache: redis unavailable, reading source directly: %v", err)
	}

	rates, err := c.source.Rates(ctx)
	if err != nil {
		return nil, fmt.Errorf("rates cache: source: %w", err)
	}

	payload, err := json.Marshal(rates)
	if err != nil {
		c.log.Warn("Rates cache: failed to encode rates: %v", err)
		return rates, nil
	}
	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("Rates cache: failed to store %s: %v", c.key, err)
	}

	return rates, nil
}
