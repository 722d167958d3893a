package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/storecore/backend/internal/application/pricing"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

const defaultPriceKeyPrefix = "price:"

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisPriceCache implements pricing.PriceCache using Redis. Suitable for
// distributed deployments where multiple instances share resolved prices.
// Redis failures degrade to cache misses and never fail the read path.
type RedisPriceCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// NewRedisPriceCache creates a new Redis-backed price cache
func NewRedisPriceCache(cfg RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisPriceCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return newRedisPriceCache(client, ttl, logger), nil
}

// NewRedisPriceCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisPriceCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisPriceCache {
	return newRedisPriceCache(client, ttl, logger)
}

func newRedisPriceCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisPriceCache {
	if ttl <= 0 {
		ttl = defaultPriceTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPriceCache{
		client:    client,
		keyPrefix: defaultPriceKeyPrefix,
		ttl:       ttl,
		logger:    logger,
	}
}

func (c *RedisPriceCache) key(variantID, channelID uuid.UUID, currency valueobject.Currency) string {
	return c.keyPrefix + priceKey(variantID, channelID, currency)
}

// GetDisplayPrice retrieves a cached display price. Any Redis or decode
// failure is reported as a miss.
func (c *RedisPriceCache) GetDisplayPrice(ctx context.Context, variantID, channelID uuid.UUID, currency valueobject.Currency) (*pricing.DisplayPriceResponse, bool) {
	data, err := c.client.Get(ctx, c.key(variantID, channelID, currency)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Failed to read cached price",
				zap.String("variant_id", variantID.String()),
				zap.Error(err))
		}
		return nil, false
	}

	var price pricing.DisplayPriceResponse
	if err := json.Unmarshal(data, &price); err != nil {
		c.logger.Warn("Failed to decode cached price",
			zap.String("variant_id", variantID.String()),
			zap.Error(err))
		return nil, false
	}

	return &price, true
}

// SetDisplayPrice stores a display price with the configured TTL
func (c *RedisPriceCache) SetDisplayPrice(ctx context.Context, price *pricing.DisplayPriceResponse) {
	if price == nil {
		return
	}

	data, err := json.Marshal(price)
	if err != nil {
		c.logger.Warn("Failed to encode price for caching", zap.Error(err))
		return
	}

	key := c.key(price.VariantID, price.ChannelID, valueobject.Currency(price.CurrencyCode))
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache price",
			zap.String("key", key),
			zap.Error(err))
	}
}

// InvalidateVariant removes every cached price for a variant across all
// channels and currencies using a SCAN over the variant's key prefix
func (c *RedisPriceCache) InvalidateVariant(ctx context.Context, variantID uuid.UUID) {
	pattern := c.keyPrefix + variantID.String() + ":*"

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("Failed to scan cached prices for invalidation",
			zap.String("variant_id", variantID.String()),
			zap.Error(err))
		return
	}

	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Failed to delete cached prices",
			zap.String("variant_id", variantID.String()),
			zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisPriceCache) Close() error {
	return c.client.Close()
}

// Ensure RedisPriceCache implements PriceCache
var _ pricing.PriceCache = (*RedisPriceCache)(nil)
