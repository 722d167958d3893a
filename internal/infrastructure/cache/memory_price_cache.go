// Package cache provides display price caches used by the pricing service.
package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/application/pricing"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

const (
	defaultPriceTTL        = 5 * time.Minute
	defaultCleanupInterval = 30 * time.Second
)

// MemoryPriceCache implements pricing.PriceCache using in-process storage.
// Suitable for single-instance deployments or as an L1 cache in front of
// Redis.
type MemoryPriceCache struct {
	entries sync.Map // map[string]*priceEntry
	ttl     time.Duration
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

type priceEntry struct {
	value     *pricing.DisplayPriceResponse
	expiresAt time.Time
}

func (e *priceEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// MemoryPriceCacheOption is a functional option for configuring the cache
type MemoryPriceCacheOption func(*MemoryPriceCache)

// WithMemoryTTL sets the time-to-live for cached prices
func WithMemoryTTL(ttl time.Duration) MemoryPriceCacheOption {
	return func(c *MemoryPriceCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMemoryLogger sets the logger for the cache
func WithMemoryLogger(logger *zap.Logger) MemoryPriceCacheOption {
	return func(c *MemoryPriceCache) {
		c.logger = logger
	}
}

// NewMemoryPriceCache creates a new in-memory price cache
func NewMemoryPriceCache(opts ...MemoryPriceCacheOption) *MemoryPriceCache {
	cache := &MemoryPriceCache{
		ttl:    defaultPriceTTL,
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupExpired()

	return cache
}

func priceKey(variantID, channelID uuid.UUID, currency valueobject.Currency) string {
	return variantID.String() + ":" + channelID.String() + ":" + string(currency)
}

// GetDisplayPrice retrieves a cached display price. A miss returns ok=false.
func (c *MemoryPriceCache) GetDisplayPrice(_ context.Context, variantID, channelID uuid.UUID, currency valueobject.Currency) (*pricing.DisplayPriceResponse, bool) {
	key := priceKey(variantID, channelID, currency)

	if value, ok := c.entries.Load(key); ok {
		entry := value.(*priceEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			return entry.value, true
		}
		c.entries.Delete(key)
	}

	atomic.AddInt64(&c.misses, 1)
	return nil, false
}

// SetDisplayPrice stores a display price with the configured TTL
func (c *MemoryPriceCache) SetDisplayPrice(_ context.Context, price *pricing.DisplayPriceResponse) {
	if price == nil {
		return
	}

	key := priceKey(price.VariantID, price.ChannelID, valueobject.Currency(price.CurrencyCode))
	c.entries.Store(key, &priceEntry{
		value:     price,
		expiresAt: time.Now().Add(c.ttl),
	})
}

// InvalidateVariant removes every cached price for a variant across all
// channels and currencies
func (c *MemoryPriceCache) InvalidateVariant(_ context.Context, variantID uuid.UUID) {
	prefix := variantID.String() + ":"
	var removed int

	c.entries.Range(func(key, _ any) bool {
		if strings.HasPrefix(key.(string), prefix) {
			c.entries.Delete(key)
			removed++
		}
		return true
	})

	if removed > 0 {
		c.logger.Debug("Invalidated cached prices for variant",
			zap.String("variant_id", variantID.String()),
			zap.Int("removed", removed))
	}
}

// Stats returns cache hit and miss counters
func (c *MemoryPriceCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Close stops the background cleanup goroutine
func (c *MemoryPriceCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

func (c *MemoryPriceCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.doCleanup()
		}
	}
}

func (c *MemoryPriceCache) doCleanup() {
	var removed int

	c.entries.Range(func(key, value any) bool {
		if value.(*priceEntry).isExpired() {
			c.entries.Delete(key)
			removed++
		}
		return true
	})

	if removed > 0 {
		c.logger.Debug("Cleaned up expired price cache entries",
			zap.Int("removed", removed))
	}
}

// Ensure MemoryPriceCache implements PriceCache
var _ pricing.PriceCache = (*MemoryPriceCache)(nil)
