package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/application/pricing"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func displayPrice(variantID, channelID uuid.UUID, currency valueobject.Currency, amount int64) *pricing.DisplayPriceResponse {
	return &pricing.DisplayPriceResponse{
		VariantID:    variantID,
		ChannelID:    channelID,
		CurrencyCode: currency.String(),
		Price:        amount,
		PriceWithTax: amount,
	}
}

func TestMemoryPriceCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a display price", func(t *testing.T) {
		cache := NewMemoryPriceCache()
		defer cache.Close()

		variantID, channelID := uuid.New(), uuid.New()
		cache.SetDisplayPrice(ctx, displayPrice(variantID, channelID, valueobject.USD, 1200))

		found, ok := cache.GetDisplayPrice(ctx, variantID, channelID, valueobject.USD)
		require.True(t, ok)
		assert.Equal(t, int64(1200), found.Price)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		cache := NewMemoryPriceCache()
		defer cache.Close()

		_, ok := cache.GetDisplayPrice(ctx, uuid.New(), uuid.New(), valueobject.USD)
		assert.False(t, ok)
	})

	t.Run("currencies are cached independently", func(t *testing.T) {
		cache := NewMemoryPriceCache()
		defer cache.Close()

		variantID, channelID := uuid.New(), uuid.New()
		cache.SetDisplayPrice(ctx, displayPrice(variantID, channelID, valueobject.USD, 1200))
		cache.SetDisplayPrice(ctx, displayPrice(variantID, channelID, valueobject.GBP, 900))

		usd, ok := cache.GetDisplayPrice(ctx, variantID, channelID, valueobject.USD)
		require.True(t, ok)
		assert.Equal(t, int64(1200), usd.Price)

		gbp, ok := cache.GetDisplayPrice(ctx, variantID, channelID, valueobject.GBP)
		require.True(t, ok)
		assert.Equal(t, int64(900), gbp.Price)
	})

	t.Run("invalidating a variant clears all its entries", func(t *testing.T) {
		cache := NewMemoryPriceCache()
		defer cache.Close()

		variantID, otherVariantID := uuid.New(), uuid.New()
		channelA, channelB := uuid.New(), uuid.New()
		cache.SetDisplayPrice(ctx, displayPrice(variantID, channelA, valueobject.USD, 1200))
		cache.SetDisplayPrice(ctx, displayPrice(variantID, channelB, valueobject.GBP, 900))
		cache.SetDisplayPrice(ctx, displayPrice(otherVariantID, channelA, valueobject.USD, 500))

		cache.InvalidateVariant(ctx, variantID)

		_, ok := cache.GetDisplayPrice(ctx, variantID, channelA, valueobject.USD)
		assert.False(t, ok)
		_, ok = cache.GetDisplayPrice(ctx, variantID, channelB, valueobject.GBP)
		assert.False(t, ok)

		_, ok = cache.GetDisplayPrice(ctx, otherVariantID, channelA, valueobject.USD)
		assert.True(t, ok)
	})

	t.Run("expired entries are misses", func(t *testing.T) {
		cache := NewMemoryPriceCache(WithMemoryTTL(time.Nanosecond))
		defer cache.Close()

		variantID, channelID := uuid.New(), uuid.New()
		cache.SetDisplayPrice(ctx, displayPrice(variantID, channelID, valueobject.USD, 1200))

		time.Sleep(time.Millisecond)

		_, ok := cache.GetDisplayPrice(ctx, variantID, channelID, valueobject.USD)
		assert.False(t, ok)
	})

	t.Run("tracks hits and misses", func(t *testing.T) {
		cache := NewMemoryPriceCache()
		defer cache.Close()

		variantID, channelID := uuid.New(), uuid.New()
		cache.SetDisplayPrice(ctx, displayPrice(variantID, channelID, valueobject.USD, 1200))

		cache.GetDisplayPrice(ctx, variantID, channelID, valueobject.USD)
		cache.GetDisplayPrice(ctx, variantID, channelID, valueobject.EUR)

		hits, misses := cache.Stats()
		assert.Equal(t, int64(1), hits)
		assert.Equal(t, int64(1), misses)
	})
}
