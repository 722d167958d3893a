package priceupdate

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared/strategy"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(variantID, channelID uuid.UUID, currency valueobject.Currency, price int64) strategy.PriceRecord {
	return strategy.PriceRecord{
		ID:           uuid.New(),
		VariantID:    variantID,
		ChannelID:    channelID,
		CurrencyCode: currency,
		Price:        price,
	}
}

func TestSyncAcrossChannelsOnPriceUpdated(t *testing.T) {
	ctx := context.Background()
	s := NewSyncAcrossChannelsStrategy()
	variantID := uuid.New()
	ch1, ch2, ch3 := uuid.New(), uuid.New(), uuid.New()

	t.Run("updates every same-currency sibling across channels", func(t *testing.T) {
		usd1 := record(variantID, ch1, valueobject.USD, 1200)
		gbp1 := record(variantID, ch1, valueobject.GBP, 900)
		gbp2 := record(variantID, ch2, valueobject.GBP, 1440)
		gbp3 := record(variantID, ch3, valueobject.GBP, 1440)

		gbp3.Price = 4242
		adjustments, err := s.OnPriceUpdated(ctx, gbp3, []strategy.PriceRecord{usd1, gbp1, gbp2, gbp3})
		require.NoError(t, err)

		require.Len(t, adjustments, 2)
		assert.ElementsMatch(t, []strategy.PriceAdjustment{
			{PriceID: gbp1.ID, Price: 4242},
			{PriceID: gbp2.ID, Price: 4242},
		}, adjustments)
	})

	t.Run("leaves other currencies untouched", func(t *testing.T) {
		usd1 := record(variantID, ch1, valueobject.USD, 1200)
		gbp1 := record(variantID, ch1, valueobject.GBP, 900)

		gbp1.Price = 4242
		adjustments, err := s.OnPriceUpdated(ctx, gbp1, []strategy.PriceRecord{usd1, gbp1})
		require.NoError(t, err)
		assert.Empty(t, adjustments)
	})

	t.Run("skips records already at the target amount", func(t *testing.T) {
		gbp1 := record(variantID, ch1, valueobject.GBP, 4242)
		gbp2 := record(variantID, ch2, valueobject.GBP, 900)

		gbp2.Price = 4242
		adjustments, err := s.OnPriceUpdated(ctx, gbp2, []strategy.PriceRecord{gbp1, gbp2})
		require.NoError(t, err)
		assert.Empty(t, adjustments)
	})
}

func TestSyncAcrossChannelsOnPriceCreated(t *testing.T) {
	ctx := context.Background()
	s := NewSyncAcrossChannelsStrategy()
	variantID := uuid.New()

	created := record(variantID, uuid.New(), valueobject.EUR, 2000)
	sibling := record(variantID, uuid.New(), valueobject.EUR, 1500)

	adjustments, err := s.OnPriceCreated(ctx, created, []strategy.PriceRecord{sibling, created})
	require.NoError(t, err)
	require.Len(t, adjustments, 1)
	assert.Equal(t, sibling.ID, adjustments[0].PriceID)
	assert.Equal(t, int64(2000), adjustments[0].Price)
}

func TestSyncAcrossChannelsOnPriceDeleted(t *testing.T) {
	ctx := context.Background()
	s := NewSyncAcrossChannelsStrategy()
	variantID := uuid.New()

	deleted := record(variantID, uuid.New(), valueobject.GBP, 900)
	sibling := record(variantID, uuid.New(), valueobject.GBP, 900)

	adjustments, err := s.OnPriceDeleted(ctx, deleted, []strategy.PriceRecord{deleted, sibling})
	require.NoError(t, err)
	assert.Empty(t, adjustments)
}

func TestNoOpStrategy(t *testing.T) {
	ctx := context.Background()
	s := NewNoOpStrategy()
	changed := record(uuid.New(), uuid.New(), valueobject.GBP, 900)
	sibling := record(changed.VariantID, uuid.New(), valueobject.GBP, 1440)
	all := []strategy.PriceRecord{changed, sibling}

	created, err := s.OnPriceCreated(ctx, changed, all)
	require.NoError(t, err)
	assert.Empty(t, created)

	updated, err := s.OnPriceUpdated(ctx, changed, all)
	require.NoError(t, err)
	assert.Empty(t, updated)

	deleted, err := s.OnPriceDeleted(ctx, changed, all)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}
