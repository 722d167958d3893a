package priceselection

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/strategy"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStrategySelectPrice(t *testing.T) {
	ctx := context.Background()
	s := NewDefaultStrategy()
	variantID := uuid.New()
	channelID := uuid.New()

	usdRecord := strategy.PriceRecord{
		ID: uuid.New(), VariantID: variantID, ChannelID: channelID,
		CurrencyCode: valueobject.USD, Price: 1200,
	}
	gbpRecord := strategy.PriceRecord{
		ID: uuid.New(), VariantID: variantID, ChannelID: channelID,
		CurrencyCode: valueobject.GBP, Price: 900,
	}

	t.Run("selects the exact currency match", func(t *testing.T) {
		selected, err := s.SelectPrice(ctx, strategy.SelectionContext{
			VariantID:         variantID,
			ChannelID:         channelID,
			EffectiveCurrency: valueobject.GBP,
			Candidates:        []strategy.PriceRecord{usdRecord, gbpRecord},
		})
		require.NoError(t, err)
		assert.Equal(t, gbpRecord.ID, selected.ID)
		assert.Equal(t, int64(900), selected.Price)
	})

	t.Run("ignores records from other channels", func(t *testing.T) {
		foreign := strategy.PriceRecord{
			ID: uuid.New(), VariantID: variantID, ChannelID: uuid.New(),
			CurrencyCode: valueobject.EUR, Price: 1000,
		}
		_, err := s.SelectPrice(ctx, strategy.SelectionContext{
			VariantID:         variantID,
			ChannelID:         channelID,
			EffectiveCurrency: valueobject.EUR,
			Candidates:        []strategy.PriceRecord{foreign},
		})
		require.Error(t, err)
	})

	t.Run("fails without fallback when the currency has no record", func(t *testing.T) {
		_, err := s.SelectPrice(ctx, strategy.SelectionContext{
			VariantID:         variantID,
			ChannelID:         channelID,
			EffectiveCurrency: valueobject.JPY,
			Candidates:        []strategy.PriceRecord{usdRecord, gbpRecord},
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.ErrCodeNoPriceForCurrency, domainErr.Code)
		assert.Contains(t, domainErr.Message, `"JPY"`)
	})
}
