package priceupdate

import (
	"context"

	"github.com/storecore/backend/internal/domain/shared/strategy"
)

// SyncAcrossChannelsStrategy keeps a variant's price synchronized across all
// channels that sell in the same currency. Editing the GBP price in one
// channel rewrites every other GBP record for that variant, channel-scoped
// duplicates included; records in other currencies are untouched. Deleting a
// record never cascades.
type SyncAcrossChannelsStrategy struct {
	strategy.BaseStrategy
}

// NewSyncAcrossChannelsStrategy creates a new SyncAcrossChannelsStrategy
func NewSyncAcrossChannelsStrategy() *SyncAcrossChannelsStrategy {
	return &SyncAcrossChannelsStrategy{
		BaseStrategy: strategy.NewBaseStrategy(
			"sync_across_channels",
			strategy.StrategyTypePriceUpdate,
			"Synchronizes a price change to all sibling records in the same currency",
		),
	}
}

// OnPriceCreated aligns pre-existing same-currency siblings with the new record
func (s *SyncAcrossChannelsStrategy) OnPriceCreated(_ context.Context, created strategy.PriceRecord, all []strategy.PriceRecord) ([]strategy.PriceAdjustment, error) {
	return sameCurrencyAdjustments(created, all), nil
}

// OnPriceUpdated aligns every other same-currency record with the new amount
func (s *SyncAcrossChannelsStrategy) OnPriceUpdated(_ context.Context, updated strategy.PriceRecord, all []strategy.PriceRecord) ([]strategy.PriceAdjustment, error) {
	return sameCurrencyAdjustments(updated, all), nil
}

// OnPriceDeleted returns no adjustments: deletion does not cascade
func (s *SyncAcrossChannelsStrategy) OnPriceDeleted(_ context.Context, _ strategy.PriceRecord, _ []strategy.PriceRecord) ([]strategy.PriceAdjustment, error) {
	return nil, nil
}

func sameCurrencyAdjustments(changed strategy.PriceRecord, all []strategy.PriceRecord) []strategy.PriceAdjustment {
	var adjustments []strategy.PriceAdjustment
	for _, record := range all {
		if record.ID == changed.ID {
			continue
		}
		if record.CurrencyCode != changed.CurrencyCode {
			continue
		}
		if record.Price == changed.Price {
			continue
		}
		adjustments = append(adjustments, strategy.PriceAdjustment{
			PriceID: record.ID,
			Price:   changed.Price,
		})
	}
	return adjustments
}

// Ensure SyncAcrossChannelsStrategy implements PriceUpdateStrategy
var _ strategy.PriceUpdateStrategy = (*SyncAcrossChannelsStrategy)(nil)
