package priceselection

import (
	"context"

	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/strategy"
)

// DefaultStrategy selects the price record that exactly matches the
// effective currency within the channel. There is no fallback to another
// currency: a variant without a record in the effective currency cannot be
// displayed or sold in it.
type DefaultStrategy struct {
	strategy.BaseStrategy
}

// NewDefaultStrategy creates a new DefaultStrategy
func NewDefaultStrategy() *DefaultStrategy {
	return &DefaultStrategy{
		BaseStrategy: strategy.NewBaseStrategy(
			"default",
			strategy.StrategyTypePriceSelection,
			"Exact channel and currency match, no cross-currency fallback",
		),
	}
}

// SelectPrice returns the candidate matching the effective currency
func (s *DefaultStrategy) SelectPrice(_ context.Context, sel strategy.SelectionContext) (strategy.PriceRecord, error) {
	for _, candidate := range sel.Candidates {
		if candidate.ChannelID == sel.ChannelID && candidate.CurrencyCode == sel.EffectiveCurrency {
			return candidate, nil
		}
	}
	return strategy.PriceRecord{}, shared.NewNoPriceForCurrencyError(sel.EffectiveCurrency.String())
}

// Ensure DefaultStrategy implements PriceSelectionStrategy
var _ strategy.PriceSelectionStrategy = (*DefaultStrategy)(nil)
