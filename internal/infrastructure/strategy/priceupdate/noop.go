package priceupdate

import (
	"context"

	"github.com/storecore/backend/internal/domain/shared/strategy"
)

// NoOpStrategy is the default price update strategy: price records change
// independently and nothing is synchronized.
type NoOpStrategy struct {
	strategy.BaseStrategy
}

// NewNoOpStrategy creates a new NoOpStrategy
func NewNoOpStrategy() *NoOpStrategy {
	return &NoOpStrategy{
		BaseStrategy: strategy.NewBaseStrategy(
			"no_op",
			strategy.StrategyTypePriceUpdate,
			"Price changes never propagate to sibling records",
		),
	}
}

// OnPriceCreated returns no adjustments
func (s *NoOpStrategy) OnPriceCreated(_ context.Context, _ strategy.PriceRecord, _ []strategy.PriceRecord) ([]strategy.PriceAdjustment, error) {
	return nil, nil
}

// OnPriceUpdated returns no adjustments
func (s *NoOpStrategy) OnPriceUpdated(_ context.Context, _ strategy.PriceRecord, _ []strategy.PriceRecord) ([]strategy.PriceAdjustment, error) {
	return nil, nil
}

// OnPriceDeleted returns no adjustments
func (s *NoOpStrategy) OnPriceDeleted(_ context.Context, _ strategy.PriceRecord, _ []strategy.PriceRecord) ([]strategy.PriceAdjustment, error) {
	return nil, nil
}

// Ensure NoOpStrategy implements PriceUpdateStrategy
var _ strategy.PriceUpdateStrategy = (*NoOpStrategy)(nil)
