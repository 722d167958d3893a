package strategy

import (
	"github.com/storecore/backend/internal/domain/shared/strategy"
	"github.com/storecore/backend/internal/infrastructure/strategy/priceselection"
	"github.com/storecore/backend/internal/infrastructure/strategy/priceupdate"
)

// NewRegistryWithDefaults creates a registry with the built-in strategies
// registered. The no-op update strategy and the exact-match selection
// strategy are the defaults; deployments opt into cross-channel
// synchronization through configuration.
func NewRegistryWithDefaults() (*StrategyRegistry, error) {
	r := NewStrategyRegistry()

	// Register price update strategies
	noOp := priceupdate.NewNoOpStrategy()
	if err := r.RegisterUpdateStrategy(noOp); err != nil {
		return nil, err
	}

	syncAcrossChannels := priceupdate.NewSyncAcrossChannelsStrategy()
	if err := r.RegisterUpdateStrategy(syncAcrossChannels); err != nil {
		return nil, err
	}

	// Register price selection strategies
	defaultSelection := priceselection.NewDefaultStrategy()
	if err := r.RegisterSelectionStrategy(defaultSelection); err != nil {
		return nil, err
	}

	// Set defaults
	if err := r.SetDefault(strategy.StrategyTypePriceUpdate, noOp.Name()); err != nil {
		return nil, err
	}
	if err := r.SetDefault(strategy.StrategyTypePriceSelection, defaultSelection.Name()); err != nil {
		return nil, err
	}

	return r, nil
}
