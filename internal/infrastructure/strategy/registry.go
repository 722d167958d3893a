package strategy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/strategy"
)

// StrategyRegistry manages strategy registrations
type StrategyRegistry struct {
	mu                  sync.RWMutex
	updateStrategies    map[string]strategy.PriceUpdateStrategy
	selectionStrategies map[string]strategy.PriceSelectionStrategy
	defaults            map[strategy.StrategyType]string
}

// NewStrategyRegistry creates a new strategy registry
func NewStrategyRegistry() *StrategyRegistry {
	return &StrategyRegistry{
		updateStrategies:    make(map[string]strategy.PriceUpdateStrategy),
		selectionStrategies: make(map[string]strategy.PriceSelectionStrategy),
		defaults:            make(map[strategy.StrategyType]string),
	}
}

// RegisterUpdateStrategy registers a price update strategy
func (r *StrategyRegistry) RegisterUpdateStrategy(s strategy.PriceUpdateStrategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, exists := r.updateStrategies[name]; exists {
		return fmt.Errorf("%w: price update strategy '%s' already registered", shared.ErrAlreadyExists, name)
	}
	r.updateStrategies[name] = s
	return nil
}

// GetUpdateStrategy returns a price update strategy by name, or the default if name is empty
func (r *StrategyRegistry) GetUpdateStrategy(name string) (strategy.PriceUpdateStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaults[strategy.StrategyTypePriceUpdate]
		if name == "" {
			return nil, fmt.Errorf("%w: no default price update strategy set", shared.ErrNotFound)
		}
	}

	s, exists := r.updateStrategies[name]
	if !exists {
		return nil, fmt.Errorf("%w: price update strategy '%s' not found", shared.ErrNotFound, name)
	}
	return s, nil
}

// GetUpdateStrategyOrDefault returns a price update strategy by name, or the default if not found
func (r *StrategyRegistry) GetUpdateStrategyOrDefault(name string) strategy.PriceUpdateStrategy {
	s, err := r.GetUpdateStrategy(name)
	if err != nil {
		s, _ = r.GetUpdateStrategy("")
	}
	return s
}

// ListUpdateStrategies returns all registered price update strategy names
func (r *StrategyRegistry) ListUpdateStrategies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.updateStrategies))
	for name := range r.updateStrategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnregisterUpdateStrategy removes a price update strategy
func (r *StrategyRegistry) UnregisterUpdateStrategy(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.updateStrategies[name]; !exists {
		return fmt.Errorf("%w: price update strategy '%s' not found", shared.ErrNotFound, name)
	}
	delete(r.updateStrategies, name)

	// Clear default if it was this strategy
	if r.defaults[strategy.StrategyTypePriceUpdate] == name {
		delete(r.defaults, strategy.StrategyTypePriceUpdate)
	}
	return nil
}

// RegisterSelectionStrategy registers a price selection strategy
func (r *StrategyRegistry) RegisterSelectionStrategy(s strategy.PriceSelectionStrategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, exists := r.selectionStrategies[name]; exists {
		return fmt.Errorf("%w: price selection strategy '%s' already registered", shared.ErrAlreadyExists, name)
	}
	r.selectionStrategies[name] = s
	return nil
}

// GetSelectionStrategy returns a price selection strategy by name, or the default if name is empty
func (r *StrategyRegistry) GetSelectionStrategy(name string) (strategy.PriceSelectionStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaults[strategy.StrategyTypePriceSelection]
		if name == "" {
			return nil, fmt.Errorf("%w: no default price selection strategy set", shared.ErrNotFound)
		}
	}

	s, exists := r.selectionStrategies[name]
	if !exists {
		return nil, fmt.Errorf("%w: price selection strategy '%s' not found", shared.ErrNotFound, name)
	}
	return s, nil
}

// GetSelectionStrategyOrDefault returns a price selection strategy by name, or the default if not found
func (r *StrategyRegistry) GetSelectionStrategyOrDefault(name string) strategy.PriceSelectionStrategy {
	s, err := r.GetSelectionStrategy(name)
	if err != nil {
		s, _ = r.GetSelectionStrategy("")
	}
	return s
}

// ListSelectionStrategies returns all registered price selection strategy names
func (r *StrategyRegistry) ListSelectionStrategies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.selectionStrategies))
	for name := range r.selectionStrategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnregisterSelectionStrategy removes a price selection strategy
func (r *StrategyRegistry) UnregisterSelectionStrategy(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.selectionStrategies[name]; !exists {
		return fmt.Errorf("%w: price selection strategy '%s' not found", shared.ErrNotFound, name)
	}
	delete(r.selectionStrategies, name)

	if r.defaults[strategy.StrategyTypePriceSelection] == name {
		delete(r.defaults, strategy.StrategyTypePriceSelection)
	}
	return nil
}

// SetDefault sets the default strategy for a strategy type
func (r *StrategyRegistry) SetDefault(strategyType strategy.StrategyType, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRegisteredLocked(strategyType, name) {
		return fmt.Errorf("%w: strategy '%s' of type '%s' not found", shared.ErrNotFound, name, strategyType)
	}

	r.defaults[strategyType] = name
	return nil
}

// GetDefault returns the default strategy name for a strategy type
func (r *StrategyRegistry) GetDefault(strategyType strategy.StrategyType) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults[strategyType]
}

// HasDefault returns true if a default is set for the strategy type
func (r *StrategyRegistry) HasDefault(strategyType strategy.StrategyType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults[strategyType] != ""
}

// IsRegistered returns true if a strategy with the given name is registered for the type
func (r *StrategyRegistry) IsRegistered(strategyType strategy.StrategyType, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isRegisteredLocked(strategyType, name)
}

// isRegisteredLocked checks registration without locking (caller must hold lock)
func (r *StrategyRegistry) isRegisteredLocked(strategyType strategy.StrategyType, name string) bool {
	switch strategyType {
	case strategy.StrategyTypePriceUpdate:
		_, exists := r.updateStrategies[name]
		return exists
	case strategy.StrategyTypePriceSelection:
		_, exists := r.selectionStrategies[name]
		return exists
	default:
		return false
	}
}

// Stats returns registration counts for each strategy type
func (r *StrategyRegistry) Stats() map[strategy.StrategyType]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return map[strategy.StrategyType]int{
		strategy.StrategyTypePriceUpdate:    len(r.updateStrategies),
		strategy.StrategyTypePriceSelection: len(r.selectionStrategies),
	}
}
