package strategy

import (
	"testing"

	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/strategy"
	"github.com/storecore/backend/internal/infrastructure/strategy/priceupdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyRegistry(t *testing.T) {
	t.Run("register and get update strategy", func(t *testing.T) {
		r := NewStrategyRegistry()
		require.NoError(t, r.RegisterUpdateStrategy(priceupdate.NewNoOpStrategy()))

		s, err := r.GetUpdateStrategy("no_op")
		require.NoError(t, err)
		assert.Equal(t, "no_op", s.Name())
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		r := NewStrategyRegistry()
		require.NoError(t, r.RegisterUpdateStrategy(priceupdate.NewNoOpStrategy()))

		err := r.RegisterUpdateStrategy(priceupdate.NewNoOpStrategy())
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("get unknown strategy fails", func(t *testing.T) {
		r := NewStrategyRegistry()
		_, err := r.GetUpdateStrategy("missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("empty name resolves to default", func(t *testing.T) {
		r := NewStrategyRegistry()
		require.NoError(t, r.RegisterUpdateStrategy(priceupdate.NewSyncAcrossChannelsStrategy()))
		require.NoError(t, r.SetDefault(strategy.StrategyTypePriceUpdate, "sync_across_channels"))

		s, err := r.GetUpdateStrategy("")
		require.NoError(t, err)
		assert.Equal(t, "sync_across_channels", s.Name())
	})

	t.Run("empty name without default fails", func(t *testing.T) {
		r := NewStrategyRegistry()
		_, err := r.GetUpdateStrategy("")
		require.Error(t, err)
	})

	t.Run("set default requires registration", func(t *testing.T) {
		r := NewStrategyRegistry()
		err := r.SetDefault(strategy.StrategyTypePriceUpdate, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unregister clears default", func(t *testing.T) {
		r := NewStrategyRegistry()
		require.NoError(t, r.RegisterUpdateStrategy(priceupdate.NewNoOpStrategy()))
		require.NoError(t, r.SetDefault(strategy.StrategyTypePriceUpdate, "no_op"))
		require.NoError(t, r.UnregisterUpdateStrategy("no_op"))

		assert.False(t, r.HasDefault(strategy.StrategyTypePriceUpdate))
	})

	t.Run("list returns sorted names", func(t *testing.T) {
		r := NewStrategyRegistry()
		require.NoError(t, r.RegisterUpdateStrategy(priceupdate.NewSyncAcrossChannelsStrategy()))
		require.NoError(t, r.RegisterUpdateStrategy(priceupdate.NewNoOpStrategy()))

		assert.Equal(t, []string{"no_op", "sync_across_channels"}, r.ListUpdateStrategies())
	})
}

func TestNewRegistryWithDefaults(t *testing.T) {
	r, err := NewRegistryWithDefaults()
	require.NoError(t, err)

	assert.Equal(t, "no_op", r.GetDefault(strategy.StrategyTypePriceUpdate))
	assert.Equal(t, "default", r.GetDefault(strategy.StrategyTypePriceSelection))
	assert.Equal(t, []string{"no_op", "sync_across_channels"}, r.ListUpdateStrategies())
	assert.Equal(t, []string{"default"}, r.ListSelectionStrategies())

	stats := r.Stats()
	assert.Equal(t, 2, stats[strategy.StrategyTypePriceUpdate])
	assert.Equal(t, 1, stats[strategy.StrategyTypePriceSelection])
}
