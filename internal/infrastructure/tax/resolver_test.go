package tax

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/channel"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
	"github.com/storecore/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type singleChannelRepo struct {
	ch *channel.Channel
}

func (r singleChannelRepo) FindByID(_ context.Context, id uuid.UUID) (*channel.Channel, error) {
	if r.ch != nil && r.ch.ID == id {
		return r.ch, nil
	}
	return nil, shared.ErrNotFound
}

func (r singleChannelRepo) FindByCode(context.Context, string) (*channel.Channel, error) {
	return nil, shared.ErrNotFound
}

func (r singleChannelRepo) FindByToken(context.Context, string) (*channel.Channel, error) {
	return nil, shared.ErrNotFound
}

func (r singleChannelRepo) FindAll(context.Context, shared.Filter) ([]channel.Channel, error) {
	return nil, nil
}

func (r singleChannelRepo) Save(context.Context, *channel.Channel) error { return nil }

func (r singleChannelRepo) Delete(context.Context, uuid.UUID) error { return nil }

func TestConfigResolver(t *testing.T) {
	ctx := context.Background()

	ch, err := channel.NewChannel("uk-store", "uk-token", valueobject.GBP, nil)
	require.NoError(t, err)
	repo := singleChannelRepo{ch: ch}

	t.Run("uses the default rate without per-channel entries", func(t *testing.T) {
		resolver := NewConfigResolver(&config.TaxConfig{DefaultRate: 0.2}, repo)

		rate, err := resolver.RateFor(ctx, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, "0.2", rate.String())
	})

	t.Run("prefers the channel specific rate", func(t *testing.T) {
		resolver := NewConfigResolver(&config.TaxConfig{
			DefaultRate:    0.2,
			RatesByChannel: map[string]float64{"uk-store": 0.05},
		}, repo)

		rate, err := resolver.RateFor(ctx, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, "0.05", rate.String())
	})

	t.Run("falls back to the default for unlisted channels", func(t *testing.T) {
		resolver := NewConfigResolver(&config.TaxConfig{
			DefaultRate:    0.1,
			RatesByChannel: map[string]float64{"other": 0.05},
		}, repo)

		rate, err := resolver.RateFor(ctx, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, "0.1", rate.String())
	})
}
