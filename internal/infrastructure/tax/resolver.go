// Package tax resolves the flat tax rates applied to display prices.
package tax

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storecore/backend/internal/domain/channel"
	"github.com/storecore/backend/internal/infrastructure/config"
)

// ConfigResolver resolves tax rates from static configuration. Rates are
// keyed by channel code; channels without an entry use the default rate.
type ConfigResolver struct {
	channelRepo channel.ChannelRepository
	defaultRate decimal.Decimal
	byCode      map[string]decimal.Decimal
}

// NewConfigResolver creates a resolver from the tax configuration
func NewConfigResolver(cfg *config.TaxConfig, channelRepo channel.ChannelRepository) *ConfigResolver {
	byCode := make(map[string]decimal.Decimal, len(cfg.RatesByChannel))
	for code, rate := range cfg.RatesByChannel {
		byCode[code] = decimal.NewFromFloat(rate)
	}
	return &ConfigResolver{
		channelRepo: channelRepo,
		defaultRate: decimal.NewFromFloat(cfg.DefaultRate),
		byCode:      byCode,
	}
}

// RateFor returns the tax rate for a channel as a fraction (0.2 for 20%)
func (r *ConfigResolver) RateFor(ctx context.Context, channelID uuid.UUID) (decimal.Decimal, error) {
	if len(r.byCode) == 0 {
		return r.defaultRate, nil
	}

	ch, err := r.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		return decimal.Zero, err
	}

	if rate, ok := r.byCode[ch.Code]; ok {
		return rate, nil
	}
	return r.defaultRate, nil
}
