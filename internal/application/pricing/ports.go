package pricing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storecore/backend/internal/domain/shared/strategy"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// StrategyProvider resolves strategies by name. An empty name resolves to the
// configured default.
type StrategyProvider interface {
	GetUpdateStrategy(name string) (strategy.PriceUpdateStrategy, error)
	GetSelectionStrategy(name string) (strategy.PriceSelectionStrategy, error)
}

// PriceCache caches resolved display prices. A miss returns ok=false; cache
// failures must not fail the read path.
type PriceCache interface {
	GetDisplayPrice(ctx context.Context, variantID, channelID uuid.UUID, currency valueobject.Currency) (*DisplayPriceResponse, bool)
	SetDisplayPrice(ctx context.Context, price *DisplayPriceResponse)
	InvalidateVariant(ctx context.Context, variantID uuid.UUID)
}

// TaxRateResolver returns the tax rate applied to display prices in a channel,
// as a fraction (0.2 for 20%).
type TaxRateResolver interface {
	RateFor(ctx context.Context, channelID uuid.UUID) (decimal.Decimal, error)
}
