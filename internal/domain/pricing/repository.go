package pricing

import (
	"context"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// VariantPriceRepository defines the interface for price record persistence.
// Implementations back the Price Record Store: at most one row per
// (variant, channel, currency) triple.
type VariantPriceRepository interface {
	// FindByID finds a price record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*VariantPrice, error)

	// FindByKey finds the price record for a (variant, channel, currency)
	// triple. Returns shared.ErrNotFound if absent.
	FindByKey(ctx context.Context, variantID, channelID uuid.UUID, currencyCode valueobject.Currency) (*VariantPrice, error)

	// FindByVariant returns all price records for a variant across all
	// channels and currencies
	FindByVariant(ctx context.Context, variantID uuid.UUID) ([]VariantPrice, error)

	// FindByVariantAndChannel returns a variant's price records within one channel
	FindByVariantAndChannel(ctx context.Context, variantID, channelID uuid.UUID) ([]VariantPrice, error)

	// Save creates or updates a price record
	Save(ctx context.Context, price *VariantPrice) error

	// Delete removes a price record by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByKey removes the record for a triple; no-op if absent
	DeleteByKey(ctx context.Context, variantID, channelID uuid.UUID, currencyCode valueobject.Currency) error
}
