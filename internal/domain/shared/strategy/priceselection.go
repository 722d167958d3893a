package strategy

import (
	"context"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// SelectionContext carries everything a selection strategy may consult when
// picking the effective price for a variant in a channel. EffectiveCurrency
// is already resolved (requested currency or the channel default) and already
// validated against the channel's available set.
type SelectionContext struct {
	VariantID         uuid.UUID
	ChannelID         uuid.UUID
	EffectiveCurrency valueobject.Currency
	// Candidates holds the variant's price records within the channel
	Candidates []PriceRecord
}

// PriceSelectionStrategy selects exactly one price record to present as a
// variant's effective price in a channel. Implementations must not fall back
// to a different currency: absence of a record in the effective currency is
// an error, not a substitution.
type PriceSelectionStrategy interface {
	Strategy
	SelectPrice(ctx context.Context, sel SelectionContext) (PriceRecord, error)
}
