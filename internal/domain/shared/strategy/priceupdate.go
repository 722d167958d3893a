package strategy

import (
	"context"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// PriceRecord is a snapshot of a single variant price row handed to strategy
// hooks. Strategies never mutate records directly; they return adjustments.
type PriceRecord struct {
	ID           uuid.UUID
	VariantID    uuid.UUID
	ChannelID    uuid.UUID
	CurrencyCode valueobject.Currency
	Price        int64
}

// PriceAdjustment names an existing price record and the amount it should be
// set to as a side effect of another record's mutation.
type PriceAdjustment struct {
	PriceID uuid.UUID
	Price   int64
}

// PriceUpdateStrategy decides which sibling price records should be
// synchronized when a single price record is created, updated, or deleted.
//
// Each hook receives the changed record and the complete set of the variant's
// price records, including the triggering record itself. For OnPriceDeleted
// the set still contains the doomed record with its last stored values.
// Returned adjustments are applied in order within the same transaction as
// the triggering mutation; a hook error rolls the whole operation back.
type PriceUpdateStrategy interface {
	Strategy
	// OnPriceCreated is invoked after a new price record is inserted
	OnPriceCreated(ctx context.Context, created PriceRecord, all []PriceRecord) ([]PriceAdjustment, error)
	// OnPriceUpdated is invoked after an existing price record's amount changes
	OnPriceUpdated(ctx context.Context, updated PriceRecord, all []PriceRecord) ([]PriceAdjustment, error)
	// OnPriceDeleted is invoked before a price record is removed
	OnPriceDeleted(ctx context.Context, deleted PriceRecord, all []PriceRecord) ([]PriceAdjustment, error)
}
