package pricing

import (
	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// Event types for the pricing domain
const (
	EventTypeVariantPriceCreated = "pricing.variant_price.created"
	EventTypeVariantPriceUpdated = "pricing.variant_price.updated"
	EventTypeVariantPriceDeleted = "pricing.variant_price.deleted"
)

// AggregateTypeVariantPrice is the aggregate type used in pricing events
const AggregateTypeVariantPrice = "VariantPrice"

// VariantPriceCreatedEvent is published when a price record is created
type VariantPriceCreatedEvent struct {
	shared.BaseDomainEvent
	PriceID      uuid.UUID            `json:"price_id"`
	VariantID    uuid.UUID            `json:"variant_id"`
	ChannelID    uuid.UUID            `json:"channel_id"`
	CurrencyCode valueobject.Currency `json:"currency_code"`
	Price        int64                `json:"price"`
}

// NewVariantPriceCreatedEvent creates a new VariantPriceCreatedEvent
func NewVariantPriceCreatedEvent(p *VariantPrice) *VariantPriceCreatedEvent {
	return &VariantPriceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVariantPriceCreated, AggregateTypeVariantPrice, p.ID),
		PriceID:         p.ID,
		VariantID:       p.VariantID,
		ChannelID:       p.ChannelID,
		CurrencyCode:    p.CurrencyCode,
		Price:           p.Price,
	}
}

// VariantPriceUpdatedEvent is published when a price record's amount changes
type VariantPriceUpdatedEvent struct {
	shared.BaseDomainEvent
	PriceID       uuid.UUID            `json:"price_id"`
	VariantID     uuid.UUID            `json:"variant_id"`
	ChannelID     uuid.UUID            `json:"channel_id"`
	CurrencyCode  valueobject.Currency `json:"currency_code"`
	Price         int64                `json:"price"`
	PreviousPrice int64                `json:"previous_price"`
}

// NewVariantPriceUpdatedEvent creates a new VariantPriceUpdatedEvent
func NewVariantPriceUpdatedEvent(p *VariantPrice, previousPrice int64) *VariantPriceUpdatedEvent {
	return &VariantPriceUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVariantPriceUpdated, AggregateTypeVariantPrice, p.ID),
		PriceID:         p.ID,
		VariantID:       p.VariantID,
		ChannelID:       p.ChannelID,
		CurrencyCode:    p.CurrencyCode,
		Price:           p.Price,
		PreviousPrice:   previousPrice,
	}
}

// VariantPriceDeletedEvent is published when a price record is removed
type VariantPriceDeletedEvent struct {
	shared.BaseDomainEvent
	PriceID      uuid.UUID            `json:"price_id"`
	VariantID    uuid.UUID            `json:"variant_id"`
	ChannelID    uuid.UUID            `json:"channel_id"`
	CurrencyCode valueobject.Currency `json:"currency_code"`
	LastPrice    int64                `json:"last_price"`
}

// NewVariantPriceDeletedEvent creates a new VariantPriceDeletedEvent
func NewVariantPriceDeletedEvent(p *VariantPrice) *VariantPriceDeletedEvent {
	return &VariantPriceDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVariantPriceDeleted, AggregateTypeVariantPrice, p.ID),
		PriceID:         p.ID,
		VariantID:       p.VariantID,
		ChannelID:       p.ChannelID,
		CurrencyCode:    p.CurrencyCode,
		LastPrice:       p.Price,
	}
}
