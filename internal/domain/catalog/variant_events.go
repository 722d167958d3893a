package catalog

import (
	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
)

// Event types for the catalog domain
const (
	EventTypeVariantCreated = "catalog.variant.created"
)

// AggregateTypeVariant is the aggregate type used in variant events
const AggregateTypeVariant = "ProductVariant"

// VariantCreatedEvent is published when a new product variant is created
type VariantCreatedEvent struct {
	shared.BaseDomainEvent
	VariantID uuid.UUID `json:"variant_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
}

// NewVariantCreatedEvent creates a new VariantCreatedEvent
func NewVariantCreatedEvent(variant *ProductVariant) *VariantCreatedEvent {
	return &VariantCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVariantCreated, AggregateTypeVariant, variant.ID),
		VariantID:       variant.ID,
		SKU:             variant.SKU,
		Name:            variant.Name,
	}
}
