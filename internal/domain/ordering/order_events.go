package ordering

import (
	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// Event types for the ordering domain
const (
	EventTypeOrderCreated         = "ordering.order.created"
	EventTypeOrderLineAdded       = "ordering.order.line_added"
	EventTypeOrderLineAdjusted    = "ordering.order.line_adjusted"
	EventTypeOrderCurrencyChanged = "ordering.order.currency_changed"
)

// AggregateTypeOrder is the aggregate type used in order events
const AggregateTypeOrder = "Order"

// OrderCreatedEvent is published when a new order is created
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID   uuid.UUID `json:"order_id"`
	Code      string    `json:"code"`
	ChannelID uuid.UUID `json:"channel_id"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		Code:            o.Code,
		ChannelID:       o.ChannelID,
	}
}

// OrderLineAddedEvent is published when a line is added to an order
type OrderLineAddedEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID            `json:"order_id"`
	LineID       uuid.UUID            `json:"line_id"`
	VariantID    uuid.UUID            `json:"variant_id"`
	Quantity     int64                `json:"quantity"`
	UnitPrice    int64                `json:"unit_price"`
	CurrencyCode valueobject.Currency `json:"currency_code"`
}

// NewOrderLineAddedEvent creates a new OrderLineAddedEvent
func NewOrderLineAddedEvent(o *Order, line *OrderLine) *OrderLineAddedEvent {
	return &OrderLineAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderLineAdded, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		LineID:          line.ID,
		VariantID:       line.VariantID,
		Quantity:        line.Quantity,
		UnitPrice:       line.UnitPrice,
		CurrencyCode:    o.CurrencyCode,
	}
}

// OrderLineAdjustedEvent is published when a line's quantity or price changes
type OrderLineAdjustedEvent struct {
	shared.BaseDomainEvent
	OrderID   uuid.UUID `json:"order_id"`
	LineID    uuid.UUID `json:"line_id"`
	Quantity  int64     `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
}

// NewOrderLineAdjustedEvent creates a new OrderLineAdjustedEvent
func NewOrderLineAdjustedEvent(o *Order, line *OrderLine) *OrderLineAdjustedEvent {
	return &OrderLineAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderLineAdjusted, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		LineID:          line.ID,
		Quantity:        line.Quantity,
		UnitPrice:       line.UnitPrice,
	}
}

// OrderCurrencyChangedEvent is published when an order switches currency and
// all its lines are re-priced
type OrderCurrencyChangedEvent struct {
	shared.BaseDomainEvent
	OrderID          uuid.UUID            `json:"order_id"`
	PreviousCurrency valueobject.Currency `json:"previous_currency"`
	NewCurrency      valueobject.Currency `json:"new_currency"`
}

// NewOrderCurrencyChangedEvent creates a new OrderCurrencyChangedEvent
func NewOrderCurrencyChangedEvent(o *Order, previous valueobject.Currency) *OrderCurrencyChangedEvent {
	return &OrderCurrencyChangedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeOrderCurrencyChanged, AggregateTypeOrder, o.ID),
		OrderID:          o.ID,
		PreviousCurrency: previous,
		NewCurrency:      o.CurrencyCode,
	}
}
