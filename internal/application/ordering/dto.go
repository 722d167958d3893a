package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/ordering"
)

// CreateOrderRequest starts a new empty order in a channel
type CreateOrderRequest struct {
	ChannelID uuid.UUID `json:"channel_id" binding:"required"`
	Code      string    `json:"code"`
}

// AddOrderLineRequest adds a variant to an order. CurrencyCode is optional;
// when empty the order's current currency (or the channel default for an
// empty order) is used.
type AddOrderLineRequest struct {
	OrderID      uuid.UUID `json:"order_id" binding:"required"`
	VariantID    uuid.UUID `json:"variant_id" binding:"required"`
	Quantity     int64     `json:"quantity" binding:"required,min=1"`
	CurrencyCode string    `json:"currency_code"`
}

// AdjustOrderLineRequest changes the quantity of an existing line.
// CurrencyCode is optional; when empty the order's current currency is kept,
// otherwise the whole order is re-priced into it first.
type AdjustOrderLineRequest struct {
	OrderID      uuid.UUID `json:"order_id" binding:"required"`
	LineID       uuid.UUID `json:"line_id" binding:"required"`
	Quantity     int64     `json:"quantity" binding:"required,min=1"`
	CurrencyCode string    `json:"currency_code"`
}

// SwitchCurrencyRequest re-prices an entire order into a new currency
type SwitchCurrencyRequest struct {
	OrderID      uuid.UUID `json:"order_id" binding:"required"`
	CurrencyCode string    `json:"currency_code" binding:"required,len=3"`
}

// OrderLineResponse is one order line
type OrderLineResponse struct {
	ID               uuid.UUID `json:"id"`
	VariantID        uuid.UUID `json:"variant_id"`
	Quantity         int64     `json:"quantity"`
	UnitPrice        int64     `json:"unit_price"`
	UnitPriceWithTax int64     `json:"unit_price_with_tax"`
	LineTotal        int64     `json:"line_total"`
	LineTotalWithTax int64     `json:"line_total_with_tax"`
}

// OrderResponse is the full order view
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	Code            string              `json:"code"`
	ChannelID       uuid.UUID           `json:"channel_id"`
	CurrencyCode    string              `json:"currency_code,omitempty"`
	State           string              `json:"state"`
	Lines           []OrderLineResponse `json:"lines"`
	SubTotal        int64               `json:"sub_total"`
	SubTotalWithTax int64               `json:"sub_total_with_tax"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ToOrderResponse converts an order aggregate to a response DTO
func ToOrderResponse(o *ordering.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i := range o.Lines {
		l := &o.Lines[i]
		lines[i] = OrderLineResponse{
			ID:               l.ID,
			VariantID:        l.VariantID,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			UnitPriceWithTax: l.UnitPriceWithTax,
			LineTotal:        l.LineTotal(),
			LineTotalWithTax: l.LineTotalWithTax(),
		}
	}
	return OrderResponse{
		ID:              o.ID,
		Code:            o.Code,
		ChannelID:       o.ChannelID,
		CurrencyCode:    o.CurrencyCode.String(),
		State:           string(o.State()),
		Lines:           lines,
		SubTotal:        o.SubTotal,
		SubTotalWithTax: o.SubTotalWithTax,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
