package ordering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// OrderState represents the lifecycle state of an order
type OrderState string

const (
	// OrderStateEmpty is an order with no lines and no currency
	OrderStateEmpty OrderState = "empty"
	// OrderStatePriced is an order whose currency is fixed by its lines
	OrderStatePriced OrderState = "priced"
)

// OrderLine is a single line of an in-progress order. Unit prices are
// denominated in the order's currency; the aggregate keeps them consistent.
type OrderLine struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	VariantID        uuid.UUID `gorm:"type:uuid;not null"`
	Quantity         int64     `gorm:"not null"`
	UnitPrice        int64     `gorm:"not null"`
	UnitPriceWithTax int64     `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "order_lines"
}

// Touch marks the line as modified
func (l *OrderLine) Touch() {
	l.UpdatedAt = time.Now()
}

// LineTotal returns quantity * unit price
func (l *OrderLine) LineTotal() int64 {
	return l.Quantity * l.UnitPrice
}

// LineTotalWithTax returns quantity * tax-inclusive unit price
func (l *OrderLine) LineTotalWithTax() int64 {
	return l.Quantity * l.UnitPriceWithTax
}

// LinePrice names a line and the unit prices it should carry after a
// currency switch.
type LinePrice struct {
	LineID           uuid.UUID
	UnitPrice        int64
	UnitPriceWithTax int64
}

// Order is the currency-consistency view of an in-progress order: all lines
// share one currency code at all times. The currency is set by the first
// line and changes only through SwitchCurrency, which replaces every line's
// prices in the same step.
type Order struct {
	shared.BaseAggregateRoot
	Code            string               `gorm:"type:varchar(50);not null;uniqueIndex"`
	ChannelID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	CurrencyCode    valueobject.Currency `gorm:"type:varchar(3)"`
	Lines           []OrderLine          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	SubTotal        int64                `gorm:"not null;default:0"`
	SubTotalWithTax int64                `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new empty order bound to a channel
func NewOrder(code string, channelID uuid.UUID) (*Order, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Order code cannot be empty")
	}
	if channelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CHANNEL", "Channel ID cannot be empty")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		ChannelID:         channelID,
		Lines:             make([]OrderLine, 0),
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// State returns the order's currency state
func (o *Order) State() OrderState {
	if o.CurrencyCode.IsZero() {
		return OrderStateEmpty
	}
	return OrderStatePriced
}

// AddLine appends a line priced in the given currency. The first line fixes
// the order's currency; later lines must match it - callers switch the order
// currency first when they need a different one.
func (o *Order) AddLine(variantID uuid.UUID, quantity int64, unitPrice, unitPriceWithTax valueobject.Money) (*OrderLine, error) {
	if variantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VARIANT", "Variant ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.Currency() != unitPriceWithTax.Currency() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price and tax-inclusive price must share a currency")
	}
	if o.State() == OrderStatePriced && unitPrice.Currency() != o.CurrencyCode {
		return nil, shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot add a line in %s to an order priced in %s", unitPrice.Currency(), o.CurrencyCode))
	}

	now := time.Now()
	line := OrderLine{
		ID:               uuid.New(),
		OrderID:          o.ID,
		VariantID:        variantID,
		Quantity:         quantity,
		UnitPrice:        unitPrice.Amount(),
		UnitPriceWithTax: unitPriceWithTax.Amount(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if o.State() == OrderStateEmpty {
		o.CurrencyCode = unitPrice.Currency()
	}

	o.Lines = append(o.Lines, line)
	o.recalculateTotals()
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderLineAddedEvent(o, &line))

	return &o.Lines[len(o.Lines)-1], nil
}

// AdjustLine changes a line's quantity and unit prices. Prices must be in
// the order's current currency.
func (o *Order) AdjustLine(lineID uuid.UUID, quantity int64, unitPrice, unitPriceWithTax valueobject.Money) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.Currency() != o.CurrencyCode {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot price a line in %s on an order priced in %s", unitPrice.Currency(), o.CurrencyCode))
	}

	line := o.findLine(lineID)
	if line == nil {
		return shared.ErrNotFound
	}

	line.Quantity = quantity
	line.UnitPrice = unitPrice.Amount()
	line.UnitPriceWithTax = unitPriceWithTax.Amount()
	line.Touch()

	o.recalculateTotals()
	o.Touch()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderLineAdjustedEvent(o, line))

	return nil
}

// SwitchCurrency re-prices every existing line into a new currency in one
// step. The reprice set must cover every line exactly; the aggregate is left
// untouched if it does not. This keeps the all-lines-one-currency invariant
// even mid-switch.
func (o *Order) SwitchCurrency(newCurrency valueobject.Currency, repriced []LinePrice) error {
	if !newCurrency.IsValid() {
		return shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Invalid currency code %q", newCurrency))
	}
	if newCurrency == o.CurrencyCode {
		return nil
	}

	byLine := make(map[uuid.UUID]LinePrice, len(repriced))
	for _, lp := range repriced {
		byLine[lp.LineID] = lp
	}
	for i := range o.Lines {
		if _, ok := byLine[o.Lines[i].ID]; !ok {
			return shared.NewDomainError("INVALID_STATE",
				fmt.Sprintf("Currency switch is missing a price for line %s", o.Lines[i].ID))
		}
	}

	previous := o.CurrencyCode
	now := time.Now()
	for i := range o.Lines {
		lp := byLine[o.Lines[i].ID]
		o.Lines[i].UnitPrice = lp.UnitPrice
		o.Lines[i].UnitPriceWithTax = lp.UnitPriceWithTax
		o.Lines[i].UpdatedAt = now
	}
	o.CurrencyCode = newCurrency
	o.recalculateTotals()
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderCurrencyChangedEvent(o, previous))

	return nil
}

// RemoveLine deletes a line from the order; no-op if absent
func (o *Order) RemoveLine(lineID uuid.UUID) {
	for i := range o.Lines {
		if o.Lines[i].ID == lineID {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
			o.recalculateTotals()
			o.Touch()
			o.IncrementVersion()
			return
		}
	}
}

// Line returns the line with the given ID, or nil
func (o *Order) Line(lineID uuid.UUID) *OrderLine {
	return o.findLine(lineID)
}

func (o *Order) findLine(lineID uuid.UUID) *OrderLine {
	for i := range o.Lines {
		if o.Lines[i].ID == lineID {
			return &o.Lines[i]
		}
	}
	return nil
}

func (o *Order) recalculateTotals() {
	var total, totalWithTax int64
	for i := range o.Lines {
		total += o.Lines[i].LineTotal()
		totalWithTax += o.Lines[i].LineTotalWithTax()
	}
	o.SubTotal = total
	o.SubTotalWithTax = totalWithTax
}
