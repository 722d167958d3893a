package pricing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/strategy"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// VariantPrice is one stored price for a (variant, channel, currency) triple.
// Amounts are integer minor currency units. At most one row exists per
// triple; the composite unique index enforces this at the storage layer.
type VariantPrice struct {
	shared.BaseAggregateRoot
	VariantID    uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_variant_channel_currency,priority:1"`
	ChannelID    uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_variant_channel_currency,priority:2"`
	CurrencyCode valueobject.Currency `gorm:"type:varchar(3);not null;uniqueIndex:idx_variant_channel_currency,priority:3"`
	Price        int64                `gorm:"not null"`
}

// TableName returns the table name for GORM
func (VariantPrice) TableName() string {
	return "product_variant_prices"
}

// NewVariantPrice creates a new price record
func NewVariantPrice(variantID, channelID uuid.UUID, currencyCode valueobject.Currency, price int64) (*VariantPrice, error) {
	if variantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VARIANT", "Variant ID cannot be empty")
	}
	if channelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CHANNEL", "Channel ID cannot be empty")
	}
	if !currencyCode.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Invalid currency code %q", currencyCode))
	}
	if price < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	vp := &VariantPrice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VariantID:         variantID,
		ChannelID:         channelID,
		CurrencyCode:      currencyCode,
		Price:             price,
	}

	vp.AddDomainEvent(NewVariantPriceCreatedEvent(vp))

	return vp, nil
}

// UpdatePrice sets a new amount for the record
func (p *VariantPrice) UpdatePrice(price int64) error {
	if price < 0 {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	previous := p.Price
	p.Price = price
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewVariantPriceUpdatedEvent(p, previous))

	return nil
}

// Money returns the price as a Money value object
func (p *VariantPrice) Money() valueobject.Money {
	return valueobject.MustNewMoney(p.Price, p.CurrencyCode)
}

// Snapshot returns a plain record for strategy hooks
func (p *VariantPrice) Snapshot() strategy.PriceRecord {
	return strategy.PriceRecord{
		ID:           p.ID,
		VariantID:    p.VariantID,
		ChannelID:    p.ChannelID,
		CurrencyCode: p.CurrencyCode,
		Price:        p.Price,
	}
}

// Snapshots converts a slice of price records to strategy snapshots
func Snapshots(prices []VariantPrice) []strategy.PriceRecord {
	records := make([]strategy.PriceRecord, len(prices))
	for i := range prices {
		records[i] = prices[i].Snapshot()
	}
	return records
}
