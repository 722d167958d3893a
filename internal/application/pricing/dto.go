package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/pricing"
)

// UpsertPriceRequest sets the price for a (variant, channel, currency) triple
type UpsertPriceRequest struct {
	VariantID    uuid.UUID `json:"variant_id" binding:"required"`
	ChannelID    uuid.UUID `json:"channel_id" binding:"required"`
	CurrencyCode string    `json:"currency_code" binding:"required,len=3"`
	Price        int64     `json:"price" binding:"min=0"`
}

// DeletePriceRequest removes the price record for a triple
type DeletePriceRequest struct {
	VariantID    uuid.UUID `json:"variant_id" binding:"required"`
	ChannelID    uuid.UUID `json:"channel_id" binding:"required"`
	CurrencyCode string    `json:"currency_code" binding:"required,len=3"`
}

// PriceResponse is one stored price record
type PriceResponse struct {
	ID           uuid.UUID `json:"id"`
	VariantID    uuid.UUID `json:"variant_id"`
	ChannelID    uuid.UUID `json:"channel_id"`
	CurrencyCode string    `json:"currency_code"`
	Price        int64     `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpsertPriceResult is the outcome of a price mutation: the record written
// plus every sibling record the update strategy adjusted alongside it.
type UpsertPriceResult struct {
	Price        PriceResponse   `json:"price"`
	Synchronized []PriceResponse `json:"synchronized,omitempty"`
}

// DisplayPriceResponse is a resolved price ready for display
type DisplayPriceResponse struct {
	VariantID    uuid.UUID `json:"variant_id"`
	ChannelID    uuid.UUID `json:"channel_id"`
	CurrencyCode string    `json:"currency_code"`
	Price        int64     `json:"price"`
	PriceWithTax int64     `json:"price_with_tax"`
}

// ToPriceResponse converts a price aggregate to a response DTO
func ToPriceResponse(p *pricing.VariantPrice) PriceResponse {
	return PriceResponse{
		ID:           p.ID,
		VariantID:    p.VariantID,
		ChannelID:    p.ChannelID,
		CurrencyCode: p.CurrencyCode.String(),
		Price:        p.Price,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
