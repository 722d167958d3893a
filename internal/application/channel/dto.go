package channel

import (
	"time"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/channel"
)

// CreateChannelRequest creates a new sales channel
type CreateChannelRequest struct {
	Code                   string   `json:"code" binding:"required,max=50"`
	Token                  string   `json:"token" binding:"required,max=100"`
	DefaultCurrencyCode    string   `json:"default_currency_code" binding:"required,len=3"`
	AvailableCurrencyCodes []string `json:"available_currency_codes"`
}

// UpdateCurrenciesRequest replaces a channel's currency configuration
type UpdateCurrenciesRequest struct {
	ChannelID              uuid.UUID `json:"channel_id" binding:"required"`
	DefaultCurrencyCode    string    `json:"default_currency_code" binding:"required,len=3"`
	AvailableCurrencyCodes []string  `json:"available_currency_codes"`
}

// AssignVariantRequest makes a variant sellable in a channel by seeding a
// price record for it. Price and CurrencyCode are optional: the currency
// defaults to the channel default, and the amount is derived from the
// variant's existing records when not given.
type AssignVariantRequest struct {
	VariantID    uuid.UUID `json:"variant_id" binding:"required"`
	ChannelID    uuid.UUID `json:"channel_id" binding:"required"`
	CurrencyCode string    `json:"currency_code"`
	Price        *int64    `json:"price"`
}

// ChannelResponse is the channel view returned by the service
type ChannelResponse struct {
	ID                     uuid.UUID `json:"id"`
	Code                   string    `json:"code"`
	Token                  string    `json:"token"`
	DefaultCurrencyCode    string    `json:"default_currency_code"`
	AvailableCurrencyCodes []string  `json:"available_currency_codes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ToChannelResponse converts a channel aggregate to a response DTO
func ToChannelResponse(ch *channel.Channel) ChannelResponse {
	currencies := make([]string, len(ch.AvailableCurrencyCodes))
	for i, code := range ch.AvailableCurrencyCodes {
		currencies[i] = code.String()
	}
	return ChannelResponse{
		ID:                     ch.ID,
		Code:                   ch.Code,
		Token:                  ch.Token,
		DefaultCurrencyCode:    ch.DefaultCurrencyCode.String(),
		AvailableCurrencyCodes: currencies,
		CreatedAt:              ch.CreatedAt,
		UpdatedAt:              ch.UpdatedAt,
	}
}
