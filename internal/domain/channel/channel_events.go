package channel

import (
	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// Event types for the channel domain
const (
	EventTypeChannelCreated           = "channel.created"
	EventTypeChannelCurrenciesChanged = "channel.currencies_changed"
)

// AggregateTypeChannel is the aggregate type used in channel events
const AggregateTypeChannel = "Channel"

// ChannelCreatedEvent is published when a new channel is created
type ChannelCreatedEvent struct {
	shared.BaseDomainEvent
	ChannelID           uuid.UUID            `json:"channel_id"`
	Code                string               `json:"code"`
	DefaultCurrencyCode valueobject.Currency `json:"default_currency_code"`
}

// NewChannelCreatedEvent creates a new ChannelCreatedEvent
func NewChannelCreatedEvent(ch *Channel) *ChannelCreatedEvent {
	return &ChannelCreatedEvent{
		BaseDomainEvent:     shared.NewBaseDomainEvent(EventTypeChannelCreated, AggregateTypeChannel, ch.ID),
		ChannelID:           ch.ID,
		Code:                ch.Code,
		DefaultCurrencyCode: ch.DefaultCurrencyCode,
	}
}

// ChannelCurrenciesChangedEvent is published when a channel's currency
// configuration changes
type ChannelCurrenciesChangedEvent struct {
	shared.BaseDomainEvent
	ChannelID              uuid.UUID              `json:"channel_id"`
	DefaultCurrencyCode    valueobject.Currency   `json:"default_currency_code"`
	AvailableCurrencyCodes []valueobject.Currency `json:"available_currency_codes"`
}

// NewChannelCurrenciesChangedEvent creates a new ChannelCurrenciesChangedEvent
func NewChannelCurrenciesChangedEvent(ch *Channel) *ChannelCurrenciesChangedEvent {
	return &ChannelCurrenciesChangedEvent{
		BaseDomainEvent:        shared.NewBaseDomainEvent(EventTypeChannelCurrenciesChanged, AggregateTypeChannel, ch.ID),
		ChannelID:              ch.ID,
		DefaultCurrencyCode:    ch.DefaultCurrencyCode,
		AvailableCurrencyCodes: ch.AvailableCurrencyCodes,
	}
}
