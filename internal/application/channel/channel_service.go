package channel

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	appricing "github.com/storecore/backend/internal/application/pricing"
	"github.com/storecore/backend/internal/domain/catalog"
	"github.com/storecore/backend/internal/domain/channel"
	"github.com/storecore/backend/internal/domain/pricing"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// PriceUpserter writes price records through the pricing service so that
// update strategies run for seeded prices too.
type PriceUpserter interface {
	UpsertPrice(ctx context.Context, req appricing.UpsertPriceRequest) (*appricing.UpsertPriceResult, error)
}

// ChannelService handles channel configuration and variant assignment
type ChannelService struct {
	channelRepo    channel.ChannelRepository
	variantRepo    catalog.VariantRepository
	priceRepo      pricing.VariantPriceRepository
	prices         PriceUpserter
	eventPublisher shared.EventPublisher
}

// NewChannelService creates a new ChannelService
func NewChannelService(
	channelRepo channel.ChannelRepository,
	variantRepo catalog.VariantRepository,
	priceRepo pricing.VariantPriceRepository,
	prices PriceUpserter,
) *ChannelService {
	return &ChannelService{
		channelRepo: channelRepo,
		variantRepo: variantRepo,
		priceRepo:   priceRepo,
		prices:      prices,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ChannelService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateChannel creates a new channel with its currency configuration
func (s *ChannelService) CreateChannel(ctx context.Context, req CreateChannelRequest) (*ChannelResponse, error) {
	if _, err := s.channelRepo.FindByCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("%w: channel code '%s' is taken", shared.ErrAlreadyExists, req.Code)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	available := make([]valueobject.Currency, len(req.AvailableCurrencyCodes))
	for i, code := range req.AvailableCurrencyCodes {
		available[i] = valueobject.ParseCurrency(code)
	}

	ch, err := channel.NewChannel(req.Code, req.Token, valueobject.ParseCurrency(req.DefaultCurrencyCode), available)
	if err != nil {
		return nil, err
	}

	if err := s.channelRepo.Save(ctx, ch); err != nil {
		return nil, err
	}

	s.publish(ctx, ch)

	response := ToChannelResponse(ch)
	return &response, nil
}

// GetChannel retrieves a channel by ID
func (s *ChannelService) GetChannel(ctx context.Context, channelID uuid.UUID) (*ChannelResponse, error) {
	ch, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	response := ToChannelResponse(ch)
	return &response, nil
}

// GetChannelByToken retrieves a channel by its API token
func (s *ChannelService) GetChannelByToken(ctx context.Context, token string) (*ChannelResponse, error) {
	ch, err := s.channelRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	response := ToChannelResponse(ch)
	return &response, nil
}

// ListChannels retrieves channels matching the filter
func (s *ChannelService) ListChannels(ctx context.Context, filter shared.Filter) ([]ChannelResponse, error) {
	channels, err := s.channelRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ChannelResponse, len(channels))
	for i := range channels {
		responses[i] = ToChannelResponse(&channels[i])
	}
	return responses, nil
}

// UpdateCurrencies replaces a channel's currency configuration. Shrinking the
// available set leaves existing price records in removed currencies in place;
// they become unreachable for new reads and writes.
func (s *ChannelService) UpdateCurrencies(ctx context.Context, req UpdateCurrenciesRequest) (*ChannelResponse, error) {
	ch, err := s.channelRepo.FindByID(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}

	available := make([]valueobject.Currency, len(req.AvailableCurrencyCodes))
	for i, code := range req.AvailableCurrencyCodes {
		available[i] = valueobject.ParseCurrency(code)
	}

	if err := ch.SetCurrencies(valueobject.ParseCurrency(req.DefaultCurrencyCode), available); err != nil {
		return nil, err
	}

	if err := s.channelRepo.Save(ctx, ch); err != nil {
		return nil, err
	}

	s.publish(ctx, ch)

	response := ToChannelResponse(ch)
	return &response, nil
}

// DeleteChannel removes a channel
func (s *ChannelService) DeleteChannel(ctx context.Context, channelID uuid.UUID) error {
	return s.channelRepo.Delete(ctx, channelID)
}

// AssignVariant makes a variant sellable in a channel by writing a price
// record for it. The seed amount is, in order of preference: the explicit
// request price, the variant's price in the same currency from another
// channel, or the amount of the variant's first existing record.
func (s *ChannelService) AssignVariant(ctx context.Context, req AssignVariantRequest) (*appricing.UpsertPriceResult, error) {
	ch, err := s.channelRepo.FindByID(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	if _, err := s.variantRepo.FindByID(ctx, req.VariantID); err != nil {
		return nil, err
	}

	currency := ch.EffectiveCurrency(valueobject.ParseCurrency(req.CurrencyCode))
	if err := ch.AssertCurrencyAvailable(currency); err != nil {
		return nil, err
	}

	// Already assigned in this currency: keep the existing record
	if existing, err := s.priceRepo.FindByKey(ctx, req.VariantID, req.ChannelID, currency); err == nil {
		return &appricing.UpsertPriceResult{Price: appricing.ToPriceResponse(existing)}, nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	amount, err := s.seedAmount(ctx, req, currency)
	if err != nil {
		return nil, err
	}

	return s.prices.UpsertPrice(ctx, appricing.UpsertPriceRequest{
		VariantID:    req.VariantID,
		ChannelID:    req.ChannelID,
		CurrencyCode: currency.String(),
		Price:        amount,
	})
}

func (s *ChannelService) seedAmount(ctx context.Context, req AssignVariantRequest, currency valueobject.Currency) (int64, error) {
	if req.Price != nil {
		return *req.Price, nil
	}

	records, err := s.priceRepo.FindByVariant(ctx, req.VariantID)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, shared.NewDomainError("NO_PRICE_TO_SEED",
			"Variant has no price records to derive an assignment price from")
	}

	for i := range records {
		if records[i].CurrencyCode == currency {
			return records[i].Price, nil
		}
	}
	return records[0].Price, nil
}

func (s *ChannelService) publish(ctx context.Context, ch *channel.Channel) {
	if s.eventPublisher == nil {
		return
	}
	events := ch.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	ch.ClearDomainEvents()
}
