package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storecore/backend/internal/domain/catalog"
	"github.com/storecore/backend/internal/domain/channel"
	"github.com/storecore/backend/internal/domain/pricing"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/strategy"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// PriceService handles price record mutations and display price resolution.
// Every mutation is gated by the channel's currency configuration, runs the
// configured update strategy over the variant's full record set, and applies
// the strategy's adjustments in the same transaction as the trigger write.
type PriceService struct {
	priceRepo             pricing.VariantPriceRepository
	channelRepo           channel.ChannelRepository
	variantRepo           catalog.VariantRepository
	strategies            StrategyProvider
	uow                   shared.UnitOfWork
	cache                 PriceCache
	taxes                 TaxRateResolver
	eventPublisher        shared.EventPublisher
	updateStrategyName    string
	selectionStrategyName string
}

// NewPriceService creates a new PriceService using the registry defaults for
// both strategy types
func NewPriceService(
	priceRepo pricing.VariantPriceRepository,
	channelRepo channel.ChannelRepository,
	variantRepo catalog.VariantRepository,
	strategies StrategyProvider,
	uow shared.UnitOfWork,
) *PriceService {
	return &PriceService{
		priceRepo:   priceRepo,
		channelRepo: channelRepo,
		variantRepo: variantRepo,
		strategies:  strategies,
		uow:         uow,
	}
}

// SetStrategyNames overrides the default strategy selection. Empty names keep
// the registry defaults.
func (s *PriceService) SetStrategyNames(update, selection string) {
	s.updateStrategyName = update
	s.selectionStrategyName = selection
}

// SetCache sets the display price cache
func (s *PriceService) SetCache(cache PriceCache) {
	s.cache = cache
}

// SetTaxRateResolver sets the tax rate resolver for display prices
func (s *PriceService) SetTaxRateResolver(taxes TaxRateResolver) {
	s.taxes = taxes
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *PriceService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// UpsertPrice creates or updates the price record for a (variant, channel,
// currency) triple. Setting a price to its current value is a no-op that runs
// no strategy hooks. The write, the strategy hook and every adjustment it
// returns commit or roll back together.
func (s *PriceService) UpsertPrice(ctx context.Context, req UpsertPriceRequest) (*UpsertPriceResult, error) {
	currency := valueobject.ParseCurrency(req.CurrencyCode)
	if !currency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Invalid currency code %q", req.CurrencyCode))
	}
	if req.Price < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	ch, err := s.channelRepo.FindByID(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	if err := ch.AssertCurrencyAvailable(currency); err != nil {
		return nil, err
	}
	if _, err := s.variantRepo.FindByID(ctx, req.VariantID); err != nil {
		return nil, err
	}

	updateStrategy, err := s.strategies.GetUpdateStrategy(s.updateStrategyName)
	if err != nil {
		return nil, err
	}

	var result UpsertPriceResult
	var events []shared.DomainEvent
	mutated := false

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		record, findErr := s.priceRepo.FindByKey(ctx, req.VariantID, req.ChannelID, currency)

		var hook func(ctx context.Context, record strategy.PriceRecord, all []strategy.PriceRecord) ([]strategy.PriceAdjustment, error)
		switch {
		case findErr == nil:
			if record.Price == req.Price {
				result = UpsertPriceResult{Price: ToPriceResponse(record)}
				return nil
			}
			if err := record.UpdatePrice(req.Price); err != nil {
				return err
			}
			if err := s.priceRepo.Save(ctx, record); err != nil {
				return err
			}
			hook = updateStrategy.OnPriceUpdated
		case errors.Is(findErr, shared.ErrNotFound):
			record, err = pricing.NewVariantPrice(req.VariantID, req.ChannelID, currency, req.Price)
			if err != nil {
				return err
			}
			if err := s.priceRepo.Save(ctx, record); err != nil {
				return err
			}
			hook = updateStrategy.OnPriceCreated
		default:
			return findErr
		}

		siblings, err := s.priceRepo.FindByVariant(ctx, req.VariantID)
		if err != nil {
			return err
		}

		adjustments, err := hook(ctx, record.Snapshot(), pricing.Snapshots(siblings))
		if err != nil {
			return err
		}

		synchronized, syncEvents, err := s.applyAdjustments(ctx, record.ID, adjustments)
		if err != nil {
			return err
		}

		result = UpsertPriceResult{Price: ToPriceResponse(record), Synchronized: synchronized}
		events = append(record.GetDomainEvents(), syncEvents...)
		record.ClearDomainEvents()
		mutated = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if mutated {
		if s.cache != nil {
			s.cache.InvalidateVariant(ctx, req.VariantID)
		}
		s.publish(ctx, events)
	}

	return &result, nil
}

// DeletePrice removes the price record for a triple. The variant must exist;
// deleting an absent record of an existing variant is a no-op. Deletion never
// cascades with the built-in strategies, but the configured strategy's
// deletion hook still runs over the remaining records.
func (s *PriceService) DeletePrice(ctx context.Context, req DeletePriceRequest) error {
	currency := valueobject.ParseCurrency(req.CurrencyCode)
	if !currency.IsValid() {
		return shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Invalid currency code %q", req.CurrencyCode))
	}

	if _, err := s.variantRepo.FindByID(ctx, req.VariantID); err != nil {
		return err
	}

	updateStrategy, err := s.strategies.GetUpdateStrategy(s.updateStrategyName)
	if err != nil {
		return err
	}

	var events []shared.DomainEvent
	deleted := false

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		record, findErr := s.priceRepo.FindByKey(ctx, req.VariantID, req.ChannelID, currency)
		if errors.Is(findErr, shared.ErrNotFound) {
			return nil
		}
		if findErr != nil {
			return findErr
		}

		snapshot := record.Snapshot()
		events = append(events, pricing.NewVariantPriceDeletedEvent(record))

		if err := s.priceRepo.Delete(ctx, record.ID); err != nil {
			return err
		}

		remaining, err := s.priceRepo.FindByVariant(ctx, req.VariantID)
		if err != nil {
			return err
		}

		// The deletion hook sees the pre-deletion snapshot alongside the
		// surviving records.
		all := append(pricing.Snapshots(remaining), snapshot)
		adjustments, err := updateStrategy.OnPriceDeleted(ctx, snapshot, all)
		if err != nil {
			return err
		}

		_, syncEvents, err := s.applyAdjustments(ctx, snapshot.ID, adjustments)
		if err != nil {
			return err
		}

		events = append(events, syncEvents...)
		deleted = true
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		if s.cache != nil {
			s.cache.InvalidateVariant(ctx, req.VariantID)
		}
		s.publish(ctx, events)
	}

	return nil
}

// ResolveDisplayPrice resolves the price to show for a variant in a channel.
// The effective currency is the requested one, or the channel default when
// none is requested. There is no fallback across currencies.
func (s *PriceService) ResolveDisplayPrice(ctx context.Context, variantID, channelID uuid.UUID, requestedCurrency string) (*DisplayPriceResponse, error) {
	ch, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	requested := valueobject.ParseCurrency(requestedCurrency)
	effective := ch.EffectiveCurrency(requested)
	if err := ch.AssertCurrencyAvailable(effective); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, ok := s.cache.GetDisplayPrice(ctx, variantID, channelID, effective); ok {
			return cached, nil
		}
	}

	selection, err := s.strategies.GetSelectionStrategy(s.selectionStrategyName)
	if err != nil {
		return nil, err
	}

	candidates, err := s.priceRepo.FindByVariantAndChannel(ctx, variantID, channelID)
	if err != nil {
		return nil, err
	}

	selected, err := selection.SelectPrice(ctx, strategy.SelectionContext{
		VariantID:         variantID,
		ChannelID:         channelID,
		EffectiveCurrency: effective,
		Candidates:        pricing.Snapshots(candidates),
	})
	if err != nil {
		return nil, err
	}

	withTax := selected.Price
	if s.taxes != nil {
		rate, err := s.taxes.RateFor(ctx, channelID)
		if err != nil {
			return nil, err
		}
		money, err := valueobject.NewMoney(selected.Price, effective)
		if err != nil {
			return nil, err
		}
		withTax = money.ApplyRate(decimal.NewFromInt(1).Add(rate)).Amount()
	}

	resp := &DisplayPriceResponse{
		VariantID:    variantID,
		ChannelID:    channelID,
		CurrencyCode: effective.String(),
		Price:        selected.Price,
		PriceWithTax: withTax,
	}

	if s.cache != nil {
		s.cache.SetDisplayPrice(ctx, resp)
	}

	return resp, nil
}

// GetVariantPrices returns every price record stored for a variant
func (s *PriceService) GetVariantPrices(ctx context.Context, variantID uuid.UUID) ([]PriceResponse, error) {
	prices, err := s.priceRepo.FindByVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}

	responses := make([]PriceResponse, len(prices))
	for i := range prices {
		responses[i] = ToPriceResponse(&prices[i])
	}
	return responses, nil
}

// applyAdjustments writes the strategy's sibling adjustments. The trigger
// record is never adjusted through this path even if a strategy returns it.
func (s *PriceService) applyAdjustments(ctx context.Context, triggerID uuid.UUID, adjustments []strategy.PriceAdjustment) ([]PriceResponse, []shared.DomainEvent, error) {
	if len(adjustments) == 0 {
		return nil, nil, nil
	}

	synchronized := make([]PriceResponse, 0, len(adjustments))
	events := make([]shared.DomainEvent, 0, len(adjustments))
	for _, adj := range adjustments {
		if adj.PriceID == triggerID {
			continue
		}

		sibling, err := s.priceRepo.FindByID(ctx, adj.PriceID)
		if err != nil {
			return nil, nil, err
		}
		if err := sibling.UpdatePrice(adj.Price); err != nil {
			return nil, nil, err
		}
		if err := s.priceRepo.Save(ctx, sibling); err != nil {
			return nil, nil, err
		}

		synchronized = append(synchronized, ToPriceResponse(sibling))
		events = append(events, sibling.GetDomainEvents()...)
		sibling.ClearDomainEvents()
	}
	return synchronized, events, nil
}

func (s *PriceService) publish(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	// Event delivery failures do not fail the mutation; the write is already
	// committed.
	_ = s.eventPublisher.Publish(ctx, events...)
}
