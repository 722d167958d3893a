package ordering

import (
	"context"
	"strings"

	"github.com/google/uuid"
	appricing "github.com/storecore/backend/internal/application/pricing"
	"github.com/storecore/backend/internal/domain/channel"
	"github.com/storecore/backend/internal/domain/ordering"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

// PriceResolver resolves the display price of a variant in a channel and
// currency. Resolution failures surface as domain errors and abort the order
// mutation that requested them.
type PriceResolver interface {
	ResolveDisplayPrice(ctx context.Context, variantID, channelID uuid.UUID, requestedCurrency string) (*appricing.DisplayPriceResponse, error)
}

// OrderService handles order business operations. It is the enforcement point
// for order currency consistency: every line carries the order's single
// currency, and a currency change re-prices all lines atomically before any
// new line is added.
type OrderService struct {
	orderRepo      ordering.OrderRepository
	channelRepo    channel.ChannelRepository
	prices         PriceResolver
	uow            shared.UnitOfWork
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.OrderRepository,
	channelRepo channel.ChannelRepository,
	prices PriceResolver,
	uow shared.UnitOfWork,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		channelRepo: channelRepo,
		prices:      prices,
		uow:         uow,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateOrder creates a new empty order in a channel. The order has no
// currency until its first line is added.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.channelRepo.FindByID(ctx, req.ChannelID); err != nil {
		return nil, err
	}

	code := req.Code
	if code == "" {
		code = generateOrderCode()
	}

	order, err := ordering.NewOrder(code, req.ChannelID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// GetOrderByCode retrieves an order by its code
func (s *OrderService) GetOrderByCode(ctx context.Context, code string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// ListOrders retrieves orders matching the filter
func (s *OrderService) ListOrders(ctx context.Context, filter shared.Filter) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, nil
}

// AddLine adds a variant to an order. The first line fixes the order's
// currency. Adding a line in a different currency first re-prices every
// existing line into that currency; if any line cannot be priced in it, the
// whole operation fails and the order is unchanged.
func (s *OrderService) AddLine(ctx context.Context, req AddOrderLineRequest) (*OrderResponse, error) {
	var response OrderResponse

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, req.OrderID)
		if err != nil {
			return err
		}

		ch, err := s.channelRepo.FindByID(ctx, order.ChannelID)
		if err != nil {
			return err
		}

		requested := valueobject.ParseCurrency(req.CurrencyCode)
		if requested.IsZero() && order.State() == ordering.OrderStatePriced {
			requested = order.CurrencyCode
		}
		effective := ch.EffectiveCurrency(requested)
		if err := ch.AssertCurrencyAvailable(effective); err != nil {
			return err
		}

		if order.State() == ordering.OrderStatePriced && effective != order.CurrencyCode {
			if err := s.switchOrderCurrency(ctx, order, effective); err != nil {
				return err
			}
		}

		price, err := s.prices.ResolveDisplayPrice(ctx, req.VariantID, order.ChannelID, effective.String())
		if err != nil {
			return err
		}

		unitPrice, err := valueobject.NewMoney(price.Price, effective)
		if err != nil {
			return err
		}
		unitPriceWithTax, err := valueobject.NewMoney(price.PriceWithTax, effective)
		if err != nil {
			return err
		}

		if _, err := order.AddLine(req.VariantID, req.Quantity, unitPrice, unitPriceWithTax); err != nil {
			return err
		}

		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}

		s.publish(ctx, order)
		response = ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// AdjustLine changes a line's quantity. The unit price is re-resolved in the
// order's current currency so later price updates are reflected. Requesting a
// different currency first re-prices every existing line into it, exactly as
// AddLine does; if any line cannot be priced in it, the whole operation fails
// and the order is unchanged.
func (s *OrderService) AdjustLine(ctx context.Context, req AdjustOrderLineRequest) (*OrderResponse, error) {
	var response OrderResponse

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, req.OrderID)
		if err != nil {
			return err
		}

		line := order.Line(req.LineID)
		if line == nil {
			return shared.ErrNotFound
		}

		ch, err := s.channelRepo.FindByID(ctx, order.ChannelID)
		if err != nil {
			return err
		}

		requested := valueobject.ParseCurrency(req.CurrencyCode)
		if requested.IsZero() {
			requested = order.CurrencyCode
		}
		effective := ch.EffectiveCurrency(requested)
		if err := ch.AssertCurrencyAvailable(effective); err != nil {
			return err
		}

		if effective != order.CurrencyCode {
			if err := s.switchOrderCurrency(ctx, order, effective); err != nil {
				return err
			}
		}

		price, err := s.prices.ResolveDisplayPrice(ctx, line.VariantID, order.ChannelID, effective.String())
		if err != nil {
			return err
		}

		unitPrice, err := valueobject.NewMoney(price.Price, effective)
		if err != nil {
			return err
		}
		unitPriceWithTax, err := valueobject.NewMoney(price.PriceWithTax, effective)
		if err != nil {
			return err
		}

		if err := order.AdjustLine(req.LineID, req.Quantity, unitPrice, unitPriceWithTax); err != nil {
			return err
		}

		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}

		s.publish(ctx, order)
		response = ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// RemoveLine deletes a line from an order
func (s *OrderService) RemoveLine(ctx context.Context, orderID, lineID uuid.UUID) (*OrderResponse, error) {
	var response OrderResponse

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		order.RemoveLine(lineID)

		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}

		response = ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// SwitchCurrency re-prices an entire order into a new currency. The currency
// must be available in the order's channel and every line must have a price
// in it; otherwise the order is left unchanged.
func (s *OrderService) SwitchCurrency(ctx context.Context, req SwitchCurrencyRequest) (*OrderResponse, error) {
	var response OrderResponse

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, req.OrderID)
		if err != nil {
			return err
		}

		ch, err := s.channelRepo.FindByID(ctx, order.ChannelID)
		if err != nil {
			return err
		}

		target := valueobject.ParseCurrency(req.CurrencyCode)
		if err := ch.AssertCurrencyAvailable(target); err != nil {
			return err
		}

		if err := s.switchOrderCurrency(ctx, order, target); err != nil {
			return err
		}

		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}

		s.publish(ctx, order)
		response = ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// switchOrderCurrency resolves a new price for every existing line before
// mutating the aggregate. A line without a price in the target currency fails
// the whole switch.
func (s *OrderService) switchOrderCurrency(ctx context.Context, order *ordering.Order, target valueobject.Currency) error {
	repriced := make([]ordering.LinePrice, 0, len(order.Lines))
	for i := range order.Lines {
		line := &order.Lines[i]
		price, err := s.prices.ResolveDisplayPrice(ctx, line.VariantID, order.ChannelID, target.String())
		if err != nil {
			return err
		}
		repriced = append(repriced, ordering.LinePrice{
			LineID:           line.ID,
			UnitPrice:        price.Price,
			UnitPriceWithTax: price.PriceWithTax,
		})
	}
	return order.SwitchCurrency(target, repriced)
}

func (s *OrderService) publish(ctx context.Context, order *ordering.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	order.ClearDomainEvents()
}

func generateOrderCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:12])
}
