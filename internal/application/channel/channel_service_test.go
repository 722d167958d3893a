package channel

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	appricing "github.com/storecore/backend/internal/application/pricing"
	"github.com/storecore/backend/internal/domain/catalog"
	"github.com/storecore/backend/internal/domain/channel"
	"github.com/storecore/backend/internal/domain/pricing"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
	infrastrategy "github.com/storecore/backend/internal/infrastructure/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MemoryChannelRepository is an in-memory ChannelRepository for service tests
type MemoryChannelRepository struct {
	mu       sync.Mutex
	channels map[uuid.UUID]channel.Channel
}

func NewMemoryChannelRepository() *MemoryChannelRepository {
	return &MemoryChannelRepository{channels: make(map[uuid.UUID]channel.Channel)}
}

func (r *MemoryChannelRepository) FindByID(_ context.Context, id uuid.UUID) (*channel.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch, ok := r.channels[id]; ok {
		return &ch, nil
	}
	return nil, shared.ErrNotFound
}

func (r *MemoryChannelRepository) FindByCode(_ context.Context, code string) (*channel.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.channels {
		if ch.Code == code {
			return &ch, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *MemoryChannelRepository) FindByToken(_ context.Context, token string) (*channel.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.channels {
		if ch.Token == token {
			return &ch, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *MemoryChannelRepository) FindAll(_ context.Context, _ shared.Filter) ([]channel.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]channel.Channel, 0, len(r.channels))
	for _, ch := range r.channels {
		result = append(result, ch)
	}
	return result, nil
}

func (r *MemoryChannelRepository) Save(_ context.Context, ch *channel.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channels[ch.ID] = *ch
	return nil
}

func (r *MemoryChannelRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.channels, id)
	return nil
}

// MemoryPriceRepository is an in-memory VariantPriceRepository for service tests
type MemoryPriceRepository struct {
	mu      sync.Mutex
	records map[uuid.UUID]pricing.VariantPrice
}

func NewMemoryPriceRepository() *MemoryPriceRepository {
	return &MemoryPriceRepository{records: make(map[uuid.UUID]pricing.VariantPrice)}
}

func (r *MemoryPriceRepository) FindByID(_ context.Context, id uuid.UUID) (*pricing.VariantPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.records[id]; ok {
		return &record, nil
	}
	return nil, shared.ErrNotFound
}

func (r *MemoryPriceRepository) FindByKey(_ context.Context, variantID, channelID uuid.UUID, currencyCode valueobject.Currency) (*pricing.VariantPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.VariantID == variantID && record.ChannelID == channelID && record.CurrencyCode == currencyCode {
			return &record, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *MemoryPriceRepository) FindByVariant(_ context.Context, variantID uuid.UUID) ([]pricing.VariantPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []pricing.VariantPrice
	for _, record := range r.records {
		if record.VariantID == variantID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *MemoryPriceRepository) FindByVariantAndChannel(_ context.Context, variantID, channelID uuid.UUID) ([]pricing.VariantPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []pricing.VariantPrice
	for _, record := range r.records {
		if record.VariantID == variantID && record.ChannelID == channelID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *MemoryPriceRepository) Save(_ context.Context, price *pricing.VariantPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[price.ID] = *price
	return nil
}

func (r *MemoryPriceRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *MemoryPriceRepository) DeleteByKey(_ context.Context, variantID, channelID uuid.UUID, currencyCode valueobject.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, record := range r.records {
		if record.VariantID == variantID && record.ChannelID == channelID && record.CurrencyCode == currencyCode {
			delete(r.records, id)
			return nil
		}
	}
	return nil
}

// MockVariantRepository is a mock implementation of VariantRepository
type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) FindBySKU(ctx context.Context, sku string) (*catalog.ProductVariant, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductVariant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) Save(ctx context.Context, variant *catalog.ProductVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockVariantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVariantRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

type channelFixture struct {
	service     *ChannelService
	channelRepo *MemoryChannelRepository
	priceRepo   *MemoryPriceRepository
	variant     *catalog.ProductVariant
}

func newChannelFixture(t *testing.T) *channelFixture {
	t.Helper()

	variant, err := catalog.NewProductVariant("SHIRT-RED-L", "Red Shirt L")
	require.NoError(t, err)

	channelRepo := NewMemoryChannelRepository()
	priceRepo := NewMemoryPriceRepository()
	variantRepo := new(MockVariantRepository)
	variantRepo.On("FindByID", mock.Anything, variant.ID).Return(variant, nil)

	registry, err := infrastrategy.NewRegistryWithDefaults()
	require.NoError(t, err)

	priceService := appricing.NewPriceService(priceRepo, channelRepo, variantRepo, registry, shared.NoOpUnitOfWork{})
	service := NewChannelService(channelRepo, variantRepo, priceRepo, priceService)

	return &channelFixture{
		service:     service,
		channelRepo: channelRepo,
		priceRepo:   priceRepo,
		variant:     variant,
	}
}

func (f *channelFixture) createChannel(t *testing.T, code, defaultCurrency string, available ...string) *ChannelResponse {
	t.Helper()
	ch, err := f.service.CreateChannel(context.Background(), CreateChannelRequest{
		Code:                   code,
		Token:                  code + "-token",
		DefaultCurrencyCode:    defaultCurrency,
		AvailableCurrencyCodes: available,
	})
	require.NoError(t, err)
	return ch
}

func TestChannelServiceCreateChannel(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a channel with its currency set", func(t *testing.T) {
		f := newChannelFixture(t)

		ch := f.createChannel(t, "default", "USD", "GBP", "EUR")
		assert.Equal(t, "USD", ch.DefaultCurrencyCode)
		assert.ElementsMatch(t, []string{"USD", "GBP", "EUR"}, ch.AvailableCurrencyCodes)
	})

	t.Run("rejects a duplicate code", func(t *testing.T) {
		f := newChannelFixture(t)
		f.createChannel(t, "default", "USD")

		_, err := f.service.CreateChannel(ctx, CreateChannelRequest{
			Code: "default", Token: "other-token", DefaultCurrencyCode: "EUR",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("looks up by token", func(t *testing.T) {
		f := newChannelFixture(t)
		created := f.createChannel(t, "default", "USD")

		found, err := f.service.GetChannelByToken(ctx, "default-token")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})
}

func TestChannelServiceUpdateCurrencies(t *testing.T) {
	ctx := context.Background()
	f := newChannelFixture(t)
	created := f.createChannel(t, "default", "USD", "GBP")

	updated, err := f.service.UpdateCurrencies(ctx, UpdateCurrenciesRequest{
		ChannelID:              created.ID,
		DefaultCurrencyCode:    "EUR",
		AvailableCurrencyCodes: []string{"EUR", "GBP"},
	})
	require.NoError(t, err)

	assert.Equal(t, "EUR", updated.DefaultCurrencyCode)
	assert.ElementsMatch(t, []string{"EUR", "GBP"}, updated.AvailableCurrencyCodes)
}

func TestChannelServiceAssignVariant(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds a record from an explicit price", func(t *testing.T) {
		f := newChannelFixture(t)
		ch := f.createChannel(t, "default", "USD")

		price := int64(1500)
		result, err := f.service.AssignVariant(ctx, AssignVariantRequest{
			VariantID: f.variant.ID, ChannelID: ch.ID, Price: &price,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1500), result.Price.Price)
		assert.Equal(t, "USD", result.Price.CurrencyCode)
	})

	t.Run("derives the amount from a same-currency record in another channel", func(t *testing.T) {
		f := newChannelFixture(t)
		source := f.createChannel(t, "default", "USD", "GBP")
		target := f.createChannel(t, "uk", "GBP")

		seed := int64(900)
		_, err := f.service.AssignVariant(ctx, AssignVariantRequest{
			VariantID: f.variant.ID, ChannelID: source.ID, CurrencyCode: "GBP", Price: &seed,
		})
		require.NoError(t, err)

		result, err := f.service.AssignVariant(ctx, AssignVariantRequest{
			VariantID: f.variant.ID, ChannelID: target.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(900), result.Price.Price)
		assert.Equal(t, "GBP", result.Price.CurrencyCode)
	})

	t.Run("falls back to the first record when no currency matches", func(t *testing.T) {
		f := newChannelFixture(t)
		source := f.createChannel(t, "default", "USD")
		target := f.createChannel(t, "uk", "GBP")

		seed := int64(1200)
		_, err := f.service.AssignVariant(ctx, AssignVariantRequest{
			VariantID: f.variant.ID, ChannelID: source.ID, Price: &seed,
		})
		require.NoError(t, err)

		result, err := f.service.AssignVariant(ctx, AssignVariantRequest{
			VariantID: f.variant.ID, ChannelID: target.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1200), result.Price.Price)
		assert.Equal(t, "GBP", result.Price.CurrencyCode)
	})

	t.Run("fails when the variant has no records and no price is given", func(t *testing.T) {
		f := newChannelFixture(t)
		ch := f.createChannel(t, "default", "USD")

		_, err := f.service.AssignVariant(ctx, AssignVariantRequest{
			VariantID: f.variant.ID, ChannelID: ch.ID,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NO_PRICE_TO_SEED", domainErr.Code)
	})

	t.Run("is idempotent for an already assigned currency", func(t *testing.T) {
		f := newChannelFixture(t)
		ch := f.createChannel(t, "default", "USD")

		price := int64(1500)
		first, err := f.service.AssignVariant(ctx, AssignVariantRequest{
			VariantID: f.variant.ID, ChannelID: ch.ID, Price: &price,
		})
		require.NoError(t, err)

		other := int64(9999)
		second, err := f.service.AssignVariant(ctx, AssignVariantRequest{
			VariantID: f.variant.ID, ChannelID: ch.ID, Price: &other,
		})
		require.NoError(t, err)

		assert.Equal(t, first.Price.ID, second.Price.ID)
		assert.Equal(t, int64(1500), second.Price.Price)
	})

	t.Run("rejects a currency outside the channel set", func(t *testing.T) {
		f := newChannelFixture(t)
		ch := f.createChannel(t, "default", "USD")

		price := int64(100)
		_, err := f.service.AssignVariant(ctx, AssignVariantRequest{
			VariantID: f.variant.ID, ChannelID: ch.ID, CurrencyCode: "JPY", Price: &price,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.ErrCodeCurrencyNotAvailable, domainErr.Code)
	})
}
