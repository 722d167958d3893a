package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/catalog"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestVariantServiceCreateVariant(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a variant with normalized SKU", func(t *testing.T) {
		repo := new(MockVariantRepository)
		repo.On("ExistsBySKU", mock.Anything, "shirt-red-l").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.ProductVariant")).Return(nil)

		service := NewVariantService(repo)
		created, err := service.CreateVariant(ctx, CreateVariantRequest{SKU: "shirt-red-l", Name: "Red Shirt L"})
		require.NoError(t, err)

		assert.Equal(t, "SHIRT-RED-L", created.SKU)
		assert.Equal(t, string(catalog.VariantStatusActive), created.Status)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate SKU", func(t *testing.T) {
		repo := new(MockVariantRepository)
		repo.On("ExistsBySKU", mock.Anything, "SHIRT-RED-L").Return(true, nil)

		service := NewVariantService(repo)
		_, err := service.CreateVariant(ctx, CreateVariantRequest{SKU: "SHIRT-RED-L", Name: "Red Shirt L"})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestVariantServiceRenameVariant(t *testing.T) {
	ctx := context.Background()

	variant, err := catalog.NewProductVariant("SHIRT-RED-L", "Red Shirt L")
	require.NoError(t, err)

	repo := new(MockVariantRepository)
	repo.On("FindByID", mock.Anything, variant.ID).Return(variant, nil)
	repo.On("Save", mock.Anything, variant).Return(nil)

	service := NewVariantService(repo)
	renamed, err := service.RenameVariant(ctx, RenameVariantRequest{VariantID: variant.ID, Name: "Crimson Shirt L"})
	require.NoError(t, err)

	assert.Equal(t, "Crimson Shirt L", renamed.Name)
	repo.AssertExpectations(t)
}
