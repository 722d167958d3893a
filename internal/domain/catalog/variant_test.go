package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductVariant(t *testing.T) {
	t.Run("creates variant with valid inputs", func(t *testing.T) {
		variant, err := NewProductVariant("SKU-001", "Blue T-Shirt")
		require.NoError(t, err)
		require.NotNil(t, variant)

		assert.Equal(t, "SKU-001", variant.SKU)
		assert.Equal(t, "Blue T-Shirt", variant.Name)
		assert.Equal(t, VariantStatusActive, variant.Status)
		assert.True(t, variant.IsActive())
		assert.NotEmpty(t, variant.ID)
		assert.Equal(t, 1, variant.GetVersion())
	})

	t.Run("converts SKU to uppercase", func(t *testing.T) {
		variant, err := NewProductVariant("sku-001", "Blue T-Shirt")
		require.NoError(t, err)
		assert.Equal(t, "SKU-001", variant.SKU)
	})

	t.Run("publishes VariantCreated event", func(t *testing.T) {
		variant, err := NewProductVariant("SKU-002", "Blue T-Shirt")
		require.NoError(t, err)

		events := variant.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeVariantCreated, events[0].EventType())

		event, ok := events[0].(*VariantCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, variant.ID, event.VariantID)
		assert.Equal(t, variant.SKU, event.SKU)
	})

	t.Run("fails with empty SKU", func(t *testing.T) {
		_, err := NewProductVariant("", "Blue T-Shirt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKU cannot be empty")
	})

	t.Run("fails with invalid SKU characters", func(t *testing.T) {
		_, err := NewProductVariant("SKU@001", "Blue T-Shirt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can only contain")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProductVariant("SKU-001", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})
}

func TestProductVariantLifecycle(t *testing.T) {
	t.Run("disable and enable toggle status", func(t *testing.T) {
		variant, err := NewProductVariant("SKU-001", "Blue T-Shirt")
		require.NoError(t, err)

		variant.Disable()
		assert.False(t, variant.IsActive())
		assert.Equal(t, 2, variant.GetVersion())

		variant.Enable()
		assert.True(t, variant.IsActive())
		assert.Equal(t, 3, variant.GetVersion())
	})

	t.Run("rename validates input", func(t *testing.T) {
		variant, err := NewProductVariant("SKU-001", "Blue T-Shirt")
		require.NoError(t, err)

		require.NoError(t, variant.Rename("Red T-Shirt"))
		assert.Equal(t, "Red T-Shirt", variant.Name)

		require.Error(t, variant.Rename(""))
		assert.Equal(t, "Red T-Shirt", variant.Name)
	})
}
