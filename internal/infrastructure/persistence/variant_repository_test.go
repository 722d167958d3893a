package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/catalog"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormVariantRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and finds by SKU regardless of case", func(t *testing.T) {
		repo := NewGormVariantRepository(newTestDB(t))

		variant, err := catalog.NewProductVariant("SHIRT-RED-L", "Red Shirt L")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, variant))

		found, err := repo.FindBySKU(ctx, "shirt-red-l")
		require.NoError(t, err)
		assert.Equal(t, variant.ID, found.ID)
	})

	t.Run("reports SKU existence", func(t *testing.T) {
		repo := NewGormVariantRepository(newTestDB(t))

		variant, err := catalog.NewProductVariant("SHIRT-RED-L", "Red Shirt L")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, variant))

		exists, err := repo.ExistsBySKU(ctx, "shirt-red-l")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsBySKU(ctx, "OTHER-SKU")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("search matches sku and name", func(t *testing.T) {
		repo := NewGormVariantRepository(newTestDB(t))

		red, err := catalog.NewProductVariant("SHIRT-RED-L", "Red Shirt L")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, red))

		blue, err := catalog.NewProductVariant("SHIRT-BLUE-L", "Blue Shirt L")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, blue))

		results, err := repo.FindAll(ctx, shared.Filter{Search: "red"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, red.ID, results[0].ID)
	})

	t.Run("delete fails when absent", func(t *testing.T) {
		repo := NewGormVariantRepository(newTestDB(t))
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}
