package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
)

// VariantRepository defines the interface for product variant persistence
type VariantRepository interface {
	// FindByID finds a variant by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*ProductVariant, error)

	// FindBySKU finds a variant by its SKU
	FindBySKU(ctx context.Context, sku string) (*ProductVariant, error)

	// FindAll finds all variants matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductVariant, error)

	// Save creates or updates a variant
	Save(ctx context.Context, variant *ProductVariant) error

	// Delete deletes a variant
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsBySKU checks if a variant with the given SKU exists
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
