package catalog

import (
	"regexp"
	"strings"

	"github.com/storecore/backend/internal/domain/shared"
)

// VariantStatus represents the status of a product variant
type VariantStatus string

const (
	VariantStatusActive   VariantStatus = "active"
	VariantStatusDisabled VariantStatus = "disabled"
)

var skuPattern = regexp.MustCompile(`^[A-Z0-9\-_]+$`)

// ProductVariant represents a purchasable SKU. It carries no price of its
// own; prices live in per-channel, per-currency price records.
type ProductVariant struct {
	shared.BaseAggregateRoot
	SKU    string        `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name   string        `gorm:"type:varchar(200);not null"`
	Status VariantStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ProductVariant) TableName() string {
	return "product_variants"
}

// NewProductVariant creates a new product variant
func NewProductVariant(sku, name string) (*ProductVariant, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Variant name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Variant name cannot exceed 200 characters")
	}

	variant := &ProductVariant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               strings.ToUpper(sku),
		Name:              name,
		Status:            VariantStatusActive,
	}

	variant.AddDomainEvent(NewVariantCreatedEvent(variant))

	return variant, nil
}

// Rename updates the variant's display name
func (v *ProductVariant) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Variant name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Variant name cannot exceed 200 characters")
	}

	v.Name = name
	v.Touch()
	v.IncrementVersion()

	return nil
}

// Disable marks the variant as not sellable
func (v *ProductVariant) Disable() {
	v.Status = VariantStatusDisabled
	v.Touch()
	v.IncrementVersion()
}

// Enable marks the variant as sellable
func (v *ProductVariant) Enable() {
	v.Status = VariantStatusActive
	v.Touch()
	v.IncrementVersion()
}

// IsActive returns true if the variant can be sold
func (v *ProductVariant) IsActive() bool {
	return v.Status == VariantStatusActive
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	if !skuPattern.MatchString(strings.ToUpper(sku)) {
		return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, hyphens and underscores")
	}
	return nil
}
