package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/catalog"
	"github.com/storecore/backend/internal/domain/shared"
)

// CreateVariantRequest creates a new product variant
type CreateVariantRequest struct {
	SKU  string `json:"sku" binding:"required,max=50"`
	Name string `json:"name" binding:"required,max=200"`
}

// RenameVariantRequest updates a variant's display name
type RenameVariantRequest struct {
	VariantID uuid.UUID `json:"variant_id" binding:"required"`
	Name      string    `json:"name" binding:"required,max=200"`
}

// VariantResponse is the variant view returned by the service
type VariantResponse struct {
	ID        uuid.UUID `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToVariantResponse converts a variant aggregate to a response DTO
func ToVariantResponse(v *catalog.ProductVariant) VariantResponse {
	return VariantResponse{
		ID:        v.ID,
		SKU:       v.SKU,
		Name:      v.Name,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// VariantService handles product variant operations
type VariantService struct {
	variantRepo    catalog.VariantRepository
	eventPublisher shared.EventPublisher
}

// NewVariantService creates a new VariantService
func NewVariantService(variantRepo catalog.VariantRepository) *VariantService {
	return &VariantService{variantRepo: variantRepo}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *VariantService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateVariant creates a new product variant
func (s *VariantService) CreateVariant(ctx context.Context, req CreateVariantRequest) (*VariantResponse, error) {
	exists, err := s.variantRepo.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: SKU '%s' is taken", shared.ErrAlreadyExists, req.SKU)
	}

	variant, err := catalog.NewProductVariant(req.SKU, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, variant.GetDomainEvents()...)
		variant.ClearDomainEvents()
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// GetVariant retrieves a variant by ID
func (s *VariantService) GetVariant(ctx context.Context, variantID uuid.UUID) (*VariantResponse, error) {
	variant, err := s.variantRepo.FindByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	response := ToVariantResponse(variant)
	return &response, nil
}

// GetVariantBySKU retrieves a variant by SKU
func (s *VariantService) GetVariantBySKU(ctx context.Context, sku string) (*VariantResponse, error) {
	variant, err := s.variantRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	response := ToVariantResponse(variant)
	return &response, nil
}

// ListVariants retrieves variants matching the filter
func (s *VariantService) ListVariants(ctx context.Context, filter shared.Filter) ([]VariantResponse, error) {
	variants, err := s.variantRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]VariantResponse, len(variants))
	for i := range variants {
		responses[i] = ToVariantResponse(&variants[i])
	}
	return responses, nil
}

// RenameVariant updates a variant's display name
func (s *VariantService) RenameVariant(ctx context.Context, req RenameVariantRequest) (*VariantResponse, error) {
	variant, err := s.variantRepo.FindByID(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}

	if err := variant.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// DisableVariant marks a variant as not sellable
func (s *VariantService) DisableVariant(ctx context.Context, variantID uuid.UUID) error {
	variant, err := s.variantRepo.FindByID(ctx, variantID)
	if err != nil {
		return err
	}
	variant.Disable()
	return s.variantRepo.Save(ctx, variant)
}
