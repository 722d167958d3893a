package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/storecore/backend/internal/application/catalog"
	"github.com/storecore/backend/internal/interfaces/http/dto"
)

// VariantHandler handles product variant endpoints
type VariantHandler struct {
	BaseHandler
	variantService *catalogapp.VariantService
}

// NewVariantHandler creates a new VariantHandler
func NewVariantHandler(variantService *catalogapp.VariantService) *VariantHandler {
	return &VariantHandler{variantService: variantService}
}

// RegisterRoutes registers variant endpoints under /catalog
func (h *VariantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	variants := rg.Group("/catalog/variants")
	variants.POST("", h.Create)
	variants.GET("", h.List)
	variants.GET("/:id", h.GetByID)
	variants.GET("/sku/:sku", h.GetBySKU)
	variants.PUT("/:id/name", h.Rename)
	variants.POST("/:id/disable", h.Disable)
}

// RenameRequest is the request body for renaming a variant
type RenameRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// Create creates a new product variant
func (h *VariantHandler) Create(c *gin.Context) {
	var req catalogapp.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	variant, err := h.variantService.CreateVariant(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, variant)
}

// List returns a paginated list of variants
func (h *VariantHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req = req.WithDefaults()

	variants, err := h.variantService.ListVariants(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, variants, req.Page, req.PageSize, len(variants))
}

// GetByID returns a variant by ID
func (h *VariantHandler) GetByID(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	variant, err := h.variantService.GetVariant(c.Request.Context(), variantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, variant)
}

// GetBySKU returns a variant by SKU
func (h *VariantHandler) GetBySKU(c *gin.Context) {
	variant, err := h.variantService.GetVariantBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, variant)
}

// Rename changes a variant's display name
func (h *VariantHandler) Rename(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	variant, err := h.variantService.RenameVariant(c.Request.Context(), catalogapp.RenameVariantRequest{
		VariantID: variantID,
		Name:      req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, variant)
}

// Disable takes a variant off sale
func (h *VariantHandler) Disable(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	if err := h.variantService.DisableVariant(c.Request.Context(), variantID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
