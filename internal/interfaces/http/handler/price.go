package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	pricingapp "github.com/storecore/backend/internal/application/pricing"
	"github.com/storecore/backend/internal/interfaces/http/middleware"
)

// PriceHandler handles price record and price resolution endpoints
type PriceHandler struct {
	BaseHandler
	priceService *pricingapp.PriceService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService *pricingapp.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// RegisterRoutes registers price endpoints under /pricing
func (h *PriceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	prices := rg.Group("/pricing/prices")
	prices.PUT("", h.Upsert)
	prices.DELETE("", h.Delete)
	prices.GET("/variants/:id", h.ListForVariant)
	prices.GET("/variants/:id/display", h.ResolveDisplay)
}

// Upsert creates or updates the price for a (variant, channel, currency)
// triple. The configured update strategy may adjust sibling records; the
// response includes everything that changed.
func (h *PriceHandler) Upsert(c *gin.Context) {
	var req pricingapp.UpsertPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.priceService.UpsertPrice(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a single price record. Built-in strategies never cascade a
// deletion to sibling records.
func (h *PriceHandler) Delete(c *gin.Context) {
	var req pricingapp.DeletePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.priceService.DeletePrice(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListForVariant returns every price record of a variant across all channels
func (h *PriceHandler) ListForVariant(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	prices, err := h.priceService.GetVariantPrices(c.Request.Context(), variantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, prices)
}

// ResolveDisplay resolves the display price for a variant in a channel. The
// channel comes from the channel token header or the channel_id query
// parameter; the currency query parameter is optional and defaults to the
// channel's default currency.
func (h *PriceHandler) ResolveDisplay(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	channelID, ok := middleware.GetChannelID(c)
	if !ok {
		channelID, err = uuid.Parse(c.Query("channel_id"))
		if err != nil {
			h.BadRequest(c, "A channel token or channel_id parameter is required")
			return
		}
	}

	price, err := h.priceService.ResolveDisplayPrice(
		c.Request.Context(), variantID, channelID, c.Query("currency"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, price)
}
