package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	channelapp "github.com/storecore/backend/internal/application/channel"
	"github.com/storecore/backend/internal/interfaces/http/dto"
)

// ChannelHandler handles channel management endpoints
type ChannelHandler struct {
	BaseHandler
	channelService *channelapp.ChannelService
}

// NewChannelHandler creates a new ChannelHandler
func NewChannelHandler(channelService *channelapp.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// RegisterRoutes registers channel endpoints under /channels
func (h *ChannelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	channels := rg.Group("/channels")
	channels.POST("", h.Create)
	channels.GET("", h.List)
	channels.GET("/:id", h.GetByID)
	channels.PUT("/:id/currencies", h.UpdateCurrencies)
	channels.POST("/:id/variants", h.AssignVariant)
	channels.DELETE("/:id", h.Delete)
}

// UpdateCurrenciesRequest is the request body for replacing a channel's
// currency configuration
type UpdateCurrenciesRequest struct {
	DefaultCurrencyCode    string   `json:"default_currency_code" binding:"required,len=3"`
	AvailableCurrencyCodes []string `json:"available_currency_codes"`
}

// AssignVariantRequest is the request body for assigning a variant to a
// channel. Currency and price are optional; missing values are derived from
// the channel default and the variant's existing records.
type AssignVariantRequest struct {
	VariantID    uuid.UUID `json:"variant_id" binding:"required"`
	CurrencyCode string    `json:"currency_code"`
	Price        *int64    `json:"price"`
}

// Create creates a new sales channel
func (h *ChannelHandler) Create(c *gin.Context) {
	var req channelapp.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	ch, err := h.channelService.CreateChannel(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ch)
}

// List returns a paginated list of channels
func (h *ChannelHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req = req.WithDefaults()

	channels, err := h.channelService.ListChannels(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, channels, req.Page, req.PageSize, len(channels))
}

// GetByID returns a channel by ID
func (h *ChannelHandler) GetByID(c *gin.Context) {
	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid channel ID format")
		return
	}

	ch, err := h.channelService.GetChannel(c.Request.Context(), channelID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ch)
}

// UpdateCurrencies replaces a channel's currency configuration. Shrinking the
// set never deletes price records in the removed currencies.
func (h *ChannelHandler) UpdateCurrencies(c *gin.Context) {
	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid channel ID format")
		return
	}

	var req UpdateCurrenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	ch, err := h.channelService.UpdateCurrencies(c.Request.Context(), channelapp.UpdateCurrenciesRequest{
		ChannelID:              channelID,
		DefaultCurrencyCode:    req.DefaultCurrencyCode,
		AvailableCurrencyCodes: req.AvailableCurrencyCodes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ch)
}

// AssignVariant makes a variant sellable in a channel by seeding a price
// record for it
func (h *ChannelHandler) AssignVariant(c *gin.Context) {
	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid channel ID format")
		return
	}

	var req AssignVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.channelService.AssignVariant(c.Request.Context(), channelapp.AssignVariantRequest{
		VariantID:    req.VariantID,
		ChannelID:    channelID,
		CurrencyCode: req.CurrencyCode,
		Price:        req.Price,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Delete removes a channel
func (h *ChannelHandler) Delete(c *gin.Context) {
	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid channel ID format")
		return
	}

	if err := h.channelService.DeleteChannel(c.Request.Context(), channelID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
