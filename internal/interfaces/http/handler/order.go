package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	orderingapp "github.com/storecore/backend/internal/application/ordering"
	"github.com/storecore/backend/internal/interfaces/http/dto"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order endpoints under /orders
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.POST("", h.Create)
	orders.GET("", h.List)
	orders.GET("/:id", h.GetByID)
	orders.GET("/code/:code", h.GetByCode)
	orders.POST("/:id/lines", h.AddLine)
	orders.PATCH("/:id/lines/:lineId", h.AdjustLine)
	orders.DELETE("/:id/lines/:lineId", h.RemoveLine)
	orders.POST("/:id/currency", h.SwitchCurrency)
}

// AddLineRequest is the request body for adding a variant to an order.
// The currency is optional; an empty value uses the order's current currency
// or the channel default for an empty order.
type AddLineRequest struct {
	VariantID    uuid.UUID `json:"variant_id" binding:"required"`
	Quantity     int64     `json:"quantity" binding:"required,min=1"`
	CurrencyCode string    `json:"currency_code"`
}

// AdjustLineRequest is the request body for changing a line's quantity.
// The currency is optional; an empty value keeps the order's current currency.
type AdjustLineRequest struct {
	Quantity     int64  `json:"quantity" binding:"required,min=1"`
	CurrencyCode string `json:"currency_code"`
}

// SwitchCurrencyRequest is the request body for re-pricing an order into a
// new currency
type SwitchCurrencyRequest struct {
	CurrencyCode string `json:"currency_code" binding:"required,len=3"`
}

// Create starts a new empty order in a channel
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderingapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// List returns a paginated list of orders
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req = req.WithDefaults()

	orders, err := h.orderService.ListOrders(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, req.Page, req.PageSize, len(orders))
}

// GetByID returns an order by ID
func (h *OrderHandler) GetByID(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// GetByCode returns an order by its code
func (h *OrderHandler) GetByCode(c *gin.Context) {
	order, err := h.orderService.GetOrderByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// AddLine adds a variant to an order. Requesting a currency different from
// the order's current one re-prices the whole order first.
func (h *OrderHandler) AddLine(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orderService.AddLine(c.Request.Context(), orderingapp.AddOrderLineRequest{
		OrderID:      orderID,
		VariantID:    req.VariantID,
		Quantity:     req.Quantity,
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// AdjustLine changes the quantity of an existing line. Requesting a currency
// different from the order's current one re-prices the whole order first.
func (h *OrderHandler) AdjustLine(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		h.BadRequest(c, "Invalid line ID format")
		return
	}

	var req AdjustLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orderService.AdjustLine(c.Request.Context(), orderingapp.AdjustOrderLineRequest{
		OrderID:      orderID,
		LineID:       lineID,
		Quantity:     req.Quantity,
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// RemoveLine removes a line from an order
func (h *OrderHandler) RemoveLine(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		h.BadRequest(c, "Invalid line ID format")
		return
	}

	order, err := h.orderService.RemoveLine(c.Request.Context(), orderID, lineID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// SwitchCurrency re-prices an entire order into a new currency. Every line
// must be resolvable in the target currency or nothing changes.
func (h *OrderHandler) SwitchCurrency(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req SwitchCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orderService.SwitchCurrency(c.Request.Context(), orderingapp.SwitchCurrencyRequest{
		OrderID:      orderID,
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
