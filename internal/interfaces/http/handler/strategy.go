package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/storecore/backend/internal/domain/shared/strategy"
	infrastrategy "github.com/storecore/backend/internal/infrastructure/strategy"
)

// StrategyHandler exposes the registered pricing strategies
type StrategyHandler struct {
	BaseHandler
	registry *infrastrategy.StrategyRegistry
}

// NewStrategyHandler creates a new StrategyHandler
func NewStrategyHandler(registry *infrastrategy.StrategyRegistry) *StrategyHandler {
	return &StrategyHandler{registry: registry}
}

// RegisterRoutes registers strategy endpoints under /pricing
func (h *StrategyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pricing/strategies", h.List)
}

// StrategyListResponse names the registered strategies and the defaults used
// when a request does not specify one
type StrategyListResponse struct {
	UpdateStrategies    []string `json:"update_strategies"`
	DefaultUpdate       string   `json:"default_update"`
	SelectionStrategies []string `json:"selection_strategies"`
	DefaultSelection    string   `json:"default_selection"`
}

// List returns the registered update and selection strategies
func (h *StrategyHandler) List(c *gin.Context) {
	h.Success(c, StrategyListResponse{
		UpdateStrategies:    h.registry.ListUpdateStrategies(),
		DefaultUpdate:       h.registry.GetDefault(strategy.StrategyTypePriceUpdate),
		SelectionStrategies: h.registry.ListSelectionStrategies(),
		DefaultSelection:    h.registry.GetDefault(strategy.StrategyTypePriceSelection),
	})
}
