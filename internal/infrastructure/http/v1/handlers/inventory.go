package handlers

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/core/id"
	"pulseboard/internal/domain/dashboard/inventory"
	"pulseboard/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles HTTP requests for the inventory dashboard.
type InventoryHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewInventoryHandler creates a new inventory dashboard handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetStockTrend handles GET /dashboard/inventory/stock-trend
func (h *InventoryHandler) GetStockTrend(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StockTrendRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := inventory.StockTrendFilter{
		Period:   req.Period,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}

	// Parse warehouse IDs, skip malformed ones
	for _, whStr := range req.WarehouseIDs {
		if whID, err := id.Parse(whStr); err == nil {
			filter.WarehouseIDs = append(filter.WarehouseIDs, whID)
		}
	}

	report, err := h.service.StockTrend(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStockTrendReport(report))
}

// RegisterRoutes registers inventory dashboard routes.
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stock-trend", h.GetStockTrend)
}
