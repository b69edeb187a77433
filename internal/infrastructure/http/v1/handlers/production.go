package handlers

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/domain/dashboard/production"
	"pulseboard/internal/infrastructure/http/v1/dto"
)

// ProductionHandler handles HTTP requests for the production dashboard.
type ProductionHandler struct {
	*BaseHandler
	service *production.Service
}

// NewProductionHandler creates a new production dashboard handler.
func NewProductionHandler(base *BaseHandler, service *production.Service) *ProductionHandler {
	return &ProductionHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetOrderTrend handles GET /dashboard/production/order-trend
func (h *ProductionHandler) GetOrderTrend(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.OrderTrendRequest
	if !h.BindQuery(c, &req) {
		return
	}

	report, err := h.service.OrderTrend(ctx, production.OrderTrendFilter{
		Period:       req.Period,
		DateFrom:     req.DateFrom,
		DateTo:       req.DateTo,
		WorkshopCode: req.WorkshopCode,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrderTrendReport(report))
}

// RegisterRoutes registers production dashboard routes.
func (h *ProductionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/order-trend", h.GetOrderTrend)
}
