package handlers

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/core/apperror"
	"pulseboard/internal/core/id"
	"pulseboard/internal/domain/dashboard/sales"
	"pulseboard/internal/infrastructure/http/v1/dto"
)

// SalesHandler handles HTTP requests for the sales dashboard.
type SalesHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSalesHandler creates a new sales dashboard handler.
func NewSalesHandler(base *BaseHandler, service *sales.Service) *SalesHandler {
	return &SalesHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetRevenueTrend handles GET /dashboard/sales/revenue-trend
func (h *SalesHandler) GetRevenueTrend(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RevenueTrendRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := sales.RevenueTrendFilter{
		Period:   req.Period,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}

	if req.CustomerID != "" {
		customerID, err := id.Parse(req.CustomerID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid customerId").WithDetail("value", req.CustomerID))
			return
		}
		filter.CustomerID = &customerID
	}

	report, err := h.service.RevenueTrend(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromRevenueTrendReport(report))
}

// RegisterRoutes registers sales dashboard routes.
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/revenue-trend", h.GetRevenueTrend)
}
