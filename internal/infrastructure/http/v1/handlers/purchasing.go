package handlers

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/core/apperror"
	"pulseboard/internal/core/id"
	"pulseboard/internal/domain/dashboard/purchasing"
	"pulseboard/internal/infrastructure/http/v1/dto"
)

// PurchasingHandler handles HTTP requests for the purchasing dashboard.
type PurchasingHandler struct {
	*BaseHandler
	service *purchasing.Service
}

// NewPurchasingHandler creates a new purchasing dashboard handler.
func NewPurchasingHandler(base *BaseHandler, service *purchasing.Service) *PurchasingHandler {
	return &PurchasingHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetReceiptTrend handles GET /dashboard/purchasing/receipt-trend
func (h *PurchasingHandler) GetReceiptTrend(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ReceiptTrendRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := purchasing.ReceiptTrendFilter{
		Period:   req.Period,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}

	if req.SupplierID != "" {
		supplierID, err := id.Parse(req.SupplierID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid supplierId").WithDetail("value", req.SupplierID))
			return
		}
		filter.SupplierID = &supplierID
	}

	report, err := h.service.ReceiptTrend(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromReceiptTrendReport(report))
}

// RegisterRoutes registers purchasing dashboard routes.
func (h *PurchasingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/receipt-trend", h.GetReceiptTrend)
}
