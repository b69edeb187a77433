package handlers

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/core/apperror"
	"pulseboard/internal/core/id"
	"pulseboard/internal/domain/dashboard/hr"
	"pulseboard/internal/infrastructure/http/v1/dto"
)

// HRHandler handles HTTP requests for the hr dashboard.
type HRHandler struct {
	*BaseHandler
	service *hr.Service
}

// NewHRHandler creates a new hr dashboard handler.
func NewHRHandler(base *BaseHandler, service *hr.Service) *HRHandler {
	return &HRHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetAttendanceTrend handles GET /dashboard/hr/attendance-trend
func (h *HRHandler) GetAttendanceTrend(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AttendanceTrendRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := hr.AttendanceTrendFilter{
		Period:   req.Period,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}

	if req.DepartmentID != "" {
		departmentID, err := id.Parse(req.DepartmentID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid departmentId").WithDetail("value", req.DepartmentID))
			return
		}
		filter.DepartmentID = &departmentID
	}

	report, err := h.service.AttendanceTrend(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromAttendanceTrendReport(report))
}

// RegisterRoutes registers hr dashboard routes.
func (h *HRHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/attendance-trend", h.GetAttendanceTrend)
}
