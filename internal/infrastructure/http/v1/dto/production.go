package dto

import (
	"pulseboard/internal/core/period"
	"pulseboard/internal/domain/dashboard/production"
)

// OrderTrendRequest represents request for the production order trend.
type OrderTrendRequest struct {
	Period       string `form:"period"`
	DateFrom     string `form:"dateFrom"`
	DateTo       string `form:"dateTo"`
	WorkshopCode string `form:"workshop"`
}

// OrderTrendPointResponse represents a single bucket of the trend.
type OrderTrendPointResponse struct {
	Period    string `json:"period"`
	Started   int64  `json:"started"`
	Completed int64  `json:"completed"`
}

// OrderTrendResponse represents the production order trend response.
type OrderTrendResponse struct {
	Granularity    string                    `json:"granularity"`
	DateFrom       string                    `json:"dateFrom"`
	DateTo         string                    `json:"dateTo"`
	Points         []OrderTrendPointResponse `json:"points"`
	TotalStarted   int64                     `json:"totalStarted"`
	TotalCompleted int64                     `json:"totalCompleted"`
}

// FromOrderTrendReport converts domain report to response DTO.
func FromOrderTrendReport(r *production.OrderTrendReport) *OrderTrendResponse {
	resp := &OrderTrendResponse{
		Granularity:    r.Granularity,
		DateFrom:       r.DateFrom.Format(period.DateLayout),
		DateTo:         r.DateTo.Format(period.DateLayout),
		Points:         make([]OrderTrendPointResponse, len(r.Points)),
		TotalStarted:   r.TotalStarted,
		TotalCompleted: r.TotalCompleted,
	}

	for i, p := range r.Points {
		resp.Points[i] = OrderTrendPointResponse{
			Period:    p.Period,
			Started:   p.Started,
			Completed: p.Completed,
		}
	}

	return resp
}
