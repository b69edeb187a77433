// Package dto defines request and response shapes for the HTTP API.
package dto

import (
	"pulseboard/internal/core/period"
	"pulseboard/internal/domain/dashboard/inventory"
)

// StockTrendRequest represents request for the stock movement trend.
type StockTrendRequest struct {
	Period       string   `form:"period"`
	DateFrom     string   `form:"dateFrom"`
	DateTo       string   `form:"dateTo"`
	WarehouseIDs []string `form:"warehouseId"`
}

// StockTrendPointResponse represents a single bucket of the trend.
type StockTrendPointResponse struct {
	Period  string  `json:"period"`
	Receipt float64 `json:"receipt"`
	Issue   float64 `json:"issue"`
	Net     float64 `json:"net"`
}

// StockTrendResponse represents the stock movement trend response.
type StockTrendResponse struct {
	Granularity  string                    `json:"granularity"`
	DateFrom     string                    `json:"dateFrom"`
	DateTo       string                    `json:"dateTo"`
	Points       []StockTrendPointResponse `json:"points"`
	TotalReceipt float64                   `json:"totalReceipt"`
	TotalIssue   float64                   `json:"totalIssue"`
}

// FromStockTrendReport converts domain report to response DTO.
func FromStockTrendReport(r *inventory.StockTrendReport) *StockTrendResponse {
	resp := &StockTrendResponse{
		Granularity:  r.Granularity,
		DateFrom:     r.DateFrom.Format(period.DateLayout),
		DateTo:       r.DateTo.Format(period.DateLayout),
		Points:       make([]StockTrendPointResponse, len(r.Points)),
		TotalReceipt: r.TotalReceipt,
		TotalIssue:   r.TotalIssue,
	}

	for i, p := range r.Points {
		resp.Points[i] = StockTrendPointResponse{
			Period:  p.Period,
			Receipt: p.Receipt,
			Issue:   p.Issue,
			Net:     p.Net,
		}
	}

	return resp
}
