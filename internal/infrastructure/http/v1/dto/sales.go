package dto

import (
	"pulseboard/internal/core/period"
	"pulseboard/internal/domain/dashboard/sales"
)

// RevenueTrendRequest represents request for the revenue trend.
type RevenueTrendRequest struct {
	Period     string `form:"period"`
	DateFrom   string `form:"dateFrom"`
	DateTo     string `form:"dateTo"`
	CustomerID string `form:"customerId"`
}

// RevenuePointResponse represents a single bucket of the trend.
// Monetary values are serialized as strings to keep full precision.
type RevenuePointResponse struct {
	Period   string `json:"period"`
	Revenue  string `json:"revenue"`
	Invoices int64  `json:"invoices"`
}

// RevenueTrendResponse represents the revenue trend response.
type RevenueTrendResponse struct {
	Granularity   string                 `json:"granularity"`
	DateFrom      string                 `json:"dateFrom"`
	DateTo        string                 `json:"dateTo"`
	Points        []RevenuePointResponse `json:"points"`
	TotalRevenue  string                 `json:"totalRevenue"`
	TotalInvoices int64                  `json:"totalInvoices"`
}

// FromRevenueTrendReport converts domain report to response DTO.
func FromRevenueTrendReport(r *sales.RevenueTrendReport) *RevenueTrendResponse {
	resp := &RevenueTrendResponse{
		Granularity:   r.Granularity,
		DateFrom:      r.DateFrom.Format(period.DateLayout),
		DateTo:        r.DateTo.Format(period.DateLayout),
		Points:        make([]RevenuePointResponse, len(r.Points)),
		TotalRevenue:  r.TotalRevenue.String(),
		TotalInvoices: r.TotalInvoices,
	}

	for i, p := range r.Points {
		resp.Points[i] = RevenuePointResponse{
			Period:   p.Period,
			Revenue:  p.Revenue.String(),
			Invoices: p.Invoices,
		}
	}

	return resp
}
