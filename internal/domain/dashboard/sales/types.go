// Package sales provides the sales revenue dashboard report.
package sales

import (
	"time"

	"pulseboard/internal/core/id"
	"pulseboard/internal/core/types"
)

// RevenueTrendFilter defines the revenue trend request.
type RevenueTrendFilter struct {
	Period   string
	DateFrom string
	DateTo   string

	// CustomerID optionally restricts the report to one customer.
	CustomerID *id.ID
}

// RevenuePoint is one bucket of the gap-filled series.
type RevenuePoint struct {
	Period   string      `json:"period"`
	Revenue  types.Money `json:"revenue"`
	Invoices int64       `json:"invoices"`
}

// RevenueTrendReport is the complete revenue trend.
type RevenueTrendReport struct {
	Granularity string         `json:"granularity"`
	DateFrom    time.Time      `json:"dateFrom"`
	DateTo      time.Time      `json:"dateTo"`
	Points      []RevenuePoint `json:"points"`

	TotalRevenue  types.Money `json:"totalRevenue"`
	TotalInvoices int64       `json:"totalInvoices"`
}
