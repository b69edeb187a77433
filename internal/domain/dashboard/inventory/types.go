// Package inventory provides the warehouse stock movement dashboard report.
package inventory

import (
	"time"

	"pulseboard/internal/core/id"
)

// StockTrendFilter defines the stock movement trend request.
type StockTrendFilter struct {
	// Period selects the bucketing granularity; unknown values fall back
	// to monthly.
	Period string

	// DateFrom / DateTo are optional YYYY-MM-DD bounds.
	DateFrom string
	DateTo   string

	// WarehouseIDs restricts the report to specific warehouses.
	WarehouseIDs []id.ID
}

// StockTrendPoint is one bucket of the gap-filled series.
type StockTrendPoint struct {
	Period  string  `json:"period"`
	Receipt float64 `json:"receipt"`
	Issue   float64 `json:"issue"`
	Net     float64 `json:"net"`
}

// StockTrendReport is the complete stock movement trend.
type StockTrendReport struct {
	Granularity string            `json:"granularity"`
	DateFrom    time.Time         `json:"dateFrom"`
	DateTo      time.Time         `json:"dateTo"`
	Points      []StockTrendPoint `json:"points"`

	// Summary
	TotalReceipt float64 `json:"totalReceipt"`
	TotalIssue   float64 `json:"totalIssue"`
}
