// Package purchasing provides the purchase receipt dashboard report.
package purchasing

import (
	"time"

	"pulseboard/internal/core/id"
	"pulseboard/internal/core/types"
)

// ReceiptTrendFilter defines the purchase receipt trend request.
type ReceiptTrendFilter struct {
	Period   string
	DateFrom string
	DateTo   string

	// SupplierID optionally restricts the report to one supplier.
	SupplierID *id.ID
}

// ReceiptPoint is one bucket of the gap-filled series.
type ReceiptPoint struct {
	Period   string      `json:"period"`
	Amount   types.Money `json:"amount"`
	Receipts int64       `json:"receipts"`
}

// ReceiptTrendReport is the complete purchase receipt trend.
type ReceiptTrendReport struct {
	Granularity string         `json:"granularity"`
	DateFrom    time.Time      `json:"dateFrom"`
	DateTo      time.Time      `json:"dateTo"`
	Points      []ReceiptPoint `json:"points"`

	TotalAmount   types.Money `json:"totalAmount"`
	TotalReceipts int64       `json:"totalReceipts"`
}
