package dto

import (
	"pulseboard/internal/core/period"
	"pulseboard/internal/domain/dashboard/purchasing"
)

// ReceiptTrendRequest represents request for the purchase receipt trend.
type ReceiptTrendRequest struct {
	Period     string `form:"period"`
	DateFrom   string `form:"dateFrom"`
	DateTo     string `form:"dateTo"`
	SupplierID string `form:"supplierId"`
}

// ReceiptPointResponse represents a single bucket of the trend.
type ReceiptPointResponse struct {
	Period   string `json:"period"`
	Amount   string `json:"amount"`
	Receipts int64  `json:"receipts"`
}

// ReceiptTrendResponse represents the purchase receipt trend response.
type ReceiptTrendResponse struct {
	Granularity   string                 `json:"granularity"`
	DateFrom      string                 `json:"dateFrom"`
	DateTo        string                 `json:"dateTo"`
	Points        []ReceiptPointResponse `json:"points"`
	TotalAmount   string                 `json:"totalAmount"`
	TotalReceipts int64                  `json:"totalReceipts"`
}

// FromReceiptTrendReport converts domain report to response DTO.
func FromReceiptTrendReport(r *purchasing.ReceiptTrendReport) *ReceiptTrendResponse {
	resp := &ReceiptTrendResponse{
		Granularity:   r.Granularity,
		DateFrom:      r.DateFrom.Format(period.DateLayout),
		DateTo:        r.DateTo.Format(period.DateLayout),
		Points:        make([]ReceiptPointResponse, len(r.Points)),
		TotalAmount:   r.TotalAmount.String(),
		TotalReceipts: r.TotalReceipts,
	}

	for i, p := range r.Points {
		resp.Points[i] = ReceiptPointResponse{
			Period:   p.Period,
			Amount:   p.Amount.String(),
			Receipts: p.Receipts,
		}
	}

	return resp
}
