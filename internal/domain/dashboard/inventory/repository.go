package inventory

import (
	"context"

	"pulseboard/internal/core/id"
	"pulseboard/internal/core/period"
)

// MovementTotal is one aggregated row as returned by the database. Period
// carries the raw bucket key exactly as the back-end formatted it; the
// service normalizes it before bucket lookup.
type MovementTotal struct {
	Period string  `db:"period"`
	Total  float64 `db:"total"`
}

// Repository defines stock movement aggregation access.
// Receipts and issues are aggregated by two independent queries; the service
// merges them per bucket.
type Repository interface {
	ReceiptTotals(ctx context.Context, rng period.Range, g period.Granularity, warehouseIDs []id.ID) ([]MovementTotal, error)
	IssueTotals(ctx context.Context, rng period.Range, g period.Granularity, warehouseIDs []id.ID) ([]MovementTotal, error)
}
