package purchasing

import (
	"context"

	"pulseboard/internal/core/id"
	"pulseboard/internal/core/period"
	"pulseboard/internal/core/types"
)

// ReceiptTotal is one aggregated row as returned by the database.
type ReceiptTotal struct {
	Period   string      `db:"period"`
	Amount   types.Money `db:"amount"`
	Receipts int64       `db:"receipts"`
}

// Repository defines purchase receipt aggregation access.
type Repository interface {
	ReceiptTotals(ctx context.Context, rng period.Range, g period.Granularity, supplierID *id.ID) ([]ReceiptTotal, error)
}
