package sales

import (
	"context"

	"pulseboard/internal/core/id"
	"pulseboard/internal/core/period"
	"pulseboard/internal/core/types"
)

// RevenueTotal is one aggregated row as returned by the database.
type RevenueTotal struct {
	Period   string      `db:"period"`
	Revenue  types.Money `db:"revenue"`
	Invoices int64       `db:"invoices"`
}

// Repository defines sales invoice aggregation access.
type Repository interface {
	RevenueTotals(ctx context.Context, rng period.Range, g period.Granularity, customerID *id.ID) ([]RevenueTotal, error)
}
