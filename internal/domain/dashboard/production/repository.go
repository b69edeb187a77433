package production

import (
	"context"

	"pulseboard/internal/core/period"
)

// OrderCount is one aggregated row as returned by the database.
type OrderCount struct {
	Period string `db:"period"`
	Count  int64  `db:"count"`
}

// Repository defines production order aggregation access. Started and
// completed orders are counted by two independent queries over different
// date columns; the service merges them per bucket.
type Repository interface {
	StartedCounts(ctx context.Context, rng period.Range, g period.Granularity, workshopCode string) ([]OrderCount, error)
	CompletedCounts(ctx context.Context, rng period.Range, g period.Granularity, workshopCode string) ([]OrderCount, error)
}
