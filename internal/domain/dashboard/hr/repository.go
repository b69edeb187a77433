package hr

import (
	"context"

	"pulseboard/internal/core/id"
	"pulseboard/internal/core/period"
)

// AttendanceTotal is one aggregated row as returned by the database.
// The three counters come back from a single grouped query.
type AttendanceTotal struct {
	Period  string `db:"period"`
	Present int64  `db:"present"`
	Absent  int64  `db:"absent"`
	Late    int64  `db:"late"`
}

// Repository defines attendance aggregation access.
type Repository interface {
	AttendanceTotals(ctx context.Context, rng period.Range, g period.Granularity, departmentID *id.ID) ([]AttendanceTotal, error)
}
