// Package period provides the shared time-bucketing primitive used by every
// dashboard report: granularity parsing, date-range resolution, canonical
// bucket keys, bucket sequences, dialect-specific SQL date expressions and
// gap-filling of sparse aggregation results into complete series.
package period

import "strings"

// Granularity is the unit size of time-bucketing.
type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// ParseGranularity matches raw input case-insensitively against the known
// granularities. Unrecognized or empty input falls back to def silently;
// a malformed period parameter must not fail an entire dashboard request.
func ParseGranularity(raw string, def Granularity) Granularity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(Daily):
		return Daily
	case string(Monthly):
		return Monthly
	case string(Yearly):
		return Yearly
	default:
		return def
	}
}

// Valid reports whether g is one of the supported granularities.
func (g Granularity) Valid() bool {
	return g == Daily || g == Monthly || g == Yearly
}

func (g Granularity) String() string {
	return string(g)
}
