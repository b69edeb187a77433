// Package production provides the production order dashboard report.
package production

import "time"

// OrderTrendFilter defines the production order trend request.
type OrderTrendFilter struct {
	Period   string
	DateFrom string
	DateTo   string

	// WorkshopCode optionally restricts the report to one workshop.
	WorkshopCode string
}

// OrderTrendPoint is one bucket of the gap-filled series. Started and
// Completed are counted against their own dates, so the same order may
// contribute to different buckets.
type OrderTrendPoint struct {
	Period    string `json:"period"`
	Started   int64  `json:"started"`
	Completed int64  `json:"completed"`
}

// OrderTrendReport is the complete production order trend.
type OrderTrendReport struct {
	Granularity string            `json:"granularity"`
	DateFrom    time.Time         `json:"dateFrom"`
	DateTo      time.Time         `json:"dateTo"`
	Points      []OrderTrendPoint `json:"points"`

	TotalStarted   int64 `json:"totalStarted"`
	TotalCompleted int64 `json:"totalCompleted"`
}
