// Package hr provides the workforce attendance dashboard report.
package hr

import (
	"time"

	"pulseboard/internal/core/id"
)

// AttendanceTrendFilter defines the attendance trend request.
type AttendanceTrendFilter struct {
	Period   string
	DateFrom string
	DateTo   string

	// DepartmentID optionally restricts the report to one department.
	DepartmentID *id.ID
}

// AttendancePoint is one bucket of the gap-filled series.
type AttendancePoint struct {
	Period  string `json:"period"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
	Late    int64  `json:"late"`
}

// AttendanceTrendReport is the complete attendance trend.
type AttendanceTrendReport struct {
	Granularity string            `json:"granularity"`
	DateFrom    time.Time         `json:"dateFrom"`
	DateTo      time.Time         `json:"dateTo"`
	Points      []AttendancePoint `json:"points"`

	TotalPresent int64 `json:"totalPresent"`
	TotalAbsent  int64 `json:"totalAbsent"`
	TotalLate    int64 `json:"totalLate"`
}
