package dto

import (
	"pulseboard/internal/core/period"
	"pulseboard/internal/domain/dashboard/hr"
)

// AttendanceTrendRequest represents request for the attendance trend.
type AttendanceTrendRequest struct {
	Period       string `form:"period"`
	DateFrom     string `form:"dateFrom"`
	DateTo       string `form:"dateTo"`
	DepartmentID string `form:"departmentId"`
}

// AttendancePointResponse represents a single bucket of the trend.
type AttendancePointResponse struct {
	Period  string `json:"period"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
	Late    int64  `json:"late"`
}

// AttendanceTrendResponse represents the attendance trend response.
type AttendanceTrendResponse struct {
	Granularity  string                    `json:"granularity"`
	DateFrom     string                    `json:"dateFrom"`
	DateTo       string                    `json:"dateTo"`
	Points       []AttendancePointResponse `json:"points"`
	TotalPresent int64                     `json:"totalPresent"`
	TotalAbsent  int64                     `json:"totalAbsent"`
	TotalLate    int64                     `json:"totalLate"`
}

// FromAttendanceTrendReport converts domain report to response DTO.
func FromAttendanceTrendReport(r *hr.AttendanceTrendReport) *AttendanceTrendResponse {
	resp := &AttendanceTrendResponse{
		Granularity:  r.Granularity,
		DateFrom:     r.DateFrom.Format(period.DateLayout),
		DateTo:       r.DateTo.Format(period.DateLayout),
		Points:       make([]AttendancePointResponse, len(r.Points)),
		TotalPresent: r.TotalPresent,
		TotalAbsent:  r.TotalAbsent,
		TotalLate:    r.TotalLate,
	}

	for i, p := range r.Points {
		resp.Points[i] = AttendancePointResponse{
			Period:  p.Period,
			Present: p.Present,
			Absent:  p.Absent,
			Late:    p.Late,
		}
	}

	return resp
}
