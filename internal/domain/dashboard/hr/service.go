package hr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pulseboard/internal/core/apperror"
	"pulseboard/internal/core/period"
	"pulseboard/pkg/logger"
)

// defaultSpanDays bounds the range when only one of from/to is supplied.
const defaultSpanDays = 30

// Service builds the attendance trend report.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new hr dashboard service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// AttendanceTrend returns the gap-filled attendance series. Non-working
// days appear as all-zero buckets rather than being skipped.
func (s *Service) AttendanceTrend(ctx context.Context, filter AttendanceTrendFilter) (*AttendanceTrendReport, error) {
	g := period.ParseGranularity(filter.Period, period.Daily)

	rng, err := period.Resolve(filter.DateFrom, filter.DateTo, g, s.now(), period.ResolveOptions{
		Strategy:        period.SpanFixedDays,
		DefaultSpanDays: defaultSpanDays,
	})
	if err != nil {
		var invalid *period.InvalidDateError
		if errors.As(err, &invalid) {
			return nil, apperror.NewInvalidDate(invalid.Field, invalid.Value)
		}
		return nil, fmt.Errorf("resolve range: %w", err)
	}

	rows, err := s.repo.AttendanceTotals(ctx, rng, g, filter.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("attendance totals: %w", err)
	}

	byKey := make(map[string]AttendancePoint, len(rows))
	for _, row := range rows {
		key := period.Normalize(row.Period, g)
		if key != row.Period {
			logger.Debug(ctx, "normalized period key", "raw", row.Period, "key", key)
		}
		point := byKey[key]
		point.Period = key
		point.Present += row.Present
		point.Absent += row.Absent
		point.Late += row.Late
		byKey[key] = point
	}

	series := period.Fill(period.Sequence(rng, g), byKey, func(key string) AttendancePoint {
		return AttendancePoint{Period: key}
	})

	report := &AttendanceTrendReport{
		Granularity: g.String(),
		DateFrom:    rng.Start,
		DateTo:      rng.End,
		Points:      period.Rows(series),
	}
	for _, point := range report.Points {
		report.TotalPresent += point.Present
		report.TotalAbsent += point.Absent
		report.TotalLate += point.Late
	}
	return report, nil
}
